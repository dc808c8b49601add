package dify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageBlocking(t *testing.T) {
	var got chatMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat-messages", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ChatReply{
			Answer:         "你好",
			ConversationID: "conv-9",
			MessageID:      "msg-1",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", srv.Client())
	reply, err := c.SendMessage(context.Background(), "hi", "u1", "小明", "小伴", "")
	require.NoError(t, err)
	assert.Equal(t, "你好", reply.Answer)
	assert.Equal(t, "conv-9", reply.ConversationID)

	assert.Equal(t, "hi", got.Query)
	assert.Equal(t, "u1", got.User)
	assert.Equal(t, "blocking", got.ResponseMode)
	assert.Equal(t, "", got.ConversationID)
	assert.Equal(t, "小伴", got.Inputs["agent_name"])
	assert.Equal(t, "小明", got.Inputs["userNickName"])
}

func TestSendMessageCarriesConversationID(t *testing.T) {
	var got chatMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ChatReply{Answer: "ok", ConversationID: "conv-9"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", srv.Client())
	_, err := c.SendMessage(context.Background(), "again", "u1", "", "", "conv-9")
	require.NoError(t, err)
	assert.Equal(t, "conv-9", got.ConversationID)
}

func TestSendMessageNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", srv.Client())
	_, err := c.SendMessage(context.Background(), "hi", "u1", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestSendMessageBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", srv.Client())
	_, err := c.SendMessage(context.Background(), "hi", "u1", "", "", "")
	assert.Error(t, err)
}

func TestGetMessageHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("user"))
		assert.Equal(t, "10", r.URL.Query().Get("limit")) // default limit
		_ = json.NewEncoder(w).Encode(historyResponse{Data: []HistoryMessage{
			{ID: "m1", Query: "hi", Answer: "hello"},
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", srv.Client())
	msgs, err := c.GetMessageHistory(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Answer)
}
