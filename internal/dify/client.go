package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shinyyama/companion-backend/internal/chatctx"
)

// Client wraps the conversational workflow API. It is stateless; the
// conversation id lives on the user record and is passed per call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type chatMessageRequest struct {
	Query          string         `json:"query"`
	Inputs         map[string]any `json:"inputs"`
	User           string         `json:"user"`
	ResponseMode   string         `json:"response_mode"`
	ConversationID string         `json:"conversation_id,omitempty"`
}

// ChatReply is the answer for one blocking chat-message call.
type ChatReply struct {
	Answer         string `json:"answer"`
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id"`
}

// HistoryMessage is one entry of the workflow-side message history.
type HistoryMessage struct {
	ID        string `json:"id"`
	Query     string `json:"query"`
	Answer    string `json:"answer"`
	CreatedAt int64  `json:"created_at"`
}

type historyResponse struct {
	Data []HistoryMessage `json:"data"`
}

// SendMessage posts one user turn in blocking mode and returns the
// assistant reply. conversationID may be empty on the user's first turn;
// the reply then carries the newly assigned id.
func (c *Client) SendMessage(ctx context.Context, message, userID, nickname, agentName, conversationID string) (*ChatReply, error) {
	rid := chatctx.RID(ctx)
	start := time.Now()

	reqBody := chatMessageRequest{
		Query: message,
		Inputs: map[string]any{
			"agent_name":   agentName,
			"userNickName": nickname,
		},
		User:           userID,
		ResponseMode:   "blocking",
		ConversationID: conversationID,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal chat message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat-messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build chat message request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[dify] rid=%s user=%s stage=send_start conv=%q", rid, userID, conversationID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[dify] rid=%s user=%s stage=send_fail err=%v", rid, userID, err)
		return nil, fmt.Errorf("dify chat-messages: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read dify response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		text := strings.ReplaceAll(string(body), "\n", " ")
		if len(text) > 200 {
			text = text[:200]
		}
		log.Printf("[dify] rid=%s user=%s stage=send_non200 status=%d body=%q", rid, userID, resp.StatusCode, text)
		return nil, fmt.Errorf("dify chat-messages: status %d: %s", resp.StatusCode, text)
	}

	var reply ChatReply
	if err := json.Unmarshal(body, &reply); err != nil {
		log.Printf("[dify] rid=%s user=%s stage=decode_fail err=%v", rid, userID, err)
		return nil, fmt.Errorf("decode dify response: %w", err)
	}
	log.Printf("[dify] rid=%s user=%s stage=send_done conv=%q totalMs=%d", rid, userID, reply.ConversationID, time.Since(start).Milliseconds())
	return &reply, nil
}

// GetMessageHistory fetches up to limit workflow-side messages for the user.
func (c *Client) GetMessageHistory(ctx context.Context, userID string, limit int) ([]HistoryMessage, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{}
	q.Set("user", userID)
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/messages?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build history request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dify messages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dify messages: status %d", resp.StatusCode)
	}
	var hist historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		return nil, fmt.Errorf("decode dify history: %w", err)
	}
	return hist.Data, nil
}
