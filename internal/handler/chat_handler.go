package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/service"
)

type ChatHandler struct {
	svc service.ChatService
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type ChatResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type SetAgentNameRequest struct {
	UserID    string `json:"userId"`
	AgentName string `json:"agent_name"`
}

type ChatHistoryItem struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ChatHistoryResponse struct {
	History []ChatHistoryItem `json:"history"`
	Total   int64             `json:"total"`
}

func (h *ChatHandler) Send(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.UserID == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId and message are required"))
	}
	answer, at, err := h.svc.GenerateResponse(c.Request().Context(), req.UserID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("upstream_error", err.Error()))
	}
	return c.JSON(http.StatusOK, ChatResponse{
		Message:   answer,
		Timestamp: at.Format(time.RFC3339),
	})
}

func (h *ChatHandler) SetAgentName(c echo.Context) error {
	var req SetAgentNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.UserID == "" || req.AgentName == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId and agent_name are required"))
	}
	if err := h.svc.SetAgentName(c.Request().Context(), req.UserID, req.AgentName); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Agent name set to " + req.AgentName})
}

func (h *ChatHandler) GetAgentName(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	name, err := h.svc.GetAgentName(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]string{"agent_name": name})
}

func (h *ChatHandler) History(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	var start, end *time.Time
	if v := c.QueryParam("start_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid start_time"))
		}
		start = &t
	}
	if v := c.QueryParam("end_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid end_time"))
		}
		end = &t
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	msgs, total, err := h.svc.GetHistory(c.Request().Context(), userID, start, end, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch chat history"))
	}
	resp := ChatHistoryResponse{
		History: make([]ChatHistoryItem, 0, len(msgs)),
		Total:   total,
	}
	for i := range msgs {
		resp.History = append(resp.History, toChatHistoryItem(&msgs[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func toChatHistoryItem(m *model.ChatMessage) ChatHistoryItem {
	return ChatHistoryItem{
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.CreatedAt.Format(time.RFC3339),
	}
}
