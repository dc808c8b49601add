package service

import (
	"context"
	"errors"
	"time"

	"github.com/shinyyama/companion-backend/internal/chatctx"
	"github.com/shinyyama/companion-backend/internal/dateutil"
	"github.com/shinyyama/companion-backend/internal/dify"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/repository"
	"gorm.io/gorm"
)

// WorkflowClient is the conversational workflow API surface the chat and
// diary services depend on.
type WorkflowClient interface {
	SendMessage(ctx context.Context, message, userID, nickname, agentName, conversationID string) (*dify.ChatReply, error)
}

type ChatService interface {
	GenerateResponse(ctx context.Context, userID, message string) (string, time.Time, error)
	GetAgentName(ctx context.Context, userID string) (string, error)
	SetAgentName(ctx context.Context, userID, agentName string) error
	GetHistory(ctx context.Context, userID string, start, end *time.Time, limit, offset int) ([]model.ChatMessage, int64, error)
}

type chatService struct {
	userRepo repository.UserRepository
	chatRepo repository.ChatMessageRepository
	workflow WorkflowClient
	now      func() time.Time
}

func NewChatService(userRepo repository.UserRepository, chatRepo repository.ChatMessageRepository, workflow WorkflowClient) ChatService {
	return &chatService{
		userRepo: userRepo,
		chatRepo: chatRepo,
		workflow: workflow,
		now:      time.Now,
	}
}

// GenerateResponse persists the user's turn, forwards it to the workflow
// API and persists the reply. The user's turn stays persisted even when
// the external call fails; there is deliberately no rollback. On the very
// first turn the newly assigned conversation id is captured onto the user
// record and the status flips to CHAT_READY.
func (s *chatService) GenerateResponse(ctx context.Context, userID, message string) (string, time.Time, error) {
	if message == "" {
		return "", time.Time{}, errors.New("message is required")
	}
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", time.Time{}, ErrNotFound
		}
		return "", time.Time{}, err
	}

	now := s.now()
	userTurn := &model.ChatMessage{
		UserID:    userID,
		Role:      model.RoleUser,
		Content:   message,
		AgentName: user.AIAgentName,
		DateInt:   dateutil.DateInt(now),
	}
	if err := s.chatRepo.Create(ctx, userTurn); err != nil {
		return "", time.Time{}, err
	}

	conversationID := ""
	if user.AgentID != nil {
		conversationID = *user.AgentID
	}
	ctx = chatctx.WithUserID(ctx, userID)
	reply, err := s.workflow.SendMessage(ctx, message, userID, user.UserNickName, user.AIAgentName, conversationID)
	if err != nil {
		return "", time.Time{}, err
	}

	replyAt := s.now()
	assistantTurn := &model.ChatMessage{
		UserID:    userID,
		Role:      model.RoleAssistant,
		Content:   reply.Answer,
		AgentName: user.AIAgentName,
		DateInt:   dateutil.DateInt(replyAt),
	}
	if err := s.chatRepo.Create(ctx, assistantTurn); err != nil {
		return "", time.Time{}, err
	}

	if conversationID == "" && reply.ConversationID != "" {
		fields := map[string]interface{}{
			"agent_id":         reply.ConversationID,
			"status":           model.UserStatusChatReady,
			"last_update_time": replyAt.Format(time.RFC3339),
		}
		if err := s.userRepo.Updates(ctx, userID, fields); err != nil {
			return "", time.Time{}, err
		}
	}
	return reply.Answer, replyAt, nil
}

func (s *chatService) GetAgentName(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return user.AIAgentName, nil
}

func (s *chatService) SetAgentName(ctx context.Context, userID, agentName string) error {
	if agentName == "" {
		return errors.New("agent name is required")
	}
	err := s.userRepo.Updates(ctx, userID, map[string]interface{}{
		"ai_agent_name":    agentName,
		"last_update_time": s.now().Format(time.RFC3339),
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *chatService) GetHistory(ctx context.Context, userID string, start, end *time.Time, limit, offset int) ([]model.ChatMessage, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.chatRepo.ListByTimeRange(ctx, userID, start, end, limit, offset)
}
