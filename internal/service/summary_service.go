package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shinyyama/companion-backend/internal/completion"
	"github.com/shinyyama/companion-backend/internal/dateutil"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/repository"
)

const noMorningChats = "今天还没有和我聊天哦，快来和我聊聊吧！(๑•̀ㅂ•́)و✧"

const summarySystemPrompt = "你是一个贴心的聊天伙伴。请根据用户清晨的聊天记录，总结今天的聊天主题和用户的情绪状态，用温暖的语气写一段不超过150字的日报。"

const saveAttempts = 3

// Completer is the chat-completion surface the summary service uses.
type Completer interface {
	Complete(ctx context.Context, messages []completion.Message) (string, error)
}

type SummaryService interface {
	GenerateSummary(ctx context.Context, userID string) (string, error)
	RunDailyJob(ctx context.Context)
}

type summaryService struct {
	userRepo    repository.UserRepository
	chatRepo    repository.ChatMessageRepository
	summaryRepo repository.DailySummaryRepository
	completer   Completer
	now         func() time.Time
}

func NewSummaryService(userRepo repository.UserRepository, chatRepo repository.ChatMessageRepository, summaryRepo repository.DailySummaryRepository, completer Completer) SummaryService {
	return &summaryService{
		userRepo:    userRepo,
		chatRepo:    chatRepo,
		summaryRepo: summaryRepo,
		completer:   completer,
		now:         time.Now,
	}
}

// GenerateSummary summarizes the user's 00:00-06:00 Asia/Shanghai window.
// An empty window returns the canned line without calling the API or
// writing anything.
func (s *summaryService) GenerateSummary(ctx context.Context, userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("userId is required")
	}

	start, end := dateutil.MorningWindow(s.now())
	msgs, err := s.chatRepo.ListBetween(ctx, userID, start, end)
	if err != nil {
		return "", err
	}

	filtered := msgs[:0:0]
	for _, m := range msgs {
		if m.Role == model.RoleUser || m.Role == model.RoleAssistant {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		return noMorningChats, nil
	}

	var transcript strings.Builder
	for _, m := range filtered {
		transcript.WriteString(m.Role)
		transcript.WriteString(": ")
		transcript.WriteString(m.Content)
		transcript.WriteString("\n")
	}

	summary, err := s.completer.Complete(ctx, []completion.Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: transcript.String()},
	})
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}

	s.saveWithRetry(ctx, userID, summary)
	return summary, nil
}

// saveWithRetry persists the summary with a bounded retry. Failures are
// logged but do not fail the request; the summary was already generated.
func (s *summaryService) saveWithRetry(ctx context.Context, userID, summary string) {
	row := &model.DailySummary{
		UserID:  userID,
		Summary: summary,
		DateInt: dateutil.DateInt(s.now()),
	}
	var err error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		if err = s.summaryRepo.Create(ctx, row); err == nil {
			return
		}
		log.Printf("[summary] user=%s save attempt %d/%d failed: %v", userID, attempt, saveAttempts, err)
	}
}

// RunDailyJob generates the morning summary for every known user. Errors
// are logged per user; one failure does not stop the sweep.
func (s *summaryService) RunDailyJob(ctx context.Context) {
	ids, err := s.userRepo.ListUserIDs(ctx)
	if err != nil {
		log.Printf("[summary] daily job: list users failed: %v", err)
		return
	}
	log.Printf("[summary] daily job start, users=%d", len(ids))
	for _, id := range ids {
		if _, err := s.GenerateSummary(ctx, id); err != nil {
			log.Printf("[summary] daily job: user=%s failed: %v", id, err)
		}
	}
	log.Printf("[summary] daily job done")
}
