package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shinyyama/companion-backend/internal/dateutil"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/repository"
	"gorm.io/gorm"
)

// backfillWindow is how many trailing days the backfill walk covers.
const backfillWindow = 7

const emptyDayDiary = "这一天没有和我聊天，日记先空着啦。"

const diaryPromptHeader = "请根据下面这位用户一天的聊天记录，以第一人称写一篇温暖简短的日记，不超过200字。\n\n聊天记录：\n"

type DiaryService interface {
	GetDiaries(ctx context.Context, userID string, startDay, endDay int) ([]model.Diary, error)
	GetRecentDiaries(ctx context.Context, userID string) ([]model.Diary, error)
}

type diaryService struct {
	diaryRepo repository.DiaryRepository
	chatRepo  repository.ChatMessageRepository
	workflow  WorkflowClient
	now       func() time.Time
}

func NewDiaryService(diaryRepo repository.DiaryRepository, chatRepo repository.ChatMessageRepository, workflow WorkflowClient) DiaryService {
	return &diaryService{
		diaryRepo: diaryRepo,
		chatRepo:  chatRepo,
		workflow:  workflow,
		now:       time.Now,
	}
}

// backfill walks backward from yesterday over the trailing window. The
// first day that already has a diary halts the walk; all earlier days are
// treated as backfilled. Day stepping uses calendar arithmetic so month
// boundaries are handled.
func (s *diaryService) backfill(ctx context.Context, userID string) error {
	day := dateutil.DateInt(s.now().AddDate(0, 0, -1))
	for i := 0; i < backfillWindow; i++ {
		exists, err := s.diaryRepo.ExistsByUserAndDay(ctx, userID, day)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		if err := s.createDiaryForDay(ctx, userID, day); err != nil {
			return err
		}
		day = dateutil.PrevDay(day)
	}
	return nil
}

func (s *diaryService) createDiaryForDay(ctx context.Context, userID string, day int) error {
	msgs, err := s.chatRepo.ListByUserAndDay(ctx, userID, day)
	if err != nil {
		return err
	}

	text := emptyDayDiary
	if len(msgs) > 0 {
		generated, err := s.generateDiary(ctx, userID, msgs)
		if err != nil {
			return fmt.Errorf("generate diary for %d: %w", day, err)
		}
		text = generated
	}

	diary := &model.Diary{
		UserID:  userID,
		Diary:   text,
		Date:    dateutil.DayOf(day).Format("2006年01月02日"),
		DateInt: day,
	}
	if err := s.diaryRepo.Create(ctx, diary); err != nil {
		// Unique index on (user_id, date_int); a concurrent writer
		// winning the insert is fine, anything else is not.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("[diary] user=%s day=%d already written", userID, day)
			return nil
		}
		return fmt.Errorf("save diary for %d: %w", day, err)
	}
	return nil
}

// generateDiary renders the day's transcript into a workflow prompt. The
// synthetic "diary:" user keeps these calls out of the user's own
// conversation thread.
func (s *diaryService) generateDiary(ctx context.Context, userID string, msgs []model.ChatMessage) (string, error) {
	var b strings.Builder
	b.WriteString(diaryPromptHeader)
	for _, m := range msgs {
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	reply, err := s.workflow.SendMessage(ctx, b.String(), "diary:"+userID, "", "", "")
	if err != nil {
		return "", err
	}
	return reply.Answer, nil
}

// GetDiaries runs the backfill pass, then returns diaries in the
// requested date_int range.
func (s *diaryService) GetDiaries(ctx context.Context, userID string, startDay, endDay int) ([]model.Diary, error) {
	if err := s.backfill(ctx, userID); err != nil {
		return nil, err
	}
	return s.diaryRepo.ListByDayRange(ctx, userID, startDay, endDay)
}

// GetRecentDiaries is the last-7-days convenience fetch ending yesterday.
func (s *diaryService) GetRecentDiaries(ctx context.Context, userID string) ([]model.Diary, error) {
	end := dateutil.DateInt(s.now().AddDate(0, 0, -1))
	start := dateutil.DateInt(s.now().AddDate(0, 0, -backfillWindow))
	return s.GetDiaries(ctx, userID, start, end)
}
