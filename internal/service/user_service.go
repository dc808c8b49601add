package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/repository"
	"github.com/shinyyama/companion-backend/internal/task"
	"github.com/shinyyama/companion-backend/internal/wechat"
	"gorm.io/gorm"
)

// CodeExchanger exchanges a WeChat login code for the user's identity.
type CodeExchanger interface {
	CodeToSession(ctx context.Context, code string) (*wechat.Session, error)
}

// UserStatusInfo joins the user record with its growth balance and the
// number of whole days since the account was created.
type UserStatusInfo struct {
	User          *model.User
	CurrentPoints int
	TotalPoints   int
	ElapsedDays   int
}

type UserService interface {
	Create(ctx context.Context, userID, nickname, agentName string) (created bool, err error)
	Update(ctx context.Context, userID string, nickname, agentName, agentID *string) error
	GetStatus(ctx context.Context, userID string) (*UserStatusInfo, error)
	Login(ctx context.Context, code, nickname, agentName string) (*model.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	growthRepo repository.UserGrowthRepository
	taskRepo   repository.UserTaskRepository
	identity   CodeExchanger
	now        func() time.Time
}

func NewUserService(userRepo repository.UserRepository, growthRepo repository.UserGrowthRepository, taskRepo repository.UserTaskRepository, identity CodeExchanger) UserService {
	return &userService{
		userRepo:   userRepo,
		growthRepo: growthRepo,
		taskRepo:   taskRepo,
		identity:   identity,
		now:        time.Now,
	}
}

// Create is idempotent: an existing userId is a no-op, not an error.
// A fresh user gets its growth row and one task row per catalog entry.
func (s *userService) Create(ctx context.Context, userID, nickname, agentName string) (bool, error) {
	if userID == "" {
		return false, errors.New("userId is required")
	}
	if _, err := s.userRepo.FindByUserID(ctx, userID); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	now := s.now().Format(time.RFC3339)
	user := &model.User{
		UserID:         userID,
		UserNickName:   nickname,
		AIAgentName:    agentName,
		Status:         model.UserStatusLogin,
		LastUpdateTime: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}

	growth := &model.UserGrowth{
		UserID:         userID,
		CurrentPoints:  0,
		TotalPoints:    model.TotalPointsCeiling,
		LastUpdateTime: now,
	}
	if err := s.growthRepo.Create(ctx, growth); err != nil {
		return false, fmt.Errorf("create user growth: %w", err)
	}

	specs := task.All()
	tasks := make([]model.UserTask, 0, len(specs))
	for _, spec := range specs {
		tasks = append(tasks, model.UserTask{
			UserID:   userID,
			TaskType: string(spec.Type),
			TaskName: spec.Name,
		})
	}
	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return false, fmt.Errorf("create user tasks: %w", err)
	}
	return true, nil
}

func (s *userService) Update(ctx context.Context, userID string, nickname, agentName, agentID *string) error {
	fields := map[string]interface{}{
		"last_update_time": s.now().Format(time.RFC3339),
	}
	if nickname != nil {
		fields["user_nick_name"] = *nickname
	}
	if agentName != nil {
		fields["ai_agent_name"] = *agentName
	}
	if agentID != nil {
		fields["agent_id"] = *agentID
	}
	if err := s.userRepo.Updates(ctx, userID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *userService) GetStatus(ctx context.Context, userID string) (*UserStatusInfo, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	growth, err := s.growthRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &UserStatusInfo{
		User:          user,
		CurrentPoints: growth.CurrentPoints,
		TotalPoints:   growth.TotalPoints,
		ElapsedDays:   elapsedDays(user.CreatedAt, s.now()),
	}, nil
}

// elapsedDays counts whole days since creation, rounding up, minimum 1.
func elapsedDays(createdAtMillis int64, now time.Time) int {
	elapsed := now.UnixMilli() - createdAtMillis
	if elapsed <= 0 {
		return 1
	}
	const dayMillis = 24 * 60 * 60 * 1000
	days := int((elapsed + dayMillis - 1) / dayMillis)
	if days < 1 {
		days = 1
	}
	return days
}

// Login exchanges the authorization code for an openid, then creates or
// updates the local user keyed on that identifier.
func (s *userService) Login(ctx context.Context, code, nickname, agentName string) (*model.User, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrLoginRejected)
	}
	sess, err := s.identity.CodeToSession(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginRejected, err)
	}

	if _, err := s.Create(ctx, sess.OpenID, nickname, agentName); err != nil {
		return nil, err
	}
	if nickname != "" || agentName != "" {
		fields := map[string]interface{}{
			"last_update_time": s.now().Format(time.RFC3339),
		}
		if nickname != "" {
			fields["user_nick_name"] = nickname
		}
		if agentName != "" {
			fields["ai_agent_name"] = agentName
		}
		if err := s.userRepo.Updates(ctx, sess.OpenID, fields); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return s.userRepo.FindByUserID(ctx, sess.OpenID)
}
