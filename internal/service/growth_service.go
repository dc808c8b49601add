package service

import (
	"context"
	"errors"
	"time"

	"github.com/shinyyama/companion-backend/internal/dateutil"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/repository"
	"github.com/shinyyama/companion-backend/internal/task"
	"gorm.io/gorm"
)

// GrowthInfo joins the point balance with every task's current state.
type GrowthInfo struct {
	CurrentPoints int
	TotalPoints   int
	Tasks         []model.UserTask
}

type GrowthService interface {
	GetGrowth(ctx context.Context, userID string) (*GrowthInfo, error)
	AdvanceTask(ctx context.Context, userID string, taskType task.Type) (*model.UserTask, error)
	CompleteTask(ctx context.Context, userID string, taskType task.Type) (*model.UserTask, error)
	ClaimTaskPoints(ctx context.Context, userID string, taskType task.Type) (int, error)
}

type growthService struct {
	growthRepo repository.UserGrowthRepository
	taskRepo   repository.UserTaskRepository
	now        func() time.Time
}

func NewGrowthService(growthRepo repository.UserGrowthRepository, taskRepo repository.UserTaskRepository) GrowthService {
	return &growthService{
		growthRepo: growthRepo,
		taskRepo:   taskRepo,
		now:        time.Now,
	}
}

// maybeReset applies the task's reset policy: daily-reset tasks whose last
// update predates the current Asia/Shanghai day start are zeroed. Returns
// whether the row changed. This is the single place reset policy is
// evaluated; the policy itself lives in the task catalog.
func (s *growthService) maybeReset(ctx context.Context, t *model.UserTask, spec task.Spec) (bool, error) {
	if !spec.DailyReset {
		return false, nil
	}
	if !t.UpdatedAt.Before(dateutil.DayStart(s.now())) {
		return false, nil
	}
	t.Progress = 0
	t.IsCompleted = false
	t.PointsClaimed = false
	if err := s.taskRepo.Save(ctx, t); err != nil {
		return false, err
	}
	return true, nil
}

func (s *growthService) loadTask(ctx context.Context, userID string, taskType task.Type) (*model.UserTask, task.Spec, error) {
	spec, ok := task.Lookup(taskType)
	if !ok {
		return nil, task.Spec{}, ErrUnknownTask
	}
	t, err := s.taskRepo.FindByUserAndType(ctx, userID, string(taskType))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, task.Spec{}, ErrNotFound
		}
		return nil, task.Spec{}, err
	}
	if _, err := s.maybeReset(ctx, t, spec); err != nil {
		return nil, task.Spec{}, err
	}
	return t, spec, nil
}

// GetGrowth returns the balance and every task row, lazily resetting any
// expired daily task first.
func (s *growthService) GetGrowth(ctx context.Context, userID string) (*GrowthInfo, error) {
	growth, err := s.growthRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		spec, ok := task.Lookup(task.Type(tasks[i].TaskType))
		if !ok {
			continue
		}
		if _, err := s.maybeReset(ctx, &tasks[i], spec); err != nil {
			return nil, err
		}
	}
	return &GrowthInfo{
		CurrentPoints: growth.CurrentPoints,
		TotalPoints:   growth.TotalPoints,
		Tasks:         tasks,
	}, nil
}

// AdvanceTask moves progress forward by exactly one, capped at the
// required amount. Advancing a completed task is a no-op. Per-increment
// tasks credit their reward on every advance and are marked claimed on
// completion since nothing is left to collect.
func (s *growthService) AdvanceTask(ctx context.Context, userID string, taskType task.Type) (*model.UserTask, error) {
	t, spec, err := s.loadTask(ctx, userID, taskType)
	if err != nil {
		return nil, err
	}
	if t.IsCompleted {
		return t, nil
	}

	t.Progress++
	if t.Progress > spec.RequiredProgress {
		t.Progress = spec.RequiredProgress
	}
	if spec.RewardPerIncrement {
		if err := s.growthRepo.AddPoints(ctx, userID, spec.RewardPoints); err != nil {
			return nil, err
		}
	}
	if t.Progress >= spec.RequiredProgress {
		t.IsCompleted = true
		if spec.RewardPerIncrement {
			t.PointsClaimed = true
		}
	}
	if err := s.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// CompleteTask jumps the task straight to its required progress.
func (s *growthService) CompleteTask(ctx context.Context, userID string, taskType task.Type) (*model.UserTask, error) {
	t, spec, err := s.loadTask(ctx, userID, taskType)
	if err != nil {
		return nil, err
	}
	if t.IsCompleted {
		return t, nil
	}
	t.Progress = spec.RequiredProgress
	t.IsCompleted = true
	if spec.RewardPerIncrement {
		t.PointsClaimed = true
	}
	if err := s.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ClaimTaskPoints credits the reward for a completed, unclaimed task.
// The points_claimed flag makes a second claim a no-op failure rather
// than a double credit.
func (s *growthService) ClaimTaskPoints(ctx context.Context, userID string, taskType task.Type) (int, error) {
	t, spec, err := s.loadTask(ctx, userID, taskType)
	if err != nil {
		return 0, err
	}
	if !t.IsCompleted || t.PointsClaimed {
		return 0, ErrRewardUnavailable
	}
	if err := s.growthRepo.AddPoints(ctx, userID, spec.RewardPoints); err != nil {
		return 0, err
	}
	t.PointsClaimed = true
	if err := s.taskRepo.Save(ctx, t); err != nil {
		return 0, err
	}
	return spec.RewardPoints, nil
}
