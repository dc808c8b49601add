package repository

import (
	"context"

	"github.com/shinyyama/companion-backend/internal/model"
	"gorm.io/gorm"
)

type UserTaskRepository interface {
	CreateBatch(ctx context.Context, tasks []model.UserTask) error
	FindByUserAndType(ctx context.Context, userID, taskType string) (*model.UserTask, error)
	ListByUser(ctx context.Context, userID string) ([]model.UserTask, error)
	Save(ctx context.Context, task *model.UserTask) error
	SetDB(db *gorm.DB)
}

type userTaskRepository struct {
	db *gorm.DB
}

func NewUserTaskRepository(db *gorm.DB) UserTaskRepository {
	return &userTaskRepository{db: db}
}

func (r *userTaskRepository) CreateBatch(ctx context.Context, tasks []model.UserTask) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *userTaskRepository) FindByUserAndType(ctx context.Context, userID, taskType string) (*model.UserTask, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var task model.UserTask
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND task_type = ?", userID, taskType).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *userTaskRepository) ListByUser(ctx context.Context, userID string) ([]model.UserTask, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var tasks []model.UserTask
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("task_type ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *userTaskRepository) Save(ctx context.Context, task *model.UserTask) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *userTaskRepository) SetDB(db *gorm.DB) {
	r.db = db
}
