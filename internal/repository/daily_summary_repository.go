package repository

import (
	"context"

	"github.com/shinyyama/companion-backend/internal/model"
	"gorm.io/gorm"
)

type DailySummaryRepository interface {
	Create(ctx context.Context, summary *model.DailySummary) error
	FindByUserAndDay(ctx context.Context, userID string, dateInt int) (*model.DailySummary, error)
	SetDB(db *gorm.DB)
}

type dailySummaryRepository struct {
	db *gorm.DB
}

func NewDailySummaryRepository(db *gorm.DB) DailySummaryRepository {
	return &dailySummaryRepository{db: db}
}

func (r *dailySummaryRepository) Create(ctx context.Context, summary *model.DailySummary) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *dailySummaryRepository) FindByUserAndDay(ctx context.Context, userID string, dateInt int) (*model.DailySummary, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var s model.DailySummary
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_int = ?", userID, dateInt).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *dailySummaryRepository) SetDB(db *gorm.DB) {
	r.db = db
}
