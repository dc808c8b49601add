package repository

import (
	"context"
	"time"

	"github.com/shinyyama/companion-backend/internal/model"
	"gorm.io/gorm"
)

type UserGrowthRepository interface {
	Create(ctx context.Context, growth *model.UserGrowth) error
	FindByUserID(ctx context.Context, userID string) (*model.UserGrowth, error)
	AddPoints(ctx context.Context, userID string, points int) error
	SetDB(db *gorm.DB)
}

type userGrowthRepository struct {
	db *gorm.DB
}

func NewUserGrowthRepository(db *gorm.DB) UserGrowthRepository {
	return &userGrowthRepository{db: db}
}

func (r *userGrowthRepository) Create(ctx context.Context, growth *model.UserGrowth) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(growth).Error
}

func (r *userGrowthRepository) FindByUserID(ctx context.Context, userID string) (*model.UserGrowth, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var growth model.UserGrowth
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&growth).Error; err != nil {
		return nil, err
	}
	return &growth, nil
}

// AddPoints credits points atomically, clamped to the total_points ceiling.
func (r *userGrowthRepository) AddPoints(ctx context.Context, userID string, points int) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	if points <= 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.UserGrowth{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"current_points":   gorm.Expr("LEAST(current_points + ?, total_points)", points),
			"last_update_time": time.Now().Format(time.RFC3339),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userGrowthRepository) SetDB(db *gorm.DB) {
	r.db = db
}
