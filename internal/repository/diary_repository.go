package repository

import (
	"context"

	"github.com/shinyyama/companion-backend/internal/model"
	"gorm.io/gorm"
)

type DiaryRepository interface {
	Create(ctx context.Context, diary *model.Diary) error
	ExistsByUserAndDay(ctx context.Context, userID string, dateInt int) (bool, error)
	ListByDayRange(ctx context.Context, userID string, startDay, endDay int) ([]model.Diary, error)
	SetDB(db *gorm.DB)
}

type diaryRepository struct {
	db *gorm.DB
}

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

// Create is insert-only; the (user_id, date_int) unique index rejects a
// second diary for the same day.
func (r *diaryRepository) Create(ctx context.Context, diary *model.Diary) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(diary).Error
}

func (r *diaryRepository) ExistsByUserAndDay(ctx context.Context, userID string, dateInt int) (bool, error) {
	if r.db == nil {
		return false, ErrDBNotReady
	}
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Diary{}).
		Where("user_id = ? AND date_int = ?", userID, dateInt).
		Limit(1).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *diaryRepository) ListByDayRange(ctx context.Context, userID string, startDay, endDay int) ([]model.Diary, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var diaries []model.Diary
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_int >= ? AND date_int <= ?", userID, startDay, endDay).
		Order("date_int ASC").
		Find(&diaries).Error; err != nil {
		return nil, err
	}
	return diaries, nil
}

func (r *diaryRepository) SetDB(db *gorm.DB) {
	r.db = db
}
