package repository

import (
	"context"
	"time"

	"github.com/shinyyama/companion-backend/internal/model"
	"gorm.io/gorm"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, msg *model.ChatMessage) error
	ListByUserAndDay(ctx context.Context, userID string, dateInt int) ([]model.ChatMessage, error)
	ExistsByUserAndDay(ctx context.Context, userID string, dateInt int) (bool, error)
	ListByTimeRange(ctx context.Context, userID string, start, end *time.Time, limit, offset int) ([]model.ChatMessage, int64, error)
	ListBetween(ctx context.Context, userID string, start, end time.Time) ([]model.ChatMessage, error)
	SetDB(db *gorm.DB)
}

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) Create(ctx context.Context, msg *model.ChatMessage) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatMessageRepository) ListByUserAndDay(ctx context.Context, userID string, dateInt int) ([]model.ChatMessage, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var msgs []model.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_int = ?", userID, dateInt).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *chatMessageRepository) ExistsByUserAndDay(ctx context.Context, userID string, dateInt int) (bool, error) {
	if r.db == nil {
		return false, ErrDBNotReady
	}
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.ChatMessage{}).
		Where("user_id = ? AND date_int = ?", userID, dateInt).
		Limit(1).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ListByTimeRange returns messages newest-first; start/end are optional.
func (r *chatMessageRepository) ListByTimeRange(ctx context.Context, userID string, start, end *time.Time, limit, offset int) ([]model.ChatMessage, int64, error) {
	if r.db == nil {
		return nil, 0, ErrDBNotReady
	}
	q := r.db.WithContext(ctx).
		Model(&model.ChatMessage{}).
		Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("created_at <= ?", *end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var msgs []model.ChatMessage
	if err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error; err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

func (r *chatMessageRepository) ListBetween(ctx context.Context, userID string, start, end time.Time) ([]model.ChatMessage, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var msgs []model.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *chatMessageRepository) SetDB(db *gorm.DB) {
	r.db = db
}
