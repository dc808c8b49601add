package model

import "time"

// DailySummary is the persisted output of the early-morning summary job.
type DailySummary struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;size:128;index:idx_summary_user_day;not null"`
	Summary   string    `gorm:"column:summary;type:text;not null"`
	DateInt   int       `gorm:"column:date_int;index:idx_summary_user_day;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}
