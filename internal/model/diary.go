package model

import "time"

// Diary holds one generated summary per user per calendar day. The
// (user_id, date_int) unique index enforces the at-most-one invariant;
// rows are insert-only and never updated.
type Diary struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;size:128;index:idx_diary_user_day,unique;not null"`
	Diary     string    `gorm:"column:diary;type:text;not null"`
	Date      string    `gorm:"column:date;size:32"`
	DateInt   int       `gorm:"column:date_int;index:idx_diary_user_day,unique;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Diary) TableName() string {
	return "diary"
}
