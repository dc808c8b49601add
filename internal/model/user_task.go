package model

import "time"

// UserTask tracks one user's progress on one growth task. Progress is
// monotonically non-decreasing except for daily-reset task types, which
// the growth service zeroes once per Asia/Shanghai calendar day.
// UpdatedAt is what the reset check compares against the day boundary.
type UserTask struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        string    `gorm:"column:user_id;size:128;index:idx_user_task,unique;not null"`
	TaskType      string    `gorm:"column:task_type;size:32;index:idx_user_task,unique;not null"`
	TaskName      string    `gorm:"column:task_name;size:64"`
	Progress      int       `gorm:"column:progress;not null;default:0"`
	IsCompleted   bool      `gorm:"column:is_completed;not null;default:false"`
	PointsClaimed bool      `gorm:"column:points_claimed;not null;default:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (UserTask) TableName() string {
	return "user_tasks"
}
