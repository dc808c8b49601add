package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is an append-only record of one conversation turn.
// DateInt is the YYYYMMDD day key used for per-day partitioning.
type ChatMessage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;size:128;index:idx_user_day;not null"`
	Role      string    `gorm:"column:role;size:16;not null"`
	Content   string    `gorm:"column:content;type:text;not null"`
	AgentName string    `gorm:"column:agent_name;size:64"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	DateInt   int       `gorm:"column:date_int;index:idx_user_day;not null"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
