package model

type UserStatus string

const (
	UserStatusLogin     UserStatus = "LOGIN"
	UserStatusChatReady UserStatus = "CHAT_READY"
)

// User is created once per userId and updated in place, never deleted.
// AgentID is the opaque conversation id assigned by the workflow API on
// the user's first chat turn.
type User struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement"`
	UserID         string     `gorm:"column:user_id;size:128;uniqueIndex;not null"`
	UserNickName   string     `gorm:"column:user_nick_name;size:64;not null"`
	AIAgentName    string     `gorm:"column:ai_agent_name;size:64;not null"`
	AgentID        *string    `gorm:"column:agent_id;size:128"`
	Status         UserStatus `gorm:"column:status;size:32;not null;default:LOGIN"`
	CreatedAt      int64      `gorm:"column:created_at;autoCreateTime:milli"`
	LastUpdateTime string     `gorm:"column:last_update_time;size:64"`
}

func (User) TableName() string {
	return "users"
}
