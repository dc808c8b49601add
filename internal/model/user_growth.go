package model

// TotalPointsCeiling is the fixed growth point ceiling every account shares.
const TotalPointsCeiling = 1000

// UserGrowth holds the per-user point balance. One row per user, created
// alongside the User row.
type UserGrowth struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	UserID         string `gorm:"column:user_id;size:128;uniqueIndex;not null"`
	CurrentPoints  int    `gorm:"column:current_points;not null;default:0"`
	TotalPoints    int    `gorm:"column:total_points;not null;default:1000"`
	LastUpdateTime string `gorm:"column:last_update_time;size:64"`
}

func (UserGrowth) TableName() string {
	return "user_growth"
}
