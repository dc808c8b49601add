package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shinyyama/companion-backend/internal/config"
	"github.com/shinyyama/companion-backend/internal/dateutil"
	"github.com/shinyyama/companion-backend/internal/db"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/task"
	"gorm.io/gorm"
)

// Seeds a demo user with a growth row, the task catalog rows, and a few
// chat turns so diary backfill and the growth endpoints have data to
// work with locally.
func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(
		&model.User{},
		&model.UserGrowth{},
		&model.UserTask{},
		&model.ChatMessage{},
		&model.Diary{},
		&model.DailySummary{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	userID := os.Getenv("SEED_USER_ID")
	if userID == "" {
		userID = "demo-user"
	}

	var existing model.User
	err = conn.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	if err == nil && os.Getenv("FORCE_SEED") != "true" {
		log.Printf("user %s already exists; skipping seed (set FORCE_SEED=true to override)", userID)
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now().Format(time.RFC3339)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user := model.User{
			UserID:         userID,
			UserNickName:   "小明",
			AIAgentName:    "小伴",
			Status:         model.UserStatusLogin,
			LastUpdateTime: now,
		}
		if err := conn.WithContext(ctx).Create(&user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		growth := model.UserGrowth{
			UserID:         userID,
			TotalPoints:    model.TotalPointsCeiling,
			LastUpdateTime: now,
		}
		if err := conn.WithContext(ctx).Create(&growth).Error; err != nil {
			return fmt.Errorf("create growth: %w", err)
		}
		for _, spec := range task.All() {
			t := model.UserTask{
				UserID:   userID,
				TaskType: string(spec.Type),
				TaskName: spec.Name,
			}
			if err := conn.WithContext(ctx).Create(&t).Error; err != nil {
				return fmt.Errorf("create task %s: %w", spec.Type, err)
			}
		}
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	turns := []model.ChatMessage{
		{UserID: userID, Role: model.RoleUser, Content: "今天有点累。", AgentName: "小伴", CreatedAt: yesterday, DateInt: dateutil.DateInt(yesterday)},
		{UserID: userID, Role: model.RoleAssistant, Content: "辛苦啦，要不要聊聊今天发生了什么？", AgentName: "小伴", CreatedAt: yesterday.Add(time.Minute), DateInt: dateutil.DateInt(yesterday)},
	}
	for i := range turns {
		if err := conn.WithContext(ctx).Create(&turns[i]).Error; err != nil {
			return fmt.Errorf("create chat turn: %w", err)
		}
	}

	log.Printf("seeded demo user %s", userID)
	return nil
}
