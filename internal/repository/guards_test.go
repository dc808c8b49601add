package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

// Repositories are constructed before the DB comes up; every method must
// fail with ErrDBNotReady instead of dereferencing a nil handle.
func TestNilDBGuards(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	users := NewUserRepository(nil)
	assert.ErrorIs(t, users.Create(ctx, &model.User{}), ErrDBNotReady)
	_, err := users.FindByUserID(ctx, "u1")
	assert.ErrorIs(t, err, ErrDBNotReady)
	assert.ErrorIs(t, users.Updates(ctx, "u1", map[string]interface{}{}), ErrDBNotReady)
	_, err = users.ListUserIDs(ctx)
	assert.ErrorIs(t, err, ErrDBNotReady)

	growth := NewUserGrowthRepository(nil)
	assert.ErrorIs(t, growth.Create(ctx, &model.UserGrowth{}), ErrDBNotReady)
	_, err = growth.FindByUserID(ctx, "u1")
	assert.ErrorIs(t, err, ErrDBNotReady)
	assert.ErrorIs(t, growth.AddPoints(ctx, "u1", 5), ErrDBNotReady)

	tasks := NewUserTaskRepository(nil)
	assert.ErrorIs(t, tasks.CreateBatch(ctx, []model.UserTask{{}}), ErrDBNotReady)
	_, err = tasks.FindByUserAndType(ctx, "u1", "X")
	assert.ErrorIs(t, err, ErrDBNotReady)
	_, err = tasks.ListByUser(ctx, "u1")
	assert.ErrorIs(t, err, ErrDBNotReady)
	assert.ErrorIs(t, tasks.Save(ctx, &model.UserTask{}), ErrDBNotReady)

	chats := NewChatMessageRepository(nil)
	assert.ErrorIs(t, chats.Create(ctx, &model.ChatMessage{}), ErrDBNotReady)
	_, err = chats.ListByUserAndDay(ctx, "u1", 20250101)
	assert.ErrorIs(t, err, ErrDBNotReady)
	_, err = chats.ExistsByUserAndDay(ctx, "u1", 20250101)
	assert.ErrorIs(t, err, ErrDBNotReady)
	_, _, err = chats.ListByTimeRange(ctx, "u1", nil, nil, 10, 0)
	assert.ErrorIs(t, err, ErrDBNotReady)
	_, err = chats.ListBetween(ctx, "u1", now, now)
	assert.ErrorIs(t, err, ErrDBNotReady)

	diaries := NewDiaryRepository(nil)
	assert.ErrorIs(t, diaries.Create(ctx, &model.Diary{}), ErrDBNotReady)
	_, err = diaries.ExistsByUserAndDay(ctx, "u1", 20250101)
	assert.ErrorIs(t, err, ErrDBNotReady)
	_, err = diaries.ListByDayRange(ctx, "u1", 20250101, 20250107)
	assert.ErrorIs(t, err, ErrDBNotReady)

	summaries := NewDailySummaryRepository(nil)
	assert.ErrorIs(t, summaries.Create(ctx, &model.DailySummary{}), ErrDBNotReady)
	_, err = summaries.FindByUserAndDay(ctx, "u1", 20250101)
	assert.ErrorIs(t, err, ErrDBNotReady)
}
