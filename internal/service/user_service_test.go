package service

import (
	"context"
	"testing"
	"time"

	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/task"
	"github.com/shinyyama/companion-backend/internal/wechat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*userService, *fakeUserRepo, *fakeGrowthRepo, *fakeTaskRepo) {
	userRepo := newFakeUserRepo()
	growthRepo := newFakeGrowthRepo()
	taskRepo := newFakeTaskRepo()
	svc := &userService{
		userRepo:   userRepo,
		growthRepo: growthRepo,
		taskRepo:   taskRepo,
		now:        time.Now,
	}
	return svc, userRepo, growthRepo, taskRepo
}

func TestCreateUserProvisionsGrowthAndTasks(t *testing.T) {
	svc, userRepo, growthRepo, taskRepo := newUserFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", "小明", "小伴")
	require.NoError(t, err)
	assert.True(t, created)

	u, err := userRepo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusLogin, u.Status)
	assert.Equal(t, "小明", u.UserNickName)
	assert.Equal(t, "小伴", u.AIAgentName)

	g, err := growthRepo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, g.CurrentPoints)
	assert.Equal(t, model.TotalPointsCeiling, g.TotalPoints)

	tasks, err := taskRepo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, tasks, len(task.All()))
}

func TestCreateUserIsIdempotent(t *testing.T) {
	svc, _, _, taskRepo := newUserFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1", "a", "b")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Create(ctx, "u1", "other", "other")
	require.NoError(t, err)
	assert.False(t, created)

	tasks, err := taskRepo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, tasks, len(task.All()))
}

func TestCreateUserRequiresID(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	_, err := svc.Create(context.Background(), "", "a", "b")
	assert.Error(t, err)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	nick := "x"
	err := svc.Update(context.Background(), "nope", &nick, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePartialFields(t *testing.T) {
	svc, userRepo, _, _ := newUserFixture()
	ctx := context.Background()
	_, err := svc.Create(ctx, "u1", "小明", "小伴")
	require.NoError(t, err)

	agent := "阿福"
	require.NoError(t, svc.Update(ctx, "u1", nil, &agent, nil))

	u, err := userRepo.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "小明", u.UserNickName)
	assert.Equal(t, "阿福", u.AIAgentName)
}

func TestGetStatusElapsedDays(t *testing.T) {
	svc, userRepo, growthRepo, _ := newUserFixture()
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, userRepo.Create(ctx, &model.User{
		UserID:    "u1",
		CreatedAt: base.UnixMilli(),
	}))
	require.NoError(t, growthRepo.Create(ctx, &model.UserGrowth{
		UserID:      "u1",
		TotalPoints: model.TotalPointsCeiling,
	}))

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", base, 1},
		{"an hour in", base.Add(time.Hour), 1},
		{"just past one day", base.Add(24*time.Hour + time.Minute), 2},
		{"a week later", base.Add(7 * 24 * time.Hour), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc.now = func() time.Time { return tc.now }
			info, err := svc.GetStatus(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, info.ElapsedDays)
		})
	}
}

func TestGetStatusUnknownUser(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	_, err := svc.GetStatus(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoginCreatesUserFromOpenID(t *testing.T) {
	svc, userRepo, _, taskRepo := newUserFixture()
	svc.identity = &fakeExchanger{sess: &wechat.Session{OpenID: "openid-123"}}
	ctx := context.Background()

	u, err := svc.Login(ctx, "code-abc", "小明", "小伴")
	require.NoError(t, err)
	assert.Equal(t, "openid-123", u.UserID)
	assert.Equal(t, "小明", u.UserNickName)

	tasks, err := taskRepo.ListByUser(ctx, "openid-123")
	require.NoError(t, err)
	assert.Len(t, tasks, len(task.All()))

	// Second login with a fresh nickname updates in place.
	u, err = svc.Login(ctx, "code-def", "新名字", "")
	require.NoError(t, err)
	assert.Equal(t, "新名字", u.UserNickName)
	assert.Equal(t, "小伴", u.AIAgentName)

	stored, err := userRepo.FindByUserID(ctx, "openid-123")
	require.NoError(t, err)
	assert.Equal(t, "新名字", stored.UserNickName)
}

func TestLoginRejectsEmptyCode(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	svc.identity = &fakeExchanger{sess: &wechat.Session{OpenID: "x"}}
	_, err := svc.Login(context.Background(), "", "a", "b")
	assert.ErrorIs(t, err, ErrLoginRejected)
}

func TestLoginRejectsBadCode(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	svc.identity = &fakeExchanger{err: assert.AnError}
	_, err := svc.Login(context.Background(), "bad", "a", "b")
	assert.ErrorIs(t, err, ErrLoginRejected)
}
