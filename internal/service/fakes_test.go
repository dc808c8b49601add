package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shinyyama/companion-backend/internal/completion"
	"github.com/shinyyama/companion-backend/internal/dify"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/wechat"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.UserID]; ok {
		return fmt.Errorf("duplicate user %s", user.UserID)
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().UnixMilli()
	}
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByUserID(_ context.Context, userID string) (*model.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Updates(_ context.Context, userID string, fields map[string]interface{}) error {
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "user_nick_name":
			u.UserNickName = v.(string)
		case "ai_agent_name":
			u.AIAgentName = v.(string)
		case "agent_id":
			s := v.(string)
			u.AgentID = &s
		case "status":
			u.Status = v.(model.UserStatus)
		case "last_update_time":
			u.LastUpdateTime = v.(string)
		}
	}
	return nil
}

func (r *fakeUserRepo) ListUserIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeUserRepo) SetDB(*gorm.DB) {}

type fakeGrowthRepo struct {
	rows map[string]*model.UserGrowth
}

func newFakeGrowthRepo() *fakeGrowthRepo {
	return &fakeGrowthRepo{rows: make(map[string]*model.UserGrowth)}
}

func (r *fakeGrowthRepo) Create(_ context.Context, growth *model.UserGrowth) error {
	cp := *growth
	r.rows[growth.UserID] = &cp
	return nil
}

func (r *fakeGrowthRepo) FindByUserID(_ context.Context, userID string) (*model.UserGrowth, error) {
	g, ok := r.rows[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGrowthRepo) AddPoints(_ context.Context, userID string, points int) error {
	g, ok := r.rows[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if points <= 0 {
		return nil
	}
	g.CurrentPoints += points
	if g.CurrentPoints > g.TotalPoints {
		g.CurrentPoints = g.TotalPoints
	}
	return nil
}

func (r *fakeGrowthRepo) SetDB(*gorm.DB) {}

type fakeTaskRepo struct {
	rows map[string]*model.UserTask // key user|type
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{rows: make(map[string]*model.UserTask)}
}

func taskKey(userID, taskType string) string {
	return userID + "|" + taskType
}

func (r *fakeTaskRepo) CreateBatch(_ context.Context, tasks []model.UserTask) error {
	for i := range tasks {
		cp := tasks[i]
		if cp.UpdatedAt.IsZero() {
			cp.UpdatedAt = time.Now()
		}
		r.rows[taskKey(cp.UserID, cp.TaskType)] = &cp
	}
	return nil
}

func (r *fakeTaskRepo) FindByUserAndType(_ context.Context, userID, taskType string) (*model.UserTask, error) {
	t, ok := r.rows[taskKey(userID, taskType)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID string) ([]model.UserTask, error) {
	var out []model.UserTask
	for _, t := range r.rows {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Save(_ context.Context, task *model.UserTask) error {
	cp := *task
	cp.UpdatedAt = time.Now()
	r.rows[taskKey(task.UserID, task.TaskType)] = &cp
	return nil
}

func (r *fakeTaskRepo) SetDB(*gorm.DB) {}

type fakeChatRepo struct {
	msgs []model.ChatMessage
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{}
}

func (r *fakeChatRepo) Create(_ context.Context, msg *model.ChatMessage) error {
	cp := *msg
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	cp.ID = uint64(len(r.msgs) + 1)
	r.msgs = append(r.msgs, cp)
	return nil
}

func (r *fakeChatRepo) ListByUserAndDay(_ context.Context, userID string, dateInt int) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	for _, m := range r.msgs {
		if m.UserID == userID && m.DateInt == dateInt {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) ExistsByUserAndDay(ctx context.Context, userID string, dateInt int) (bool, error) {
	out, err := r.ListByUserAndDay(ctx, userID, dateInt)
	return len(out) > 0, err
}

func (r *fakeChatRepo) ListByTimeRange(_ context.Context, userID string, start, end *time.Time, limit, offset int) ([]model.ChatMessage, int64, error) {
	var out []model.ChatMessage
	for i := len(r.msgs) - 1; i >= 0; i-- {
		m := r.msgs[i]
		if m.UserID != userID {
			continue
		}
		if start != nil && m.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && m.CreatedAt.After(*end) {
			continue
		}
		out = append(out, m)
	}
	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeChatRepo) ListBetween(_ context.Context, userID string, start, end time.Time) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	for _, m := range r.msgs {
		if m.UserID == userID && !m.CreatedAt.Before(start) && m.CreatedAt.Before(end) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) SetDB(*gorm.DB) {}

type fakeDiaryRepo struct {
	rows      map[string]*model.Diary // key user|dateInt
	createErr error                   // forced failure for every Create
}

func newFakeDiaryRepo() *fakeDiaryRepo {
	return &fakeDiaryRepo{rows: make(map[string]*model.Diary)}
}

func diaryKey(userID string, dateInt int) string {
	return fmt.Sprintf("%s|%d", userID, dateInt)
}

func (r *fakeDiaryRepo) Create(_ context.Context, diary *model.Diary) error {
	if r.createErr != nil {
		return r.createErr
	}
	key := diaryKey(diary.UserID, diary.DateInt)
	if _, ok := r.rows[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *diary
	r.rows[key] = &cp
	return nil
}

func (r *fakeDiaryRepo) ExistsByUserAndDay(_ context.Context, userID string, dateInt int) (bool, error) {
	_, ok := r.rows[diaryKey(userID, dateInt)]
	return ok, nil
}

func (r *fakeDiaryRepo) ListByDayRange(_ context.Context, userID string, startDay, endDay int) ([]model.Diary, error) {
	var out []model.Diary
	for _, d := range r.rows {
		if d.UserID == userID && d.DateInt >= startDay && d.DateInt <= endDay {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDiaryRepo) SetDB(*gorm.DB) {}

type fakeSummaryRepo struct {
	rows    []model.DailySummary
	failFor int // fail this many Create calls before succeeding
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{}
}

func (r *fakeSummaryRepo) Create(_ context.Context, summary *model.DailySummary) error {
	if r.failFor > 0 {
		r.failFor--
		return fmt.Errorf("transient save failure")
	}
	r.rows = append(r.rows, *summary)
	return nil
}

func (r *fakeSummaryRepo) FindByUserAndDay(_ context.Context, userID string, dateInt int) (*model.DailySummary, error) {
	for i := range r.rows {
		if r.rows[i].UserID == userID && r.rows[i].DateInt == dateInt {
			cp := r.rows[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSummaryRepo) SetDB(*gorm.DB) {}

// fakeWorkflow records calls and plays back canned replies.
type fakeWorkflow struct {
	calls   []fakeWorkflowCall
	reply   *dify.ChatReply
	replyFn func(message, userID string) (*dify.ChatReply, error)
	err     error
}

type fakeWorkflowCall struct {
	message, userID, nickname, agentName, conversationID string
}

func (f *fakeWorkflow) SendMessage(_ context.Context, message, userID, nickname, agentName, conversationID string) (*dify.ChatReply, error) {
	f.calls = append(f.calls, fakeWorkflowCall{message, userID, nickname, agentName, conversationID})
	if f.err != nil {
		return nil, f.err
	}
	if f.replyFn != nil {
		return f.replyFn(message, userID)
	}
	if f.reply != nil {
		return f.reply, nil
	}
	return &dify.ChatReply{Answer: "ok"}, nil
}

type fakeCompleter struct {
	result string
	err    error
	calls  [][]completion.Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []completion.Message) (string, error) {
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

type fakeExchanger struct {
	sess *wechat.Session
	err  error
}

func (f *fakeExchanger) CodeToSession(_ context.Context, code string) (*wechat.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sess, nil
}
