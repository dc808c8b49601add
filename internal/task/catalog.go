package task

// Type identifies one of the fixed growth tasks.
type Type string

const (
	ChatRounds     Type = "CHAT_ROUNDS"
	FortuneTelling Type = "FORTUNE_TELLING"
	DailyCheckIn   Type = "DAILY_CHECK_IN"
)

// Spec carries a task's reset and reward policy as data so the growth
// service can evaluate every task through one generic routine instead of
// per-type conditionals.
//
// RewardPerIncrement credits RewardPoints on every advance; such tasks
// have nothing left to claim once completed. All other tasks credit the
// full reward exactly once, at claim time, after completion.
// DailyReset zeroes the task at each Asia/Shanghai day boundary.
type Spec struct {
	Type               Type
	Name               string
	RequiredProgress   int
	RewardPoints       int
	RewardPerIncrement bool
	DailyReset         bool
}

var catalog = map[Type]Spec{
	ChatRounds: {
		Type:               ChatRounds,
		Name:               "聊天达人",
		RequiredProgress:   20,
		RewardPoints:       5,
		RewardPerIncrement: true,
	},
	FortuneTelling: {
		Type:             FortuneTelling,
		Name:             "塔罗占卜",
		RequiredProgress: 1,
		RewardPoints:     50,
	},
	DailyCheckIn: {
		Type:             DailyCheckIn,
		Name:             "每日打卡",
		RequiredProgress: 1,
		RewardPoints:     20,
		DailyReset:       true,
	},
}

// Lookup returns the spec for t, or ok=false for an unknown task type.
func Lookup(t Type) (Spec, bool) {
	s, ok := catalog[t]
	return s, ok
}

// All returns every task spec in a stable order.
func All() []Spec {
	return []Spec{catalog[ChatRounds], catalog[FortuneTelling], catalog[DailyCheckIn]}
}
