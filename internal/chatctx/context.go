package chatctx

import "context"

type ctxKey string

const (
	keyRID    ctxKey = "chat_rid"
	keyUserID ctxKey = "chat_user_id"
)

// WithRID stores the correlation id for external API call logs.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, keyRID, rid)
}

// RID returns the correlation id if present.
func RID(ctx context.Context) string {
	v, _ := ctx.Value(keyRID).(string)
	return v
}

// WithUserID stores the acting user id for external API call logs.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, keyUserID, userID)
}

// UserID returns the acting user id if present.
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(keyUserID).(string)
	return v
}
