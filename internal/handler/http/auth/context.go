// Package auth provides registration/login endpoints, JWT issuance and the
// authentication middleware guarding protected routes.
package auth

import "context"

// ctxKey is a custom type for context keys to avoid collisions.
type ctxKey string

const ctxUserID ctxKey = "user_id"

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ctxUserID, id)
}

// UserIDFrom retrieves the authenticated user's ID from the context.
// The second return value is false when no user is attached.
func UserIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxUserID).(int64)
	return id, ok
}
