package pkg

import "context"

// contextKey is a private type to avoid collisions in context values
type contextKey string

const sessionKey contextKey = "session"

// Session marks an authenticated dashboard viewer. It is threaded explicitly
// through the request context; the analytics core never inspects it.
type Session struct {
	IssuedAt int64
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func GetSessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}
