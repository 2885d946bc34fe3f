package session

import (
	"context"

	"ordertracker/internal/entities"
)

// Session - неизменяемое представление текущего пользователя.
// Нулевое значение означает неаутентифицированного клиента.
type Session struct {
	Username string
	Role     entities.Role
	TokenID  string
}

func (s Session) CurrentRole() (entities.Role, bool) {
	if !s.IsAuthenticated() {
		return "", false
	}
	return s.Role, true
}

func (s Session) IsAuthenticated() bool {
	return s.Username != "" && s.Role.IsValid()
}

type ctxKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}
