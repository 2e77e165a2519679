package auth

import (
	"context"
	"net/http"
)

type contextKey string

const (
	UserContextKey  contextKey = "auth.user"
	EmailContextKey contextKey = "auth.email"
)

type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}

// User returns the authenticated user a Provider attached to the context, or
// "" when the request was anonymous.
func User(ctx context.Context) string {
	user, _ := ctx.Value(UserContextKey).(string)
	return user
}

// Email returns the authenticated user's email, or "".
func Email(ctx context.Context) string {
	email, _ := ctx.Value(EmailContextKey).(string)
	return email
}
