package app

import (
	"context"
	"errors"
)

type contextKey struct{}

var errNoApp = errors.New("application not initialized")

// SetAppInContext stores the App in context
func SetAppInContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// GetAppFromContext retrieves the App from context, or nil
func GetAppFromContext(ctx context.Context) *App {
	a, _ := ctx.Value(contextKey{}).(*App)
	return a
}

// FromContext is GetAppFromContext for command handlers that cannot run
// without an App
func FromContext(ctx context.Context) (*App, error) {
	if a := GetAppFromContext(ctx); a != nil {
		return a, nil
	}
	return nil, errNoApp
}
