package ports

import "context"

// TokenStorage persists the session token across process restarts.
type TokenStorage interface {
	Read(ctx context.Context) (string, bool)
	Write(ctx context.Context, token string, persistent bool)
	Clear(ctx context.Context, persistent bool)
	Remembered(ctx context.Context) bool
}
