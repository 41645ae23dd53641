package ports

import (
	"context"

	"github.com/bnema/argent-bank-cli/internal/domain"
)

// BankAPI is the backend boundary used by the session and profile commands.
type BankAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	Profile(ctx context.Context, token string) (domain.Identity, error)
	// Signup returns the created identity and the backend's result message.
	Signup(ctx context.Context, reg domain.Registration) (domain.Identity, string, error)
}
