package ports

import (
	"context"

	"github.com/bnema/argent-bank-cli/internal/domain"
)

type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
}
