package application

import (
	"errors"
	"strings"

	"github.com/bnema/argent-bank-cli/internal/domain"
)

var ErrAccountTitleRequired = errors.New("account title is required")

type AddAccountCommand struct {
	ID          domain.AccountID
	Title       string
	Amount      domain.Cents
	Description string
}

func (c AddAccountCommand) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrAccountTitleRequired
	}
	return nil
}
