package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/bnema/argent-bank-cli/internal/ports"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Service serves the account catalogue shown on the profile page.
type Service struct {
	repo ports.AccountRepository
}

func NewService(repo ports.AccountRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *Service) AddAccount(ctx context.Context, cmd AddAccountCommand) (domain.Account, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:          cmd.ID,
		Title:       strings.TrimSpace(cmd.Title),
		Amount:      cmd.Amount,
		Description: strings.TrimSpace(cmd.Description),
	}
	if strings.TrimSpace(string(account.ID)) == "" {
		account.ID = slugID(account.Title)
	}

	if err := s.repo.Save(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("save account: %w", err)
	}
	return account, nil
}

// ProfilePage requires a connected state; otherwise it returns
// domain.ErrSignInRequired.
func (s *Service) ProfilePage(ctx context.Context, state State) (ProfilePage, error) {
	if !IsConnected(state.Session, state.Profile) {
		return ProfilePage{}, domain.ErrSignInRequired
	}

	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return ProfilePage{}, err
	}

	return ProfilePage{Profile: ProfileViewOf(state.Profile), Accounts: accounts}, nil
}

func slugID(title string) domain.AccountID {
	slug := strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		slug = "account"
	}
	return domain.AccountID(slug)
}
