package tiered

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/bnema/argent-bank-cli/internal/logger"
	"github.com/bnema/argent-bank-cli/internal/ports"
)

const (
	tierSession = "session"
	tierDurable = "durable"
)

// Storage spreads the token over a session-scoped tier and a durable tier.
// A nil tier is treated as unavailable: reads miss and writes are skipped.
type Storage struct {
	session ports.SecretStore
	durable ports.SecretStore
	log     *slog.Logger
}

var _ ports.TokenStorage = (*Storage)(nil)

func New(session ports.SecretStore, durable ports.SecretStore, log *slog.Logger) *Storage {
	if log == nil {
		log = logger.Noop()
	}
	s := &Storage{session: session, durable: durable, log: log}
	if session == nil {
		log.Warn("token storage tier unavailable", "tier", tierSession)
	}
	if durable == nil {
		log.Warn("token storage tier unavailable", "tier", tierDurable)
	}
	return s
}

// Read returns the session copy first and the durable copy second.
func (s *Storage) Read(ctx context.Context) (string, bool) {
	if token, ok := s.get(ctx, tierSession, s.session); ok {
		return token, true
	}
	return s.get(ctx, tierDurable, s.durable)
}

func (s *Storage) Write(ctx context.Context, token string, persistent bool) {
	s.put(ctx, tierSession, s.session, token)
	if persistent {
		s.put(ctx, tierDurable, s.durable, token)
	}
}

func (s *Storage) Clear(ctx context.Context, persistent bool) {
	s.delete(ctx, tierSession, s.session)
	if persistent {
		s.delete(ctx, tierDurable, s.durable)
	}
}

// Remembered reports whether the durable tier holds a token.
func (s *Storage) Remembered(ctx context.Context) bool {
	_, ok := s.get(ctx, tierDurable, s.durable)
	return ok
}

func (s *Storage) get(ctx context.Context, tier string, store ports.SecretStore) (string, bool) {
	if store == nil {
		return "", false
	}

	value, err := store.Get(ctx, domain.TokenKey)
	if err != nil {
		if !errors.Is(err, domain.ErrTokenNotFound) {
			s.log.Warn("read token", "tier", tier, "error", err)
		}
		return "", false
	}
	if value == "" {
		return "", false
	}
	return value, true
}

func (s *Storage) put(ctx context.Context, tier string, store ports.SecretStore, token string) {
	if store == nil {
		s.log.Debug("skip token write", "tier", tier, "error", domain.ErrTierUnavailable)
		return
	}
	if err := store.Put(ctx, domain.TokenKey, token); err != nil {
		s.log.Warn("write token", "tier", tier, "error", err)
	}
}

func (s *Storage) delete(ctx context.Context, tier string, store ports.SecretStore) {
	if store == nil {
		return
	}
	if err := store.Delete(ctx, domain.TokenKey); err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
		s.log.Warn("clear token", "tier", tier, "error", err)
	}
}
