package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	filestore "github.com/bnema/argent-bank-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/argent-bank-cli/internal/adapters/secrets/pass"
	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/bnema/argent-bank-cli/internal/logger"
	"github.com/bnema/argent-bank-cli/internal/ports"
)

// Store is the durable token tier: the password store first, a private file
// when pass is missing or fails. A token lives in exactly one backend at a
// time, so a successful primary write removes the fallback copy.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
	log      *slog.Logger
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary token store is nil")
	errNilFallbackStore = errors.New("fallback token store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore, log *slog.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}
	if log == nil {
		log = logger.Noop()
	}

	return &Store{primary: primary, fallback: fallback, log: log}, nil
}

func NewPassFirstWithFileFallback(passPrefix string, fileRoot string, log *slog.Logger) (*Store, error) {
	return NewStore(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot), log)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		if staleErr := s.fallback.Delete(ctx, key); staleErr != nil {
			s.log.Debug("remove fallback token copy", "key", key, "error", staleErr)
		}
		return nil
	}
	if isCancellation(err) {
		return err
	}

	s.log.Debug("primary token store rejected write, using fallback", "key", key, "error", err)
	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("put token %q: %w", key, errors.Join(err, fallbackErr))
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isCancellation(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	if errors.Is(err, domain.ErrTokenNotFound) && errors.Is(fallbackErr, domain.ErrTokenNotFound) {
		return "", fmt.Errorf("get token %q: %w", key, domain.ErrTokenNotFound)
	}
	return "", fmt.Errorf("get token %q: %w", key, errors.Join(err, fallbackErr))
}

// Delete reaches both backends.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if isCancellation(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	if err == nil && fallbackErr == nil {
		return nil
	}
	if errors.Is(err, passstore.ErrUnavailable) && fallbackErr == nil {
		return nil
	}
	return fmt.Errorf("delete token %q: %w", key, errors.Join(err, fallbackErr))
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
