package tiered

import (
	"bytes"
	"context"
	"errors"
	"testing"

	filestore "github.com/bnema/argent-bank-cli/internal/adapters/secrets/file"
	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/bnema/argent-bank-cli/internal/logger"
	"github.com/bnema/argent-bank-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileTiers(t *testing.T) (*filestore.Store, *filestore.Store) {
	t.Helper()
	return filestore.NewStore(t.TempDir()), filestore.NewStore(t.TempDir())
}

func TestWriteNonPersistentTouchesOnlySessionTier(t *testing.T) {
	ctx := context.Background()
	session, durable := newFileTiers(t)
	storage := New(session, durable, logger.Noop())

	storage.Write(ctx, "h.p.s", false)

	got, err := session.Get(ctx, domain.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "h.p.s", got)

	_, err = durable.Get(ctx, domain.TokenKey)
	require.ErrorIs(t, err, domain.ErrTokenNotFound)
	assert.False(t, storage.Remembered(ctx))
}

func TestWritePersistentTouchesBothTiers(t *testing.T) {
	ctx := context.Background()
	session, durable := newFileTiers(t)
	storage := New(session, durable, logger.Noop())

	storage.Write(ctx, "h.p.s", true)

	for _, store := range []*filestore.Store{session, durable} {
		got, err := store.Get(ctx, domain.TokenKey)
		require.NoError(t, err)
		assert.Equal(t, "h.p.s", got)
	}
	assert.True(t, storage.Remembered(ctx))
}

func TestReadPrefersSessionTier(t *testing.T) {
	ctx := context.Background()
	session, durable := newFileTiers(t)
	require.NoError(t, session.Put(ctx, domain.TokenKey, "session.tok.en"))
	require.NoError(t, durable.Put(ctx, domain.TokenKey, "durable.tok.en"))

	token, ok := New(session, durable, logger.Noop()).Read(ctx)
	require.True(t, ok)
	assert.Equal(t, "session.tok.en", token)
}

func TestReadFallsBackToDurableTier(t *testing.T) {
	ctx := context.Background()
	session, durable := newFileTiers(t)
	require.NoError(t, durable.Put(ctx, domain.TokenKey, "durable.tok.en"))

	token, ok := New(session, durable, logger.Noop()).Read(ctx)
	require.True(t, ok)
	assert.Equal(t, "durable.tok.en", token)
}

func TestReadAbsentWhenBothTiersEmpty(t *testing.T) {
	session, durable := newFileTiers(t)

	token, ok := New(session, durable, logger.Noop()).Read(context.Background())
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestClearNonPersistentKeepsDurableCopy(t *testing.T) {
	ctx := context.Background()
	session, durable := newFileTiers(t)
	storage := New(session, durable, logger.Noop())
	storage.Write(ctx, "h.p.s", true)

	storage.Clear(ctx, false)

	_, err := session.Get(ctx, domain.TokenKey)
	require.ErrorIs(t, err, domain.ErrTokenNotFound)
	got, err := durable.Get(ctx, domain.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "h.p.s", got)
}

func TestClearPersistentRemovesBothCopies(t *testing.T) {
	ctx := context.Background()
	session, durable := newFileTiers(t)
	storage := New(session, durable, logger.Noop())
	storage.Write(ctx, "h.p.s", true)

	storage.Clear(ctx, true)

	_, ok := storage.Read(ctx)
	assert.False(t, ok)
	assert.False(t, storage.Remembered(ctx))
}

func TestUnavailableTiersAreNoops(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	storage := New(nil, nil, logger.New(logger.Options{Level: "warn", Output: &buf}))

	storage.Write(ctx, "h.p.s", true)
	storage.Clear(ctx, true)
	_, ok := storage.Read(ctx)

	assert.False(t, ok)
	assert.False(t, storage.Remembered(ctx))
	assert.Contains(t, buf.String(), "tier=session")
	assert.Contains(t, buf.String(), "tier=durable")
}

func TestSessionTierUnavailableStillPersistsDurably(t *testing.T) {
	ctx := context.Background()
	durable := filestore.NewStore(t.TempDir())
	storage := New(nil, durable, logger.Noop())

	storage.Write(ctx, "h.p.s", true)

	token, ok := storage.Read(ctx)
	require.True(t, ok)
	assert.Equal(t, "h.p.s", token)
}

func TestBackendErrorsAreLoggedNotReturned(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	backendErr := errors.New("keyring locked")

	session := mocks.NewMockSecretStore(t)
	session.EXPECT().Get(ctx, domain.TokenKey).Return("", backendErr).Once()
	session.EXPECT().Put(ctx, domain.TokenKey, "h.p.s").Return(backendErr).Once()

	storage := New(session, nil, logger.New(logger.Options{Level: "warn", Output: &buf}))

	_, ok := storage.Read(ctx)
	assert.False(t, ok)
	storage.Write(ctx, "h.p.s", false)

	assert.Contains(t, buf.String(), "keyring locked")
}
