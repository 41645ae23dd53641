package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "token key is empty"},
		{name: "whitespace", key: "   ", wantErr: "token key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid token key"},
		{name: "traversal", key: "../escape", wantErr: "invalid token key"},
		{name: "deep traversal", key: "../../token", wantErr: "invalid token key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), domain.TokenKey, "h.p.s"))

	got, err := store.Get(context.Background(), domain.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "h.p.s", got)

	info, err := os.Stat(filepath.Join(root, domain.TokenKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMod), info.Mode().Perm())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStorePutOverwritesPreviousToken(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Put(context.Background(), domain.TokenKey, "old.old.old"))
	require.NoError(t, store.Put(context.Background(), domain.TokenKey, "new.new.new"))

	got, err := store.Get(context.Background(), domain.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "new.new.new", got)
}

func TestStoreGetMissingTokenReportsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), domain.TokenKey)
	require.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestStoreDeleteIsIdempotentWhenTokenMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), domain.TokenKey))
	require.NoError(t, store.Delete(context.Background(), domain.TokenKey))
}

func TestStoreHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, domain.TokenKey, "h.p.s"), context.Canceled)
	_, err := store.Get(ctx, domain.TokenKey)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Delete(ctx, domain.TokenKey), context.Canceled)
}
