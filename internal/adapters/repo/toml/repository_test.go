package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/argent-bank-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, path string) *Repository {
	t.Helper()
	repo, err := NewRepository(path)
	require.NoError(t, err)
	return repo
}

func TestRepositoryMissingFileListsDemoAccounts(t *testing.T) {
	t.Parallel()

	repo := newRepo(t, filepath.Join(t.TempDir(), "missing", "accounts.toml"))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAccounts(), accounts)
}

func TestRepositorySaveKeepsDemoAccountsAndAppends(t *testing.T) {
	t.Parallel()

	repo := newRepo(t, filepath.Join(t.TempDir(), "accounts.toml"))
	brokerage := domain.Account{ID: "x1111-brokerage", Title: "Argent Bank Brokerage (x1111)", Amount: 50050, Description: "Available Balance"}

	require.NoError(t, repo.Save(context.Background(), brokerage))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 4)
	assert.Equal(t, brokerage, accounts[3])
}

func TestRepositorySaveUpdatesExistingAccount(t *testing.T) {
	t.Parallel()

	repo := newRepo(t, filepath.Join(t.TempDir(), "accounts.toml"))
	updated := domain.DefaultAccounts()[0]
	updated.Amount = 125

	require.NoError(t, repo.Save(context.Background(), updated))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, domain.Cents(125), accounts[0].Amount)
}

func TestRepositorySaveRequiresID(t *testing.T) {
	t.Parallel()

	repo := newRepo(t, filepath.Join(t.TempDir(), "accounts.toml"))
	err := repo.Save(context.Background(), domain.Account{Title: "No id"})
	require.ErrorIs(t, err, errAccountIDRequired)
}

func TestRepositoryReadsHandWrittenCatalogue(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	require.NoError(t, os.WriteFile(accountsPath, []byte(strings.Join([]string{
		"version = 2",
		"",
		"[[accounts]]",
		"id = \"acc-1\"",
		"title = \"Joint\"",
		"amount_cents = 1250",
		"",
	}, "\n")), 0o600))

	accounts, err := newRepo(t, accountsPath).List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.Account{ID: "acc-1", Title: "Joint", Amount: 1250}, accounts[0])
}

func TestRepositoryMigratesDollarAmountsToCents(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	require.NoError(t, os.WriteFile(accountsPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[accounts]]",
		"id = \"acc-1\"",
		"title = \"Joint\"",
		"amount = 10928.42",
		"",
		"[[accounts]]",
		"id = \"acc-2\"",
		"title = \"Card\"",
		"amount = 0.29",
		"",
	}, "\n")), 0o600))

	repo := newRepo(t, accountsPath)
	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, domain.Cents(1092842), accounts[0].Amount)
	assert.Equal(t, domain.Cents(29), accounts[1].Amount)

	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "acc-3", Title: "New", Amount: 100}))

	data, err := os.ReadFile(accountsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 2")
	assert.Contains(t, string(data), "amount_cents = 1092842")
	assert.NotContains(t, string(data), "amount = ")
}

func TestRepositorySaveEnforcesPermissionsAndVersion(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "nested", "accounts.toml")
	repo := newRepo(t, accountsPath)

	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: "acc-1", Title: "Primary"}))

	info, err := os.Stat(accountsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(accountsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 2")
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	require.NoError(t, os.WriteFile(accountsPath, []byte("accounts = ["), 0o600))

	_, err := newRepo(t, accountsPath).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode accounts file")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	require.NoError(t, os.WriteFile(accountsPath, []byte("version = 999\n\naccounts = []\n"), 0o600))

	_, err := newRepo(t, accountsPath).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported accounts schema version")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newRepo(t, filepath.Join(t.TempDir(), "accounts.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Account{ID: "acc-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveEveryAccount(t *testing.T) {
	t.Parallel()

	accountsPath := filepath.Join(t.TempDir(), "accounts.toml")
	repoA := newRepo(t, accountsPath)
	repoB := newRepo(t, accountsPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Account{ID: domain.AccountID(prefix + strconv.Itoa(i)), Title: prefix})
		}
	}
	go save(repoA, "acc-a-")
	go save(repoB, "acc-b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	accounts, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, accounts, perRepoWrites*2+len(domain.DefaultAccounts()))
}

func TestNewRepositoryRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewRepository("  ")
	require.Error(t, err)
}
