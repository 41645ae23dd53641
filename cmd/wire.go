package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/argent-bank-cli/internal/adapters/bankapi"
	"github.com/bnema/argent-bank-cli/internal/adapters/render/page"
	tomlrepo "github.com/bnema/argent-bank-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/argent-bank-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/argent-bank-cli/internal/adapters/secrets/file"
	"github.com/bnema/argent-bank-cli/internal/adapters/storage/tiered"
	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/bnema/argent-bank-cli/internal/config"
	"github.com/bnema/argent-bank-cli/internal/logger"
	"github.com/bnema/argent-bank-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg     config.Config
	log     *slog.Logger
	service *application.Service
	api     ports.BankAPI
	storage ports.TokenStorage
	render  func(page.Document) (string, error)
	now     func() time.Time

	storeOnce sync.Once
	store     *application.Store
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	repo, err := tomlrepo.NewRepository(cfg.Accounts.Path)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	durable, err := durableTier(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("wire durable token store: %w", err)
	}

	return &app{
		cfg:     cfg,
		log:     log,
		service: application.NewService(repo),
		api: bankapi.Client{
			BaseURL:        cfg.API.BaseURL,
			HTTPClient:     &http.Client{},
			RequestTimeout: cfg.API.Timeout,
			Logger:         log,
		},
		storage: tiered.New(sessionTier(cfg.Storage), durable, log),
		render:  page.Render,
		now:     time.Now,
	}, nil
}

// sessionTier returns nil when no session directory could be resolved.
func sessionTier(cfg config.Storage) ports.SecretStore {
	if cfg.SessionDir == "" {
		return nil
	}
	return filestore.NewStore(cfg.SessionDir)
}

func durableTier(cfg config.Storage, log *slog.Logger) (ports.SecretStore, error) {
	if cfg.SecretsDir == "" {
		return nil, nil
	}
	if !cfg.UsePass {
		return filestore.NewStore(cfg.SecretsDir), nil
	}

	store, err := chainstore.NewPassFirstWithFileFallback(cfg.PassPrefix, cfg.SecretsDir, log)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// sessionStore hydrates the store on first use so commands that never touch
// the session do not read token storage.
func (a *app) sessionStore(ctx context.Context) *application.Store {
	a.storeOnce.Do(func() {
		a.store = application.NewStore(ctx, application.StoreDeps{
			API:     a.api,
			Storage: a.storage,
			Clock:   ports.SystemClock{},
			Logger:  a.log,
		})
	})
	return a.store
}
