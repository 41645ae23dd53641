package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".argentbank"
	envPrefix  = "AB"

	KeyAPIBaseURL        = "api.base_url"
	KeyAPITimeout        = "api.timeout"
	KeyStorageSessionDir = "storage.session_dir"
	KeyStorageSecretsDir = "storage.secrets_dir"
	KeyStoragePassPrefix = "storage.pass_prefix"
	KeyStorageUsePass    = "storage.use_pass"
	KeyAccountsPath      = "accounts.path"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"

	DefaultAPIBaseURL = "http://localhost:3001/api/v1"
	DefaultAPITimeout = 30 * time.Second
)

type Config struct {
	HomeDir  string
	API      API
	Storage  Storage
	Accounts Accounts
	Log      Log
}

type API struct {
	BaseURL string
	Timeout time.Duration
}

// Storage locates both token tiers. An empty SessionDir disables the
// session-scoped tier.
type Storage struct {
	SessionDir string
	SecretsDir string
	PassPrefix string
	UsePass    bool
}

type Accounts struct {
	Path string
}

type Log struct {
	Level  string
	Format string
}

// Load reads ~/.argentbank/config.toml when present and applies AB_*
// environment overrides (AB_API_BASE_URL, AB_STORAGE_SESSION_DIR, ...).
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(root)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(KeyAPITimeout, DefaultAPITimeout)
	v.SetDefault(KeyStorageSessionDir, defaultSessionDir())
	v.SetDefault(KeyStorageSecretsDir, filepath.Join(root, "secrets"))
	v.SetDefault(KeyStoragePassPrefix, "argent-bank")
	v.SetDefault(KeyStorageUsePass, true)
	v.SetDefault(KeyAccountsPath, filepath.Join(root, "accounts.toml"))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		HomeDir: homeDir,
		API: API{
			BaseURL: strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
			Timeout: v.GetDuration(KeyAPITimeout),
		},
		Storage: Storage{
			SessionDir: strings.TrimSpace(v.GetString(KeyStorageSessionDir)),
			SecretsDir: strings.TrimSpace(v.GetString(KeyStorageSecretsDir)),
			PassPrefix: strings.TrimSpace(v.GetString(KeyStoragePassPrefix)),
			UsePass:    v.GetBool(KeyStorageUsePass),
		},
		Accounts: Accounts{Path: strings.TrimSpace(v.GetString(KeyAccountsPath))},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api base url is empty")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Accounts.Path == "" {
		return errors.New("accounts path is empty")
	}
	return nil
}

// defaultSessionDir picks a directory the OS wipes when the user session
// ends.
func defaultSessionDir() string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "argent-bank")
	}
	return filepath.Join(os.TempDir(), "argent-bank-"+strconv.Itoa(os.Getuid()))
}
