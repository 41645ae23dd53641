package toml

import (
	"fmt"
	"math"
)

// Version 1 stored amounts as float dollars; version 2 stores integer cents.
const currentSchemaVersion = 2

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// migrate upgrades a file in place to the current version.
func (s *fileSchema) migrate() {
	if s.Version >= currentSchemaVersion {
		return
	}

	for i := range s.Accounts {
		account := &s.Accounts[i]
		if account.LegacyAmount != nil {
			account.AmountCents = int64(math.Round(*account.LegacyAmount * 100))
			account.LegacyAmount = nil
		}
	}
	s.Version = currentSchemaVersion
}

type accountSchema struct {
	ID           string   `toml:"id"`
	Title        string   `toml:"title"`
	AmountCents  int64    `toml:"amount_cents"`
	LegacyAmount *float64 `toml:"amount,omitempty"`
	Description  string   `toml:"description,omitempty"`
}
