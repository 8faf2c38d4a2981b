package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moneynotes-dev/moneynotes/internal/gitops"
)

// FileName is the project config file inside a moneynotes directory.
const FileName = "moneynotes.yaml"

// Config represents the top-level moneynotes.yaml configuration.
type Config struct {
	Owner    OwnerConfig    `yaml:"owner"`
	Currency CurrencyConfig `yaml:"currency"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Git      GitConfig      `yaml:"git"`
}

// OwnerConfig names whose notes these are.
type OwnerConfig struct {
	Name string `yaml:"name"`
}

// CurrencyConfig describes the minor unit amounts are recorded in.
type CurrencyConfig struct {
	Code string `yaml:"code"` // ISO 4217, e.g. "IDR"
}

// LedgerConfig locates the transactions file.
type LedgerConfig struct {
	File string `yaml:"file"` // relative to the project directory
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Author returns the configured commit identity.
func (g GitConfig) Author() gitops.Author {
	return gitops.Author{Name: g.AuthorName, Email: g.AuthorEmail}
}

// Load reads a moneynotes.yaml file from disk. Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(ownerName string) *Config {
	return &Config{
		Owner: OwnerConfig{
			Name: ownerName,
		},
		Currency: CurrencyConfig{
			Code: "IDR",
		},
		Ledger: LedgerConfig{
			File: "transactions.csv",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "MoneyNotes",
			AuthorEmail: "notes@moneynotes.dev",
		},
	}
}
