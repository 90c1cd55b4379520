package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Account AccountConfig `mapstructure:"account"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Audit   AuditConfig   `mapstructure:"audit"`
	Log     LogConfig     `mapstructure:"log"`
}

// AccountConfig seeds the single in-memory account. Account state is not
// persisted anywhere: every run starts over from this seed.
type AccountConfig struct {
	Number  string `mapstructure:"number"`
	Holder  string `mapstructure:"holder"`
	PIN     string `mapstructure:"pin"`
	Balance string `mapstructure:"balance"` // decimal string, e.g. "50000.00"
}

// LimitsConfig holds per-transaction caps and the PIN lockout threshold.
// Amounts are decimal strings.
type LimitsConfig struct {
	MaxWithdrawal     string `mapstructure:"max_withdrawal"`
	MaxDeposit        string `mapstructure:"max_deposit"`
	MaxTransfer       string `mapstructure:"max_transfer"`
	MaxFailedAttempts int    `mapstructure:"max_failed_attempts"`
}

type AuditConfig struct {
	Path string `mapstructure:"path"` // append-only text audit trail
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ATM_.
// Nested keys use underscore: ATM_ACCOUNT_PIN, ATM_AUDIT_PATH, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults reproduce the stock demo account.
	v.SetDefault("account.number", "ACC123456789")
	v.SetDefault("account.holder", "John Doe")
	v.SetDefault("account.pin", "1234")
	v.SetDefault("account.balance", "50000.00")
	v.SetDefault("limits.max_withdrawal", "50000")
	v.SetDefault("limits.max_deposit", "200000")
	v.SetDefault("limits.max_transfer", "100000")
	v.SetDefault("limits.max_failed_attempts", 3)
	v.SetDefault("audit.path", "atm_operations.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ATM_ACCOUNT_BALANCE -> account.balance
	v.SetEnvPrefix("ATM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, defaults and env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
