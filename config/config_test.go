package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// When no config file and no env vars, defaults seed the demo account.
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "ACC123456789", cfg.Account.Number)
	assert.Equal(t, "John Doe", cfg.Account.Holder)
	assert.Equal(t, "1234", cfg.Account.PIN)
	assert.Equal(t, "50000.00", cfg.Account.Balance)

	assert.Equal(t, "50000", cfg.Limits.MaxWithdrawal)
	assert.Equal(t, "200000", cfg.Limits.MaxDeposit)
	assert.Equal(t, "100000", cfg.Limits.MaxTransfer)
	assert.Equal(t, 3, cfg.Limits.MaxFailedAttempts)

	assert.Equal(t, "atm_operations.log", cfg.Audit.Path)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
account:
  number: "ACC987654321"
  holder: "Jane Roe"
  pin: "9876"
  balance: "1250.50"
limits:
  max_withdrawal: "10000"
  max_deposit: "90000"
  max_transfer: "25000"
  max_failed_attempts: 5
audit:
  path: "/tmp/atm_audit.log"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "ACC987654321", cfg.Account.Number)
	assert.Equal(t, "Jane Roe", cfg.Account.Holder)
	assert.Equal(t, "9876", cfg.Account.PIN)
	assert.Equal(t, "1250.50", cfg.Account.Balance)

	assert.Equal(t, "10000", cfg.Limits.MaxWithdrawal)
	assert.Equal(t, "90000", cfg.Limits.MaxDeposit)
	assert.Equal(t, "25000", cfg.Limits.MaxTransfer)
	assert.Equal(t, 5, cfg.Limits.MaxFailedAttempts)

	assert.Equal(t, "/tmp/atm_audit.log", cfg.Audit.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	// Environment variables should override defaults.
	t.Setenv("ATM_ACCOUNT_PIN", "4321")
	t.Setenv("ATM_ACCOUNT_BALANCE", "75000.00")
	t.Setenv("ATM_AUDIT_PATH", "custom_audit.log")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "4321", cfg.Account.PIN)
	assert.Equal(t, "75000.00", cfg.Account.Balance)
	assert.Equal(t, "custom_audit.log", cfg.Audit.Path)
}
