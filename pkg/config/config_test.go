package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenestra-app/fenestra/pkg/errors"
	"github.com/fenestra-app/fenestra/pkg/paths"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir()) // no user file

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10485760, cfg.Recovery.MaxBytes)
	assert.Equal(t, 168*time.Hour, cfg.Recovery.Retention)
	assert.Equal(t, 0, cfg.Logging.Verbosity)
	assert.Empty(t, cfg.Storage.DataDir)
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)

	content := `
[recovery]
retention = "24h"

[storage]
data_dir = "/mnt/scratch/fenestra"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, paths.ConfigFileName), []byte(content), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Recovery.Retention)
	assert.Equal(t, 10485760, cfg.Recovery.MaxBytes) // untouched default
	assert.Equal(t, "/mnt/scratch/fenestra", cfg.Storage.DataDir)
	assert.Equal(t, "/mnt/scratch/fenestra", cfg.Paths().DataDir())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv("FENESTRA_CFG_RECOVERY__MAX_BYTES", "1024")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Recovery.MaxBytes)
}

func TestLoadRejectsMalformedUserFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, paths.ConfigFileName), []byte("[broken"), 0644))

	_, err := Load()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv("FENESTRA_CFG_RECOVERY__MAX_BYTES", "-1")

	_, err := Load()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestStoreOptions(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Len(t, cfg.StoreOptions(), 2)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "recovery.max_bytes", envKey("FENESTRA_CFG_RECOVERY__MAX_BYTES"))
	assert.Equal(t, "logging.verbosity", envKey("FENESTRA_CFG_LOGGING__VERBOSITY"))
}
