package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and XDG_CONFIG_HOME at a fresh temp directory so real
// user config files never leak into tests. NO t.Parallel() in tests using it.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, ".config"))
	return tmpDir
}

func writeUserConfig(t *testing.T, tmpDir, content string) {
	t.Helper()
	dir := filepath.Join(tmpDir, ".config", "openspec")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DefaultSchema)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.JSON)
}

func TestLoad_UserConfigFile(t *testing.T) {
	tmpDir := isolate(t)
	writeUserConfig(t, tmpDir, "default_schema: tdd\nconcurrency: 8\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tdd", cfg.DefaultSchema)
	assert.Equal(t, 8, cfg.Concurrency)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := isolate(t)
	writeUserConfig(t, tmpDir, "default_schema: tdd\nconcurrency: 8\n")
	t.Setenv("OPENSPEC_DEFAULT_SCHEMA", "spec-driven")
	t.Setenv("OPENSPEC_CONCURRENCY", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "spec-driven", cfg.DefaultSchema)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestLoad_ValidationError_ConcurrencyOutOfRange(t *testing.T) {
	tmpDir := isolate(t)
	writeUserConfig(t, tmpDir, "concurrency: 0\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoad_MalformedUserConfig(t *testing.T) {
	tmpDir := isolate(t)
	writeUserConfig(t, tmpDir, "concurrency: [not a number\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestLoad_NoColorEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "default_schema", envTransform("OPENSPEC_DEFAULT_SCHEMA"))
	assert.Equal(t, "no_color", envTransform("OPENSPEC_NO_COLOR"))
}
