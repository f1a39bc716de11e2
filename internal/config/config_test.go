package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point the loader at an empty directory so no stray rdsops.yaml is
	// picked up from the working directory.
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "athena/rds/%s/root", cfg.SecretNameTemplate)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 300*time.Second, cfg.SwitchoverTimeout)
	assert.Equal(t, 30*time.Second, cfg.PromptTimeout)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Region)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
region: eu-west-1
secret_name_template: "creds/%s"
poll_interval: 5s
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "creds/%s", cfg.SecretNameTemplate)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Values not present in the file keep their defaults.
	assert.Equal(t, 300*time.Second, cfg.SwitchoverTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RDSOPS_REGION", "ap-southeast-2")
	t.Setenv("RDSOPS_PROMPT_TIMEOUT", "10s")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-2", cfg.Region)
	assert.Equal(t, 10*time.Second, cfg.PromptTimeout)
}

// writeConfig writes content to a temp YAML file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rdsops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
