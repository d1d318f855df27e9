package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".httpcall.yml")
	content := `
timeout: 5000
userAgent: test-agent/1.0
headers:
  Accept: application/json
followRedirects: false
noColor: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Timeout)
	assert.Equal(t, "test-agent/1.0", cfg.UserAgent)
	assert.Equal(t, "application/json", cfg.Headers["Accept"])
	assert.False(t, cfg.GetFollowRedirects())
	assert.True(t, cfg.GetNoColor())
	assert.True(t, cfg.GetValidateTLS())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(prev) }()

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30000, cfg.Timeout)
	assert.Equal(t, 10, cfg.MaxRedirects)
	assert.True(t, cfg.GetFollowRedirects())
	assert.True(t, cfg.GetValidateTLS())
	assert.False(t, cfg.GetNoColor())
}

func TestLoad_ExplicitMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".httpcall.yml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: [nope"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot parse config file")
}
