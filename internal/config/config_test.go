package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/davetashner/plotsleuth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.Listen)
	assert.Empty(t, cfg.Model)
	assert.Zero(t, cfg.MaxTokens)
	assert.Nil(t, cfg.Temperature)
	assert.Nil(t, cfg.TopP)
}

func TestLoad_ParsesAllFields(t *testing.T) {
	dir := t.TempDir()
	content := `listen: ":9090"
model: claude-haiku-3-5-20241022
max_tokens: 800
temperature: 0.5
top_p: 0.9
cors_origins:
  - https://example.com
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "claude-haiku-3-5-20241022", cfg.Model)
	assert.Equal(t, 800, cfg.MaxTokens)
	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, 0.5, *cfg.Temperature)
	require.NotNil(t, cfg.TopP)
	assert.Equal(t, 0.9, *cfg.TopP)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORSOrigins)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("listen: [unclosed"), 0o644))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":7000\"\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Listen)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, 400, cfg.MaxTokens)
	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, 0.3, *cfg.Temperature)
	require.NotNil(t, cfg.TopP)
	assert.Equal(t, 0.95, *cfg.TopP)
	assert.Empty(t, cfg.Model, "model default is the provider's, not the config's")
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	temp := 0.0
	cfg := &config.Config{Listen: ":9999", MaxTokens: 100, Temperature: &temp}
	config.ApplyDefaults(cfg)

	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, 100, cfg.MaxTokens)
	assert.Equal(t, 0.0, *cfg.Temperature, "explicit zero is kept")
}

func TestWrite_RoundTrip(t *testing.T) {
	topP := 0.9
	cfg := &config.Config{Listen: ":9090", Model: "m", TopP: &topP}

	var buf bytes.Buffer
	require.NoError(t, config.Write(&buf, cfg))

	assert.Contains(t, buf.String(), "listen:")
	assert.Contains(t, buf.String(), "top_p: 0.9")
}
