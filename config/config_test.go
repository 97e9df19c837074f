package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		Addr string `mapstructure:"addr" default:":8080"`
	} `mapstructure:"server"`
	Upstream struct {
		BaseURL  string        `mapstructure:"base_url" validate:"required"`
		Timeout  time.Duration `mapstructure:"timeout" default:"10s"`
		Attempts int           `mapstructure:"attempts" default:"3"`
	} `mapstructure:"upstream"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoadWithDefaults(t *testing.T) {
	dir := writeConfig(t, `
upstream:
  base_url: https://news.example.com
`)

	var cfg testConfig
	c := New(&cfg, WithLoader(NewFileLoader("config.yaml", []string{dir}, viper.New(), nil)))
	require.NoError(t, c.Load())

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "https://news.example.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 3, cfg.Upstream.Attempts)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  addr: ":9090"
upstream:
  base_url: https://news.example.com
  attempts: 5
`)

	var cfg testConfig
	c := New(&cfg, WithLoader(NewFileLoader("config.yaml", []string{dir}, viper.New(), nil)))
	require.NoError(t, c.Load())

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Upstream.Attempts)
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	c := New(&cfg, WithLoader(NewFileLoader("config.yaml", []string{t.TempDir()}, viper.New(), nil)))
	assert.Error(t, c.Load())
}
