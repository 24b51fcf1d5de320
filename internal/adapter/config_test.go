package adapter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
catalog:
  url: https://loja.example/api/products
  timeout: 5s
storage:
  path: /tmp/elegance-test/cart.db
cart:
  toast_duration: 1500ms
ui:
  page_size: 3
  hero_interval: 0s
hero:
  slides:
    - title: Inverno
      subtitle: Casacos
      button_text: Ver
promo:
  title: Queima de estoque
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://loja.example/api/products", cfg.Catalog.URL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "/tmp/elegance-test/cart.db", cfg.Storage.Path)
	assert.Equal(t, 1500*time.Millisecond, cfg.Cart.ToastDuration)
	assert.Equal(t, 3, cfg.UI.PageSize)
	assert.Zero(t, cfg.UI.HeroInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.SettleDelay)

	slides := cfg.Slides()
	require.Len(t, slides, 1)
	assert.Equal(t, "Inverno", slides[0].Title)
	assert.Equal(t, "Ver", slides[0].ButtonText)

	promo := cfg.PromoBanner()
	assert.Equal(t, "Queima de estoque", promo.Title)
	assert.Equal(t, "Ver Ofertas", promo.ButtonText)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: DEBUG\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/products", cfg.Catalog.URL)
	assert.Equal(t, 4, cfg.UI.PageSize)
	assert.Equal(t, 5*time.Second, cfg.UI.HeroInterval)
	assert.Equal(t, 3*time.Second, cfg.Cart.ToastDuration)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Len(t, cfg.Slides(), 3)
	assert.Equal(t, "Nova Coleção Verão", cfg.Slides()[0].Title)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("ELEGANCE_CATALOG_URL", "http://env.example/products")
	t.Setenv("ELEGANCE_UI_PAGE_SIZE", "2")
	path := writeConfig(t, "catalog:\n  url: http://file.example/products\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example/products", cfg.Catalog.URL)
	assert.Equal(t, 2, cfg.UI.PageSize)
}

func TestLoadConfigClampsPageSize(t *testing.T) {
	path := writeConfig(t, "ui:\n  page_size: 0\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.UI.PageSize)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := writeConfig(t, "catalog: [unterminated\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x", "cart.db"), expandHome("~/x/cart.db"))
	assert.Equal(t, "/abs/cart.db", expandHome("/abs/cart.db"))
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestSetupLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "elegance.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "INFO"})
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("WARNING").String())
	assert.Equal(t, "ERROR", parseLogLevel("error").String())
	assert.Equal(t, "INFO", parseLogLevel("bogus").String())
}
