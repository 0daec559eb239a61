package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurelia-studios/aurelia-web/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AURELIA_WEB_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("AURELIA_WEB_API_BASE", "")
	t.Setenv("AURELIA_WEB_DEV", "")
	t.Setenv("DEV", "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "http://localhost:8000", cfg.APIBase)
	require.Equal(t, "Aurelia Studios", cfg.Site.BrandName)
	require.False(t, cfg.Dev)
}

func TestLoadMissingSiteFileIsOK(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "Aurelia Studios", cfg.Site.BrandName)
}

func TestLoadSiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"brand_name: Test Studio\nwhatsapp_number: \"+91 90000 00000\"\ncanonical_base: https://test.example\n",
	), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "Test Studio", cfg.Site.BrandName)
	require.Equal(t, "+91 90000 00000", cfg.WhatsAppNumber)
	require.Equal(t, "https://test.example", cfg.Site.CanonicalBase)
}

func TestLoadMalformedSiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand_name: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestEnvWinsOverSiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("whatsapp_number: \"111\"\n"), 0o600))

	t.Setenv("AURELIA_WEB_WHATSAPP_NUMBER", "222")
	t.Setenv("AURELIA_WEB_API_BASE", "http://api.internal:9000/")
	t.Setenv("AURELIA_WEB_PORT", "3000")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "222", cfg.WhatsAppNumber)
	require.Equal(t, "http://api.internal:9000", cfg.APIBase, "trailing slash trimmed")
	require.Equal(t, ":3000", cfg.Addr)
}

func TestPortFallbackOrder(t *testing.T) {
	t.Setenv("AURELIA_WEB_PORT", "")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
}

func TestDevFlag(t *testing.T) {
	t.Setenv("AURELIA_WEB_DEV", "1")
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.True(t, cfg.Dev)
}
