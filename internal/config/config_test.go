package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "SEARCH_MODE", "CHECKOUT_SOURCE", "TAX_RATE", "TAX_ROUNDING", "DEFAULT_DELIVERY_OPTION_ID", "CORS_ALLOWED_ORIGINS", "ENABLE_RESET", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, SearchSubstring, cfg.SearchMode)
	assert.Equal(t, CheckoutFromCart, cfg.CheckoutSource)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.1")), "tax rate %s", cfg.TaxRate)
	assert.Equal(t, RoundHalfUp, cfg.TaxRounding)
	assert.Equal(t, "1", cfg.DefaultDeliveryOptionID)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.EnableReset)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("SEARCH_MODE", "FUZZY")
	t.Setenv("CHECKOUT_SOURCE", "payload")
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("TAX_ROUNDING", "half_even")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("ENABLE_RESET", "true")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg := FromEnv()
	assert.Equal(t, SearchFuzzy, cfg.SearchMode)
	assert.Equal(t, CheckoutFromPayload, cfg.CheckoutSource)
	assert.Equal(t, "0.2", cfg.TaxRate.String())
	assert.Equal(t, RoundHalfEven, cfg.TaxRounding)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.EnableReset)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownModes(t *testing.T) {
	base := Config{
		SearchMode:              SearchSubstring,
		CheckoutSource:          CheckoutFromCart,
		TaxRounding:             RoundHalfUp,
		TaxRate:                 decimal.NewFromFloat(0.1),
		DefaultDeliveryOptionID: "1",
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.SearchMode = "regex"
	assert.Error(t, bad.Validate())

	bad = base
	bad.CheckoutSource = "both"
	assert.Error(t, bad.Validate())

	bad = base
	bad.TaxRounding = "floor"
	assert.Error(t, bad.Validate())

	bad = base
	bad.TaxRate = decimal.NewFromFloat(-0.1)
	assert.Error(t, bad.Validate())

	bad = base
	bad.DefaultDeliveryOptionID = " "
	assert.Error(t, bad.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SHOP_DOTENV_PROBE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SHOP_DOTENV_PROBE") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "loaded", os.Getenv("SHOP_DOTENV_PROBE"))
}
