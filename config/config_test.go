package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeViewGuardrails(t *testing.T) {
	cfg := AppConfig{View: ViewConfig{DefaultPageSize: -5, MaxPageSize: 10}}
	cfg.Sanitize()

	assert.Equal(t, 50, cfg.View.DefaultPageSize)
	assert.Equal(t, 50, cfg.View.MaxPageSize, "max is raised to the default")
}

func TestSanitizeUpstreamGuardrails(t *testing.T) {
	cfg := AppConfig{Upstream: UpstreamConfig{Timeout: -time.Second, RenderBudget: -time.Second}}
	cfg.Sanitize()

	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Upstream.RenderBudget)
}

func TestUseUpstream(t *testing.T) {
	cfg := AppConfig{}
	assert.False(t, cfg.UseUpstream())

	cfg.Upstream.BaseURL = "   "
	assert.False(t, cfg.UseUpstream())

	cfg.Upstream.BaseURL = "https://data.example.com"
	assert.True(t, cfg.UseUpstream())
}

func TestDetectDevModeFromAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)
}

func TestDetectDevModeExplicitWins(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg := AppConfig{IsDev: true}
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)
}
