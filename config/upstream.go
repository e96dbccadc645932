package config

import "time"

// UpstreamConfig describes the upstream data service that owns schemas
// and record pages. When BaseURL is empty the service falls back to the
// local record store.
type UpstreamConfig struct {
	// BaseURL is the upstream root without the /api suffix
	// (e.g., "https://data.example.com").
	BaseURL string `env:"BASE_URL" envDefault:""`

	// Token is forwarded verbatim in the Authorization header. The
	// service performs no authentication of its own.
	Token string `env:"TOKEN" envDefault:""`

	// Timeout bounds each upstream request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// RenderBudget, when positive, caps how long a render waits for the
	// two fetches before showing the loading view. Zero waits for the
	// full request timeout.
	RenderBudget time.Duration `env:"RENDER_BUDGET" envDefault:"0"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	if u.Timeout <= 0 {
		u.Timeout = 10 * time.Second
	}
	if u.RenderBudget < 0 {
		u.RenderBudget = 0
	}
}
