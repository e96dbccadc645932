package config

// ViewConfig contains list view defaults.
type ViewConfig struct {
	// DefaultPageSize is the page size used when the query string carries
	// no limit.
	DefaultPageSize int `env:"VIEW_DEFAULT_PAGE_SIZE" envDefault:"50"`

	// MaxPageSize clamps caller-supplied limits.
	MaxPageSize int `env:"VIEW_MAX_PAGE_SIZE" envDefault:"1000"`
}

// Sanitize applies guardrails to view configuration values.
func (v *ViewConfig) Sanitize() {
	if v.DefaultPageSize < 1 {
		v.DefaultPageSize = 50
	}
	if v.MaxPageSize < v.DefaultPageSize {
		v.MaxPageSize = v.DefaultPageSize
	}
}
