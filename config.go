package portfolio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces environment overrides, e.g. PORTFOLIO_SESSION_SECRET.
const EnvPrefix = "PORTFOLIO_"

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Brand text (default "HS")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Home page title and default meta description
	Author      string `koanf:"author"`      // Bio footer and feed author
	Bio         string `koanf:"bio"`         // Bio footer text

	Addr         string `koanf:"addr"`          // Listen address (default ":3000")
	DatabasePath string `koanf:"database_path"` // SQLite path (default "data/portfolio.db")
	StaticDir    string `koanf:"static_dir"`    // User static assets (default "public")

	SessionSecret string `koanf:"session_secret"` // Required: preference cookie secret
	CookieSecure  bool   `koanf:"cookie_secure"`  // Set true for HTTPS

	DefaultDark bool   `koanf:"default_dark"` // Theme for first-time visitors (default light)
	Accent      string `koanf:"accent"`       // Toggle "on" colour (default "#0f1114")

	LatestLimit   int `koanf:"latest_limit"`   // Posts on the home page (default 4)
	ProjectsLimit int `koanf:"projects_limit"` // Projects on the home and projects pages (default 4)

	CacheTTL time.Duration `koanf:"cache_ttl"` // Record cache TTL (default 5m)

	// ImmutableAssets are globs under /public served with a one year max-age.
	ImmutableAssets []string `koanf:"immutable_assets"`
}

// DefaultConfig returns a SiteConfig with every default applied.
func DefaultConfig() SiteConfig {
	var c SiteConfig
	c.setDefaults()
	return c
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "HS"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/portfolio.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.Accent == "" {
		c.Accent = "#0f1114"
	}
	if c.LatestLimit == 0 {
		c.LatestLimit = 4
	}
	if c.ProjectsLimit == 0 {
		c.ProjectsLimit = 4
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.ImmutableAssets == nil {
		c.ImmutableAssets = []string{"/public/**/*.{css,js,woff2,svg,png,jpg,webp}"}
	}
}

// Validate checks required fields and ranges.
func (c SiteConfig) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("portfolio: session_secret is required")
	}
	if c.LatestLimit < 0 || c.ProjectsLimit < 0 {
		return fmt.Errorf("portfolio: latest_limit and projects_limit must be non-negative")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("portfolio: cache_ttl must be non-negative")
	}
	return nil
}

// LoadConfig reads path (YAML, optional) and overlays PORTFOLIO_* environment
// variables on top of the defaults.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return SiteConfig{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir overrides the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithStore uses an already opened store instead of DatabasePath.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}
