package portfolio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Name != "HS" {
		t.Errorf("Name = %q, want HS", c.Name)
	}
	if c.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", c.Addr)
	}
	if c.LatestLimit != 4 || c.ProjectsLimit != 4 {
		t.Errorf("limits = %d/%d, want 4/4", c.LatestLimit, c.ProjectsLimit)
	}
	if c.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", c.CacheTTL)
	}
	if c.DefaultDark {
		t.Error("first-time visitors should default to light")
	}
	if len(c.ImmutableAssets) == 0 {
		t.Error("ImmutableAssets should have a default glob")
	}
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err == nil {
		t.Error("expected error without session_secret")
	}
	c.SessionSecret = "secret"
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	c.LatestLimit = -1
	if err := c.Validate(); err == nil {
		t.Error("expected error for negative latest_limit")
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	yml := `name: Example
url: https://example.com
session_secret: from-file
latest_limit: 6
cache_ttl: 30s
default_dark: true
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORTFOLIO_SESSION_SECRET", "from-env")

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.Name != "Example" || c.URL != "https://example.com" {
		t.Errorf("file values not loaded: %+v", c)
	}
	if c.SessionSecret != "from-env" {
		t.Errorf("SessionSecret = %q, env should override the file", c.SessionSecret)
	}
	if c.LatestLimit != 6 {
		t.Errorf("LatestLimit = %d, want 6", c.LatestLimit)
	}
	if c.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", c.CacheTTL)
	}
	if !c.DefaultDark {
		t.Error("DefaultDark should be true")
	}
	if c.ProjectsLimit != 4 {
		t.Errorf("ProjectsLimit = %d, want default 4", c.ProjectsLimit)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("missing config should fall back to defaults: %v", err)
	}
	if c.Name != "HS" {
		t.Errorf("Name = %q, want HS", c.Name)
	}
}
