package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := LoadFile("")

	if cfg.Site.Host != "en.wikipedia.org" {
		t.Errorf("expected default host, got %q", cfg.Site.Host)
	}
	if cfg.Site.FrontPage != "Main_Page" {
		t.Errorf("expected default front page, got %q", cfg.Site.FrontPage)
	}
	if cfg.Analysis.WordsPerMinute != 200 {
		t.Errorf("expected 200 wpm, got %d", cfg.Analysis.WordsPerMinute)
	}
	if cfg.HTTP.Timeout != 0 {
		t.Errorf("expected library default timeout, got %v", cfg.HTTP.Timeout)
	}
}

func TestURLPrefixes(t *testing.T) {
	prefixes := SiteConfig{Host: "en.wikipedia.org"}.URLPrefixes()
	if len(prefixes) != 2 {
		t.Fatalf("expected 2 prefixes, got %d", len(prefixes))
	}
	if prefixes[0] != "https://en.wikipedia.org/wiki/" || prefixes[1] != "http://en.wikipedia.org/wiki/" {
		t.Errorf("unexpected prefixes: %v", prefixes)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
site:
  host: de.wikipedia.org
http:
  timeout: 5s
  tracing: true
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg := LoadFile(path)
	if cfg.Site.Host != "de.wikipedia.org" {
		t.Errorf("expected overridden host, got %q", cfg.Site.Host)
	}
	if cfg.Site.Language != "en" {
		t.Errorf("expected default language kept, got %q", cfg.Site.Language)
	}
	if cfg.HTTP.Timeout != 5*time.Second || !cfg.HTTP.Tracing {
		t.Errorf("unexpected http config: %+v", cfg.HTTP)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadFileFallsBackOnBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("site: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg := LoadFile(path)
	if cfg.Site.Host != "en.wikipedia.org" {
		t.Errorf("expected defaults after parse failure, got %q", cfg.Site.Host)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(siteHostEnv, "simple.wikipedia.org")
	t.Setenv(addrEnv, ":9999")

	cfg := LoadFile("")
	if cfg.Site.Host != "simple.wikipedia.org" {
		t.Errorf("expected env host, got %q", cfg.Site.Host)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("expected env addr, got %q", cfg.Server.Addr)
	}
}
