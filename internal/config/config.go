package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "WIKI_ANALYZER_CONFIG"
	logLevelEnv    = "WIKI_ANALYZER_LOG_LEVEL"
	siteHostEnv    = "WIKI_ANALYZER_SITE_HOST"
	apiEndpointEnv = "WIKI_ANALYZER_API_ENDPOINT"
	userAgentEnv   = "WIKI_ANALYZER_USER_AGENT"
	addrEnv        = "WIKI_ANALYZER_ADDR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	HTTP     HTTPConfig     `yaml:"http"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SiteConfig describes the encyclopedia being analyzed.
type SiteConfig struct {
	Host        string `yaml:"host"`
	Language    string `yaml:"language"`
	APIEndpoint string `yaml:"apiEndpoint"`
	FrontPage   string `yaml:"frontPage"`
	UserAgent   string `yaml:"userAgent"`
}

// HTTPConfig tunes outbound requests. A zero timeout keeps the client default.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Tracing bool          `yaml:"tracing"`
}

// AnalysisConfig parameterizes the metrics engine.
type AnalysisConfig struct {
	WordsPerMinute int `yaml:"wordsPerMinute"`
}

// ServerConfig is used by the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// URLPrefixes returns the accepted article URL prefixes for the configured host.
func (s SiteConfig) URLPrefixes() []string {
	return []string{
		"https://" + s.Host + "/wiki/",
		"http://" + s.Host + "/wiki/",
	}
}

// Load reads YAML configuration from the env-provided path (if present) and applies environment overrides.
func Load() Config {
	return LoadFile(os.Getenv(configPathEnv))
}

// LoadFile is Load with an explicit path; an empty path means defaults only.
func LoadFile(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if fileCfg, err := parse(raw); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func parse(raw []byte) (Config, error) {
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return Config{}, err
	}
	return fileCfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(siteHostEnv); v != "" {
		c.Site.Host = v
	}
	if v := os.Getenv(apiEndpointEnv); v != "" {
		c.Site.APIEndpoint = v
	}
	if v := os.Getenv(userAgentEnv); v != "" {
		c.Site.UserAgent = v
	}
	if v := os.Getenv(addrEnv); v != "" {
		c.Server.Addr = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Site.Host != "" {
		base.Site.Host = override.Site.Host
	}
	if override.Site.Language != "" {
		base.Site.Language = override.Site.Language
	}
	if override.Site.APIEndpoint != "" {
		base.Site.APIEndpoint = override.Site.APIEndpoint
	}
	if override.Site.FrontPage != "" {
		base.Site.FrontPage = override.Site.FrontPage
	}
	if override.Site.UserAgent != "" {
		base.Site.UserAgent = override.Site.UserAgent
	}

	if override.HTTP.Timeout > 0 {
		base.HTTP.Timeout = override.HTTP.Timeout
	}
	base.HTTP.Tracing = base.HTTP.Tracing || override.HTTP.Tracing

	if override.Analysis.WordsPerMinute > 0 {
		base.Analysis.WordsPerMinute = override.Analysis.WordsPerMinute
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Host:        "en.wikipedia.org",
			Language:    "en",
			APIEndpoint: "https://en.wikipedia.org/w/api.php",
			FrontPage:   "Main_Page",
			UserAgent:   "WikiAnalyzer/1.0 (article metrics)",
		},
		HTTP:     HTTPConfig{Timeout: 0, Tracing: false},
		Analysis: AnalysisConfig{WordsPerMinute: 200},
		Server:   ServerConfig{Addr: ":8080"},
		Logging:  LoggingConfig{Level: "info"},
	}
}
