package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ScraperConfig controls the content retrieval service.
type ScraperConfig struct {
	UserAgent     string `mapstructure:"user_agent"`
	Timeout       string `mapstructure:"timeout"`        // direct fetch, duration string
	RelayTimeout  string `mapstructure:"relay_timeout"`  // fetch via relay
	RelayURL      string `mapstructure:"relay_url"`      // optional fallback relay, e.g. http://localhost:3001/api/proxy
	CacheTTL      string `mapstructure:"cache_ttl"`      // per-source cache validity
	SourcesFile   string `mapstructure:"sources_file"`   // optional YAML file with extra sources
	RecordTTL     string `mapstructure:"record_ttl"`     // how long persisted records live in redis
	FetchInterval string `mapstructure:"fetch_interval"` // serve mode refresh interval
}

// OpenAIConfig controls the generation service. An empty APIKey selects
// deterministic mock output for every operation.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // optional
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Scraper ScraperConfig `mapstructure:"scraper"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Scraper.UserAgent == "" {
		c.Scraper.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if c.Scraper.Timeout == "" {
		c.Scraper.Timeout = "10s"
	}
	if c.Scraper.RelayTimeout == "" {
		c.Scraper.RelayTimeout = "15s"
	}
	if c.Scraper.CacheTTL == "" {
		c.Scraper.CacheTTL = "5m"
	}
	if c.Scraper.RecordTTL == "" {
		c.Scraper.RecordTTL = "24h"
	}
	if c.Scraper.FetchInterval == "" {
		c.Scraper.FetchInterval = "30m"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-3.5-turbo"
	}
}
