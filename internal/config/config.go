package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration. It is built once at
// process start and passed explicitly into every component that needs it.
type Config struct {
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	LLM      LLMConfig      `yaml:"llm" mapstructure:"llm"`
	SMTP     SMTPConfig     `yaml:"smtp" mapstructure:"smtp"`
	Worker   WorkerConfig   `yaml:"worker" mapstructure:"worker"`
	Research ResearchConfig `yaml:"research" mapstructure:"research"`
	Contacts ContactsConfig `yaml:"contacts" mapstructure:"contacts"`
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	OCR      OCRConfig      `yaml:"ocr" mapstructure:"ocr"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// LLMConfig holds settings for the OpenAI-compatible text-generation API.
// Provider "none" keeps the whole pipeline offline-capable.
type LLMConfig struct {
	Provider    string `yaml:"provider" mapstructure:"provider"` // none|openai|deepseek|custom
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	Model       string `yaml:"model" mapstructure:"model"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// SMTPConfig holds outbound mail transport settings.
type SMTPConfig struct {
	Host   string `yaml:"host" mapstructure:"host"`
	Port   int    `yaml:"port" mapstructure:"port"`
	User   string `yaml:"user" mapstructure:"user"`
	Pass   string `yaml:"pass" mapstructure:"pass"`
	From   string `yaml:"from" mapstructure:"from"` // falls back to User when empty
	UseTLS bool   `yaml:"use_tls" mapstructure:"use_tls"`
}

// WorkerConfig configures the send worker loop.
type WorkerConfig struct {
	RateLimitSecs      int `yaml:"rate_limit_secs" mapstructure:"rate_limit_secs"`
	PollSecs           int `yaml:"poll_secs" mapstructure:"poll_secs"`
	FailBackoffCapSecs int `yaml:"fail_backoff_cap_secs" mapstructure:"fail_backoff_cap_secs"`
}

// RateLimit returns the minimum delay between successive sends.
func (w WorkerConfig) RateLimit() time.Duration {
	return time.Duration(w.RateLimitSecs) * time.Second
}

// PollInterval returns the idle-poll sleep.
func (w WorkerConfig) PollInterval() time.Duration {
	return time.Duration(w.PollSecs) * time.Second
}

// FailBackoff returns the post-failure sleep: the rate limit capped so that
// misconfiguration is discovered faster than the normal send cadence.
func (w WorkerConfig) FailBackoff() time.Duration {
	ceiling := time.Duration(w.FailBackoffCapSecs) * time.Second
	if rl := w.RateLimit(); rl < ceiling {
		return rl
	}
	return ceiling
}

// ResearchConfig configures the company research phase.
type ResearchConfig struct {
	MaxPages         int     `yaml:"max_pages" mapstructure:"max_pages"`
	MinPageChars     int     `yaml:"min_page_chars" mapstructure:"min_page_chars"`
	MaxContacts      int     `yaml:"max_contacts" mapstructure:"max_contacts"`
	FetchTimeoutSecs int     `yaml:"fetch_timeout_secs" mapstructure:"fetch_timeout_secs"`
	FetchRatePerSec  float64 `yaml:"fetch_rate_per_sec" mapstructure:"fetch_rate_per_sec"`
}

// ContactsConfig tunes contact classification.
type ContactsConfig struct {
	// LocalPartOnly restricts role keyword matching to the mailbox name,
	// avoiding misclassification from keywords inside the company domain.
	LocalPartOnly bool `yaml:"local_part_only" mapstructure:"local_part_only"`
}

// DefaultsConfig holds campaign-level defaults.
type DefaultsConfig struct {
	Language string `yaml:"language" mapstructure:"language"` // vi|en
}

// OCRConfig configures proposal PDF text extraction.
type OCRConfig struct {
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
	MaxPages      int    `yaml:"max_pages" mapstructure:"max_pages"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OUTREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "outreach.db")
	v.SetDefault("llm.provider", "none")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.timeout_secs", 60)
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.use_tls", true)
	v.SetDefault("worker.rate_limit_secs", 60)
	v.SetDefault("worker.poll_secs", 5)
	v.SetDefault("worker.fail_backoff_cap_secs", 30)
	v.SetDefault("research.max_pages", 6)
	v.SetDefault("research.min_page_chars", 200)
	v.SetDefault("research.max_contacts", 3)
	v.SetDefault("research.fetch_timeout_secs", 20)
	v.SetDefault("research.fetch_rate_per_sec", 1.0)
	v.SetDefault("contacts.local_part_only", false)
	v.SetDefault("defaults.language", "vi")
	v.SetDefault("ocr.pdftotext_path", "pdftotext")
	v.SetDefault("ocr.max_pages", 40)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
