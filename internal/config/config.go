// Package config provides application configuration with multi-source
// priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.unihelp/config.yaml, or ./config.yaml)
//  3. Default values
//
// The GROQ_API_KEY secret is only ever read from the environment, never
// from the config file, and is masked when the config is printed.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/YanguiHadil/unihelp/internal/i18n"
)

var (
	// ErrMissingAPIKey indicates GROQ_API_KEY is not set.
	ErrMissingAPIKey = errors.New("missing Groq API key")

	// ErrNoModels indicates the model candidate list is empty.
	ErrNoModels = errors.New("no model candidates configured")

	// ErrInvalidTemperature indicates a sampling temperature out of range.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidBudget indicates a non-positive context budget.
	ErrInvalidBudget = errors.New("invalid context budget")

	// ErrInvalidRateLimit indicates a non-positive rate limit or window.
	ErrInvalidRateLimit = errors.New("invalid rate limit")

	// ErrInvalidLanguage indicates an unsupported default language.
	ErrInvalidLanguage = errors.New("invalid default language")

	// ErrInvalidCacheDriver indicates an unknown cache driver name.
	ErrInvalidCacheDriver = errors.New("invalid cache driver")
)

// Config stores the application configuration.
// SECURITY: GroqAPIKey is masked in MarshalJSON.
type Config struct {
	// Model configuration
	GroqAPIKey string   `mapstructure:"-" json:"groq_api_key"`
	Models     []string `mapstructure:"models" json:"models"`

	QATemperature    float64 `mapstructure:"qa_temperature" json:"qa_temperature"`
	EmailTemperature float64 `mapstructure:"email_temperature" json:"email_temperature"`

	// Document corpus
	DocumentsPath string        `mapstructure:"documents_path" json:"documents_path"`
	RefreshTTL    time.Duration `mapstructure:"refresh_ttl" json:"refresh_ttl"`

	// Context budgets in characters
	QABudget    int `mapstructure:"qa_budget" json:"qa_budget"`
	EmailBudget int `mapstructure:"email_budget" json:"email_budget"`

	// Default UI language: FR, EN or TN
	Language string `mapstructure:"language" json:"language"`

	// Per-session rate limiting
	RateLimit  int           `mapstructure:"rate_limit" json:"rate_limit"`
	RateWindow time.Duration `mapstructure:"rate_window" json:"rate_window"`

	// Answer cache
	CacheDriver string        `mapstructure:"cache_driver" json:"cache_driver"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl" json:"cache_ttl"`
	RedisAddr   string        `mapstructure:"redis_addr" json:"redis_addr"`

	// History files live in the state directory
	StateDir     string `mapstructure:"state_dir" json:"state_dir"`
	MaxHistory   int    `mapstructure:"max_history" json:"max_history"`
	MaxAnalytics int    `mapstructure:"max_analytics" json:"max_analytics"`

	// Retry policy against the model backend
	RetryAttempts int           `mapstructure:"retry_attempts" json:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay" json:"retry_delay"`

	// Idle session timeout
	SessionTimeout time.Duration `mapstructure:"session_timeout" json:"session_timeout"`

	// HTTP server (serve mode)
	ListenAddr string `mapstructure:"listen_addr" json:"listen_addr"`
	TrustProxy bool   `mapstructure:"trust_proxy" json:"trust_proxy"`

	// Logging
	LogLevel string `mapstructure:"log_level" json:"log_level"`
	LogJSON  bool   `mapstructure:"log_json" json:"log_json"`
}

// Load loads configuration.
// Priority: environment variables > configuration file > defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".unihelp")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v, configDir)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	// The API key comes from the environment only.
	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("models", []string{"llama-3.1-8b-instant", "llama-3.3-70b-versatile"})
	v.SetDefault("qa_temperature", 0.2)
	v.SetDefault("email_temperature", 0.3)

	v.SetDefault("documents_path", "documents.txt")
	v.SetDefault("refresh_ttl", 5*time.Minute)

	v.SetDefault("qa_budget", 4000)
	v.SetDefault("email_budget", 3000)

	v.SetDefault("language", "FR")

	v.SetDefault("rate_limit", 10)
	v.SetDefault("rate_window", time.Minute)

	v.SetDefault("cache_driver", "memory")
	v.SetDefault("cache_ttl", time.Hour)
	v.SetDefault("redis_addr", "localhost:6379")

	v.SetDefault("state_dir", configDir)
	v.SetDefault("max_history", 100)
	v.SetDefault("max_analytics", 1000)

	v.SetDefault("retry_attempts", 3)
	v.SetDefault("retry_delay", 2*time.Second)

	v.SetDefault("session_timeout", 30*time.Minute)

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("trust_proxy", false)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}

// bindEnvVariables binds UNIHELP_* environment overrides explicitly.
func bindEnvVariables(v *viper.Viper) {
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("documents_path", "UNIHELP_DOCUMENTS")
	mustBind("language", "UNIHELP_LANGUAGE")
	mustBind("cache_driver", "UNIHELP_CACHE_DRIVER")
	mustBind("redis_addr", "UNIHELP_REDIS_ADDR")
	mustBind("state_dir", "UNIHELP_STATE_DIR")
	mustBind("listen_addr", "UNIHELP_LISTEN_ADDR")
	mustBind("trust_proxy", "UNIHELP_TRUST_PROXY")
	mustBind("log_level", "UNIHELP_LOG_LEVEL")
	mustBind("log_json", "UNIHELP_LOG_JSON")
}

// Validate checks the configuration, failing fast on anything that
// would only surface later as a confusing runtime error.
func (c *Config) Validate() error {
	if len(c.Models) == 0 {
		return ErrNoModels
	}
	if c.QATemperature < 0 || c.QATemperature > 2 {
		return fmt.Errorf("%w: qa_temperature %v", ErrInvalidTemperature, c.QATemperature)
	}
	if c.EmailTemperature < 0 || c.EmailTemperature > 2 {
		return fmt.Errorf("%w: email_temperature %v", ErrInvalidTemperature, c.EmailTemperature)
	}
	if c.QABudget <= 0 || c.EmailBudget <= 0 {
		return ErrInvalidBudget
	}
	if c.RateLimit <= 0 || c.RateWindow <= 0 {
		return ErrInvalidRateLimit
	}
	if !i18n.IsSupported(c.Language) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, c.Language)
	}
	switch c.CacheDriver {
	case "memory", "redis":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCacheDriver, c.CacheDriver)
	}
	return nil
}

// RequireAPIKey fails when the Groq key is absent. Kept out of
// Validate so offline commands (history, version) still work.
func (c *Config) RequireAPIKey() error {
	if c.GroqAPIKey == "" {
		return fmt.Errorf("%w: set GROQ_API_KEY", ErrMissingAPIKey)
	}
	return nil
}

// ChatHistoryPath returns the conversation history file location.
func (c *Config) ChatHistoryPath() string {
	return filepath.Join(c.StateDir, ".unihelp_chat_history.json")
}

// EmailHistoryPath returns the email history file location.
func (c *Config) EmailHistoryPath() string {
	return filepath.Join(c.StateDir, ".unihelp_email_history.json")
}

// AnalyticsPath returns the analytics event log location.
func (c *Config) AnalyticsPath() string {
	return filepath.Join(c.StateDir, ".unihelp_analytics.json")
}

const maskedValue = "████████"

// maskSecret masks a secret for safe logging. Short secrets are fully
// masked, longer ones keep the first and last two characters.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return maskedValue
	}
	return s[:2] + "<" + maskedValue + ">" + s[len(s)-2:]
}

// MarshalJSON masks the API key.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	a := alias(c)
	a.GroqAPIKey = maskSecret(a.GroqAPIKey)
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// String implements Stringer to prevent accidental printing of secrets.
func (c Config) String() string {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
