package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coredatabase "github.com/m3rciful/staybot/core/database"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	AdminID int64  `yaml:"admin_id" envconfig:"TELEGRAM_ADMIN_ID"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	KeysOrder   string `yaml:"keys_order"`
	DebugSample string `yaml:"debug_sample"`
	Dir         string `yaml:"dir"`
	BotFile     string `yaml:"bot_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `yaml:"profile"`
}

// HotelsConfig configures the hotel search provider API.
type HotelsConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"HOTELS_BASE_URL"`
	APIKey  string `yaml:"api_key" envconfig:"HOTELS_API_KEY"`
	// APIHost is sent as the provider host header alongside the key.
	APIHost  string `yaml:"api_host" envconfig:"HOTELS_API_HOST"`
	Locale   string `yaml:"locale" envconfig:"HOTELS_LOCALE"`
	Currency string `yaml:"currency" envconfig:"HOTELS_CURRENCY"`
	// RequestTimeoutSeconds bounds a single provider call; 0 -> default 10s.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" envconfig:"HOTELS_REQUEST_TIMEOUT_SECONDS"`
	// RetryAttempts is the total attempt bound per action; 0 -> default 3.
	RetryAttempts int `yaml:"retry_attempts" envconfig:"HOTELS_RETRY_ATTEMPTS"`
	// FetchSize is the provider page size for listing searches; 0 -> default 200.
	FetchSize int `yaml:"fetch_size" envconfig:"HOTELS_FETCH_SIZE"`
}

// Timeout returns the per-attempt request timeout as a duration.
func (h HotelsConfig) Timeout() time.Duration {
	if h.RequestTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(h.RequestTimeoutSeconds) * time.Second
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

const (
	// UpdateCallback identifies callback updates for rate limit exclusions.
	UpdateCallback = "callback"
	// UpdateMessage identifies message updates for rate limit exclusions.
	UpdateMessage = "message"
	// UpdateInlineQuery identifies inline query updates for rate limit exclusions.
	UpdateInlineQuery = "inline_query"
)

// RateLimitConfig holds settings for rate limiting.
// ExcludeUpdates accepts update types to bypass limiting:
// - "callback": Telegram callback button presses
// - "message": standard text messages
// - "inline_query": inline query updates
type RateLimitConfig struct {
	IntervalMS     int      `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
	ExcludeUpdates []string `yaml:"exclude_updates" envconfig:"RATE_LIMIT_EXCLUDE_UPDATES"`
}

// Config aggregates the full bot configuration.
type Config struct {
	Telegram  TelegramConfig      `yaml:"telegram"`
	Webhook   WebhookConfig       `yaml:"webhook"`
	Logging   LoggingConfig       `yaml:"logging"`
	RateLimit RateLimitConfig     `yaml:"rate_limit"`
	Hotels    HotelsConfig        `yaml:"hotels"`
	Database  coredatabase.Config `yaml:"database"`
}

// Load reads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	if strings.TrimSpace(cfg.Hotels.APIKey) == "" {
		return fmt.Errorf("hotels.api_key is required")
	}
	if strings.TrimSpace(cfg.Hotels.BaseURL) == "" {
		cfg.Hotels.BaseURL = "https://hotels4.p.rapidapi.com"
	}
	cfg.Hotels.BaseURL = strings.TrimRight(cfg.Hotels.BaseURL, "/")
	if strings.TrimSpace(cfg.Hotels.APIHost) == "" {
		cfg.Hotels.APIHost = "hotels4.p.rapidapi.com"
	}
	if strings.TrimSpace(cfg.Hotels.Locale) == "" {
		cfg.Hotels.Locale = "en_US"
	}
	if strings.TrimSpace(cfg.Hotels.Currency) == "" {
		cfg.Hotels.Currency = "USD"
	}
	if cfg.Hotels.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("hotels.request_timeout_seconds must be >= 0")
	}
	if cfg.Hotels.RetryAttempts <= 0 {
		cfg.Hotels.RetryAttempts = 3
	}
	if cfg.Hotels.FetchSize <= 0 {
		cfg.Hotels.FetchSize = 200
	}

	allowed := map[string]struct{}{
		UpdateCallback:    {},
		UpdateMessage:     {},
		UpdateInlineQuery: {},
	}
	for i, v := range cfg.RateLimit.ExcludeUpdates {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("invalid rate_limit.exclude_updates value %q; allowed: callback, message, inline_query", v)
		}
		cfg.RateLimit.ExcludeUpdates[i] = key
	}
	return nil
}
