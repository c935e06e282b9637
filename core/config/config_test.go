package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "token"},
		Hotels:   HotelsConfig{APIKey: "key"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want longpoll", cfg.Telegram.RunMode)
	}
	if cfg.Hotels.BaseURL != "https://hotels4.p.rapidapi.com" {
		t.Fatalf("base_url = %q", cfg.Hotels.BaseURL)
	}
	if cfg.Hotels.APIHost != "hotels4.p.rapidapi.com" {
		t.Fatalf("api_host = %q", cfg.Hotels.APIHost)
	}
	if cfg.Hotels.Locale != "en_US" || cfg.Hotels.Currency != "USD" {
		t.Fatalf("locale/currency = %q/%q", cfg.Hotels.Locale, cfg.Hotels.Currency)
	}
	if cfg.Hotels.RetryAttempts != 3 || cfg.Hotels.FetchSize != 200 {
		t.Fatalf("retries/fetch = %d/%d", cfg.Hotels.RetryAttempts, cfg.Hotels.FetchSize)
	}
	if cfg.Hotels.Timeout() != 10*time.Second {
		t.Fatalf("timeout = %v, want 10s", cfg.Hotels.Timeout())
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.Token = ""
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestNormalizeRequiresHotelsKey(t *testing.T) {
	cfg := validConfig()
	cfg.Hotels.APIKey = ""
	err := Normalize(cfg)
	if err == nil || !strings.Contains(err.Error(), "hotels.api_key") {
		t.Fatalf("err = %v, want hotels.api_key requirement", err)
	}
}

func TestNormalizeWebhookValidation(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without url")
	}

	cfg = validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook.URL = "https://bot.example.com"
	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	if err := Normalize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want longpoll alias applied", cfg.Telegram.RunMode)
	}
}

func TestNormalizeRejectsUnknownExcludeUpdates(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"callback", "bogus"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unknown exclude_updates value")
	}
}

func TestNormalizeTrimsBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Hotels.BaseURL = "https://example.com/"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Hotels.BaseURL != "https://example.com" {
		t.Fatalf("base_url = %q, trailing slash must be trimmed", cfg.Hotels.BaseURL)
	}
}
