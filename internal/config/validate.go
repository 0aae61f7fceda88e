package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks Config for production-critical problems.
// It collects all errors into a single joined error.
func (c *Config) Validate() error {
	var errs []string

	// Port ranges
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT must be 1–65535, got %d", c.Server.Port))
	}
	if c.Redis.Port < 1 || c.Redis.Port > 65535 {
		errs = append(errs, fmt.Sprintf("REDIS_PORT must be 1–65535, got %d", c.Redis.Port))
	}

	// Dialogue heuristics
	if c.Chat.MaxContextMessages < 1 {
		errs = append(errs, "CHAT_MAX_CONTEXT_MESSAGES must be positive")
	}
	if c.Chat.ConfidenceDivisor < 1 {
		errs = append(errs, "CHAT_CONFIDENCE_DIVISOR must be positive")
	}
	if c.Chat.SessionTTL <= 0 {
		errs = append(errs, "CHAT_SESSION_TTL must be positive")
	}
	if c.External.Timeout <= 0 {
		errs = append(errs, "EXTERNAL_TIMEOUT must be positive")
	}

	// Collaborator endpoints: warn only, the chat core degrades to
	// omitting the affected data sections.
	if !c.External.OfflineMode {
		if c.External.WeatherURL == "" {
			slog.Warn("EXTERNAL_WEATHER_URL is empty, weather sections will be omitted")
		}
		if c.External.MarketURL == "" {
			slog.Warn("EXTERNAL_MARKET_URL is empty, mandi price sections will be omitted")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
