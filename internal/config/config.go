package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	NATS     NATSConfig
	External ExternalConfig
	Chat     ChatConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NATSConfig is optional; an empty URL disables event publishing.
type NATSConfig struct {
	URL string
}

// ExternalConfig holds endpoints for the weather, mandi price, backend chat
// and disease detection collaborators. OfflineMode serves fixed data instead
// of calling out, for demos without a backend.
type ExternalConfig struct {
	WeatherURL  string
	MarketURL   string
	BackendURL  string
	DetectURL   string
	Timeout     time.Duration
	OfflineMode bool
}

// ChatConfig carries the dialogue heuristics. These are tuned values, not
// derived ones, so they stay configurable.
type ChatConfig struct {
	MaxContextMessages int
	SessionTTL         time.Duration
	ConfidenceDivisor  int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Load .env file if it exists (ignore error if missing)
	_ = k.Load(file.Provider(".env"), dotenv.Parser())

	// Load environment variables (override .env)
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "_", "."))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: k.String("server.host"),
			Port: k.Int("server.port"),
		},
		Redis: RedisConfig{
			Host:     k.String("redis.host"),
			Port:     k.Int("redis.port"),
			Password: k.String("redis.password"),
			DB:       k.Int("redis.db"),
		},
		NATS: NATSConfig{
			URL: k.String("nats.url"),
		},
		External: ExternalConfig{
			WeatherURL:  k.String("external.weather.url"),
			MarketURL:   k.String("external.market.url"),
			BackendURL:  k.String("external.backend.url"),
			DetectURL:   k.String("external.detect.url"),
			OfflineMode: k.Bool("external.offline.mode"),
		},
		Chat: ChatConfig{
			MaxContextMessages: k.Int("chat.max.context.messages"),
			ConfidenceDivisor:  k.Int("chat.confidence.divisor"),
		},
		CORS: CORSConfig{
			AllowedOrigins: k.Strings("cors.allowed.origins"),
		},
		Log: LogConfig{
			Level:  k.String("log.level"),
			Format: k.String("log.format"),
		},
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Chat.MaxContextMessages == 0 {
		cfg.Chat.MaxContextMessages = 20
	}
	if cfg.Chat.ConfidenceDivisor == 0 {
		cfg.Chat.ConfidenceDivisor = 5
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	// Parse durations
	ttlStr := k.String("chat.session.ttl")
	if ttlStr == "" {
		ttlStr = "24h"
	}
	cfg.Chat.SessionTTL, err = time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("parsing chat session ttl: %w", err)
	}

	timeoutStr := k.String("external.timeout")
	if timeoutStr == "" {
		timeoutStr = "10s"
	}
	cfg.External.Timeout, err = time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("parsing external timeout: %w", err)
	}

	return cfg, nil
}
