package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/kisanconnect/kisanconnect/internal/api"
	"github.com/kisanconnect/kisanconnect/internal/chat"
	"github.com/kisanconnect/kisanconnect/internal/config"
	"github.com/kisanconnect/kisanconnect/internal/events"
	"github.com/kisanconnect/kisanconnect/internal/external"
	"github.com/kisanconnect/kisanconnect/internal/intent"
	"github.com/kisanconnect/kisanconnect/internal/knowledge"
	"github.com/kisanconnect/kisanconnect/internal/middleware"
	iredis "github.com/kisanconnect/kisanconnect/internal/redis"
	"github.com/kisanconnect/kisanconnect/internal/respond"
	"github.com/kisanconnect/kisanconnect/internal/server"
	"github.com/kisanconnect/kisanconnect/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Redis
	redisClient, err := iredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		slog.Error("connecting to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// NATS is optional; without it turn events are simply not published.
	var eventsClient *events.Client
	if cfg.NATS.URL != "" {
		eventsClient, err = events.NewClient(ctx, cfg.NATS)
		if err != nil {
			slog.Error("connecting to NATS", "error", err)
			os.Exit(1)
		}
		defer eventsClient.Close()
	} else {
		slog.Info("NATS not configured, event publishing disabled")
	}
	publisher := events.NewPublisher(eventsClient)

	// Knowledge base and response templates
	kb, err := knowledge.Load()
	if err != nil {
		slog.Error("loading crop knowledge base", "error", err)
		os.Exit(1)
	}
	responder, err := respond.New(kb)
	if err != nil {
		slog.Error("building response generator", "error", err)
		os.Exit(1)
	}

	// Dialogue pipeline
	classifier := intent.NewClassifier(cfg.Chat.ConfidenceDivisor)
	store := session.NewStore(redisClient, cfg.Chat.SessionTTL)
	extClient := external.NewClient(cfg.External)
	manager := chat.NewManager(cfg.Chat, classifier, responder, store, extClient, publisher)
	chatHandler := chat.NewHandler(manager, extClient)

	// Router
	chatLimiter := middleware.NewRateLimiter(redisClient, 30, 60)
	routerCfg := api.RouterConfig{
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		ChatRateLimiter:    chatLimiter.Middleware,
	}
	if eventsClient != nil {
		routerCfg.EventsHealthy = eventsClient.Healthy
	}

	router := api.NewRouter(redisClient, routerCfg, api.HandlerSet{
		ChatMessage:        chatHandler.Message,
		ChatDisease:        chatHandler.Disease,
		ChatDiseaseImage:   chatHandler.DiseaseImage,
		GetSession:         chatHandler.GetSession,
		DeleteSession:      chatHandler.DeleteSession,
		SetSessionLanguage: chatHandler.SetLanguage,
	})

	// Start server
	srv := server.New(cfg.Server, router)
	if err := srv.Start(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{}
	switch cfg.Level {
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
