package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/afiaWhiteprints/esosa/internal/ai"
	"github.com/afiaWhiteprints/esosa/internal/config"
	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/episode"
	"github.com/afiaWhiteprints/esosa/internal/publisher"
	"github.com/afiaWhiteprints/esosa/internal/research"
	"github.com/afiaWhiteprints/esosa/internal/source"
	"github.com/afiaWhiteprints/esosa/internal/source/reddit"
	"github.com/afiaWhiteprints/esosa/internal/source/threads"
	"github.com/afiaWhiteprints/esosa/internal/source/tiktok"
	"github.com/afiaWhiteprints/esosa/internal/source/twitter"
	"github.com/afiaWhiteprints/esosa/internal/storage/postgres"
)

// app holds everything a command needs, wired once per invocation.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *sqlx.DB
	rabbit   *publisher.RabbitMQ
	sessions *postgres.SessionStore
	history  *postgres.HistoryStore
	txm      *postgres.TransactionManager
	router   *ai.Router
	research *research.Service
	episodes *episode.Generator
}

// store composes the session and history stores behind the service
// interfaces.
type store struct {
	*postgres.SessionStore
	*postgres.HistoryStore
}

func newApp() (*app, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("connected to database")

	// A broker outage should not block local research, so a failed
	// connection degrades to no event publishing.
	rabbit, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, events will not be published", "error", err)
		rabbit = nil
	}

	sessions := postgres.NewSessionStore(db)
	history := postgres.NewHistoryStore(db)
	txm := postgres.NewTransactionManager(db)
	stores := store{SessionStore: sessions, HistoryStore: history}

	router, err := buildRouter(cfg, logger)
	if err != nil {
		db.Close()
		if rabbit != nil {
			rabbit.Close()
		}
		return nil, err
	}

	var researchPub research.Publisher
	var episodePub episode.Publisher
	if rabbit != nil {
		researchPub = rabbit
		episodePub = rabbit
	}

	researchSvc := research.NewService(buildAdapters(cfg, logger), router, stores, researchPub, logger)
	episodeSvc := episode.NewGenerator(router, researchSvc, stores, txm, episodePub, logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		rabbit:   rabbit,
		sessions: sessions,
		history:  history,
		txm:      txm,
		router:   router,
		research: researchSvc,
		episodes: episodeSvc,
	}, nil
}

func (a *app) close() {
	if a.rabbit != nil {
		a.rabbit.Close()
	}
	a.db.Close()
}

// buildAdapters constructs every platform adapter whose credentials are
// present. A missing key is a warning, not an error; the platform shows
// up as "integration not available" if a session requests it.
func buildAdapters(cfg *config.Config, logger *slog.Logger) []source.Adapter {
	builders := []struct {
		name  string
		cfg   config.PlatformConfig
		build func(config.PlatformConfig) (source.Adapter, error)
	}{
		{"twitter", cfg.Platforms.Twitter, func(p config.PlatformConfig) (source.Adapter, error) {
			return twitter.New(twitter.Config{
				APIKey:                p.APIKey,
				BaseURL:               p.BaseURL,
				Timeout:               p.Timeout,
				MaxAttempts:           p.MaxAttempts,
				InitialBackoff:        p.InitialBackoff,
				MaxBackoff:            p.MaxBackoff,
				MaxRequestsPerSession: p.MaxRequestsPerSession,
			}, logger)
		}},
		{"tiktok", cfg.Platforms.TikTok, func(p config.PlatformConfig) (source.Adapter, error) {
			return tiktok.New(tiktok.Config{
				APIKey:                p.APIKey,
				BaseURL:               p.BaseURL,
				Timeout:               p.Timeout,
				MaxAttempts:           p.MaxAttempts,
				InitialBackoff:        p.InitialBackoff,
				MaxBackoff:            p.MaxBackoff,
				MaxRequestsPerSession: p.MaxRequestsPerSession,
			}, logger)
		}},
		{"threads", cfg.Platforms.Threads, func(p config.PlatformConfig) (source.Adapter, error) {
			return threads.New(threads.Config{
				APIKey:                p.APIKey,
				BaseURL:               p.BaseURL,
				Timeout:               p.Timeout,
				MaxAttempts:           p.MaxAttempts,
				InitialBackoff:        p.InitialBackoff,
				MaxBackoff:            p.MaxBackoff,
				MaxRequestsPerSession: p.MaxRequestsPerSession,
			}, logger)
		}},
		{"reddit", cfg.Platforms.Reddit, func(p config.PlatformConfig) (source.Adapter, error) {
			return reddit.New(reddit.Config{
				APIKey:                p.APIKey,
				BaseURL:               p.BaseURL,
				Timeout:               p.Timeout,
				MaxAttempts:           p.MaxAttempts,
				InitialBackoff:        p.InitialBackoff,
				MaxBackoff:            p.MaxBackoff,
				MaxRequestsPerSession: p.MaxRequestsPerSession,
			}, logger)
		}},
	}

	var adapters []source.Adapter
	for _, b := range builders {
		if b.cfg.APIKey == "" {
			logger.Warn("platform adapter disabled", "platform", b.name, "reason", "no API key configured")
			continue
		}
		adapter, err := b.build(b.cfg)
		if err != nil {
			logger.Warn("platform adapter disabled", "platform", b.name, "error", err)
			continue
		}
		adapters = append(adapters, adapter)
	}
	return adapters
}

// buildRouter wires Gemini as primary and OpenRouter as fallback. Either
// alone is enough; with neither configured no AI analysis can run.
func buildRouter(cfg *config.Config, logger *slog.Logger) (*ai.Router, error) {
	prompts, err := ai.LoadPrompts(cfg.AI.PromptsFile)
	if err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}

	var primary, fallback ai.Backend

	if cfg.AI.Gemini.APIKey != "" {
		gemini, err := ai.NewGemini(ai.GeminiConfig{
			APIKey:  cfg.AI.Gemini.APIKey,
			Model:   cfg.AI.Gemini.Model,
			BaseURL: cfg.AI.Gemini.BaseURL,
			Timeout: cfg.AI.Gemini.Timeout,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("gemini backend: %w", err)
		}
		primary = gemini
	}

	if cfg.AI.OpenRouter.APIKey != "" {
		openRouter, err := ai.NewOpenRouter(ai.OpenRouterConfig{
			APIKey:      cfg.AI.OpenRouter.APIKey,
			Model:       cfg.AI.OpenRouter.Model,
			BaseURL:     cfg.AI.OpenRouter.BaseURL,
			Timeout:     cfg.AI.OpenRouter.Timeout,
			MaxAttempts: cfg.AI.OpenRouter.MaxAttempts,
			RetryDelay:  cfg.AI.OpenRouter.RetryDelay,
			MinInterval: cfg.AI.OpenRouter.MinInterval,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("openrouter backend: %w", err)
		}
		if primary == nil {
			primary = openRouter
		} else {
			fallback = openRouter
		}
	}

	if primary == nil {
		return nil, fmt.Errorf("no AI backend configured: set a Gemini or OpenRouter API key")
	}

	return ai.NewRouter(primary, fallback, prompts, logger), nil
}

// researchRequest assembles a request from the shared research flags.
func researchRequest(keywords []string, niche, description string, daysBack int, platforms []string, maxItems int, randomKeywords bool, randomCount int, regions []string, publish bool) domain.ResearchRequest {
	enabled := make(map[domain.Platform]domain.PlatformOptions, len(platforms))
	for _, name := range platforms {
		enabled[domain.Platform(name)] = domain.PlatformOptions{
			Enabled:            true,
			MaxItems:           maxItems,
			UseRandomKeywords:  randomKeywords,
			RandomKeywordCount: randomCount,
			Regions:            regions,
		}
	}
	return domain.ResearchRequest{
		Keywords:    keywords,
		Niche:       niche,
		Description: description,
		DaysBack:    daysBack,
		Platforms:   enabled,
		Publish:     publish,
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
