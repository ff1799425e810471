// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/querydesk-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/querydesk-backend/internal/adapter/postgres/audit"
	clientrepo "github.com/heartmarshall/querydesk-backend/internal/adapter/postgres/client"
	queryrepo "github.com/heartmarshall/querydesk-backend/internal/adapter/postgres/query"
	"github.com/heartmarshall/querydesk-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/querydesk-backend/internal/config"
	"github.com/heartmarshall/querydesk-backend/internal/domain"
	"github.com/heartmarshall/querydesk-backend/internal/service/assistant"
	"github.com/heartmarshall/querydesk-backend/internal/service/clientref"
	"github.com/heartmarshall/querydesk-backend/internal/service/listing"
	"github.com/heartmarshall/querydesk-backend/internal/service/query"
	"github.com/heartmarshall/querydesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/querydesk-backend/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Run is the application entry point. It blocks until ctx is cancelled and
// the server has drained.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("assistant", cfg.Assistant.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := NewHandler(*cfg, logger, pool, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler builds the full HTTP handler over pool: repositories, services,
// routes and the middleware chain.
func NewHandler(cfg config.Config, logger *slog.Logger, pool postgres.Pool, limiter *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool)
	queries := queryrepo.New(pool)
	clients := clientrepo.New(pool)
	audits := auditrepo.New(pool)

	resolver := clientref.NewService(logger, clients)
	querySvc := query.NewService(logger, queries, resolver, audits, txm, cfg.Queries)
	listingSvc := listing.NewService(logger, querySvc, domain.ParseClientNaming(cfg.Queries.DefaultNaming))

	assistantSvc := assistant.NewService(logger, newTextGenerator(cfg.Assistant, logger))

	mux := rest.NewRouter(rest.Handlers{
		Health:         rest.NewHealthHandler(pool, Version, cfg.Assistant.Enabled()),
		Queries:        rest.NewQueryHandler(querySvc, listingSvc, logger),
		Assistant:      rest.NewAssistantHandler(assistantSvc, logger),
		AssistantLimit: limiter.Limit(cfg.Assistant.RateLimitPerMin),
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// newTextGenerator returns the Anthropic provider when an API key is set and
// a stub that reports the assistant as unavailable otherwise.
func newTextGenerator(cfg config.AssistantConfig, logger *slog.Logger) textGenerator {
	if !cfg.Enabled() {
		return llm.NewStub()
	}
	return llm.NewProvider(cfg, logger)
}
