// Package app is the startup phase of the chatbot: it opens the catalog store,
// seeds it, builds the LLM providers and wires the answering pipeline once,
// before any query is handled.
package app

import (
	"context"
	"database/sql"
	"io"
	"time"

	"jobfinder-chatbot/config"
	"jobfinder-chatbot/internal/catalog/repository"
	"jobfinder-chatbot/internal/catalog/repository/memory"
	"jobfinder-chatbot/internal/catalog/repository/sqlstore"
	"jobfinder-chatbot/internal/chatbot/delivery/cli"
	"jobfinder-chatbot/internal/chatbot/usecase"
	"jobfinder-chatbot/internal/router"
	"jobfinder-chatbot/pkg/llmprovider"
	pkgLog "jobfinder-chatbot/pkg/log"
	"jobfinder-chatbot/pkg/metrics"
	"jobfinder-chatbot/pkg/sqldb"
)

// DriverMemory keeps the catalog in process memory instead of a database.
const DriverMemory = "memory"

const pushTimeout = 5 * time.Second

// App is a fully wired chatbot.
type App struct {
	l       pkgLog.Logger
	cfg     *config.Config
	db      *sql.DB
	metrics *metrics.Metrics
	handler cli.Handler
}

// Option customizes Bootstrap.
type Option func(*options)

type options struct {
	providers []llmprovider.Provider
}

// WithProviders skips provider construction from config and uses ps as is.
func WithProviders(ps ...llmprovider.Provider) Option {
	return func(o *options) {
		o.providers = ps
	}
}

// Bootstrap runs the startup phase. Answers are written to out.
func Bootstrap(ctx context.Context, cfg *config.Config, l pkgLog.Logger, out io.Writer, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m := metrics.New()

	repo, db, err := openStore(ctx, cfg.Database, l)
	if err != nil {
		return nil, &StartupError{Stage: StageDatabase, Err: err}
	}

	if cfg.Database.Seed {
		if err := repo.Seed(ctx); err != nil {
			closeDB(db)
			return nil, &StartupError{Stage: StageSeed, Err: err}
		}
		l.Debugf(ctx, "app.Bootstrap: catalog seeded")
	}

	providers := o.providers
	if len(providers) == 0 {
		providers, err = llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
		if err != nil {
			closeDB(db)
			return nil, &StartupError{Stage: StageLLM, Err: err}
		}
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RequestTimeout:  cfg.LLM.RequestTimeout,
		Metrics:         m,
	}, l)

	rt := router.New(manager, l, cfg.LLM.MaxTokens)
	uc := usecase.New(l, rt, manager, repo, m, cfg.LLM.MaxTokens)

	l.Infof(ctx, "app.Bootstrap: ready with %d provider(s), store %s", len(providers), cfg.Database.Driver)

	return &App{
		l:       l,
		cfg:     cfg,
		db:      db,
		metrics: m,
		handler: cli.New(l, uc, m, out),
	}, nil
}

// Ask answers one query on the configured writer.
func (a *App) Ask(ctx context.Context, query string) error {
	return a.handler.Handle(ctx, query)
}

// Metrics exposes the collectors of this run.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Close pushes collected metrics and releases the database.
func (a *App) Close(ctx context.Context) error {
	pushCtx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()
	if err := a.metrics.Push(pushCtx, a.cfg.Metrics.PushgatewayURL, a.cfg.Metrics.Job); err != nil {
		a.l.Warnf(ctx, "app.Close: failed to push metrics: %v", err)
	}

	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, l pkgLog.Logger) (repository.Repository, *sql.DB, error) {
	if cfg.Driver == DriverMemory {
		return memory.New(), nil, nil
	}

	db, dialect, err := sqldb.Open(ctx, sqldb.Config{
		Driver:       cfg.Driver,
		DSN:          cfg.DSN,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		return nil, nil, err
	}
	return sqlstore.New(db, dialect, l), db, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}
