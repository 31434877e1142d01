package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"moodquote/internal/config"
	"moodquote/internal/contact"
	"moodquote/internal/db"
	"moodquote/internal/db/mock"
	applog "moodquote/internal/log"
	"moodquote/internal/quote"
	"moodquote/internal/server"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	setLogFormatFunc    = applog.SetFormat
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogFormatFunc(cfg.Logging.Format); err != nil {
		applog.Error(ctx, "invalid log format", "error", err)
		return 1
	}
	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		return 1
	}

	recorder, database, err := buildRecorder(ctx, cfg)
	if err != nil {
		applog.Error(ctx, "failed to configure contact inbox", "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(database); err != nil {
			applog.Error(ctx, "failed to close database", "error", err)
		}
	}()

	srv, err := newServerFunc(server.Config{
		Addr:      cfg.Server.Addr,
		AssetRoot: cfg.Server.AssetRoot,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Catalog:  quote.Default(),
		Recorder: recorder,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	sigCh, unsubscribe := subscribeShutdownSig()
	defer unsubscribe()

	served := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		defer close(served)
		applog.Info(ctx, "server running", "addr", cfg.Server.Addr, "portEnv", cfg.Server.PortEnv)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-served:
			return nil
		case sig := <-sigCh:
			applog.Info(ctx, "shutting down http server", "signal", sig.String())
		case <-ctx.Done():
			applog.Info(ctx, "shutting down http server", "reason", ctx.Err())
		}
		if err := srv.Stop(); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		applog.Error(ctx, "server stopped with error", "error", err)
		return 1
	}
	applog.Info(ctx, "server stopped")
	return 0
}

// buildRecorder always logs submissions and additionally stores them when a
// database is configured. The returned handle is nil when no database is used.
func buildRecorder(ctx context.Context, cfg config.Config) (contact.Recorder, *gorm.DB, error) {
	logRecorder := contact.LogRecorder{APIKey: cfg.Contact.EmailAPIKey}

	var (
		database *gorm.DB
		err      error
	)
	switch {
	case cfg.Database.UseMock:
		applog.Info(ctx, "using in-memory contact inbox")
		database, err = newMockDatabaseFunc(ctx)
	case cfg.Database.Enabled():
		applog.Info(ctx, "using postgres contact inbox")
		database, err = configureDatabase(cfg.Database)
	default:
		applog.Info(ctx, "contact submissions will be logged only")
		return logRecorder, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return contact.Multi{logRecorder, contact.DBRecorder{DB: database}}, database, nil
}
