package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"ipdetective/internal/db"
	"ipdetective/internal/envstruct"
	"ipdetective/internal/errors"
	"ipdetective/internal/game"
	"ipdetective/internal/logging"
	"ipdetective/internal/pprofserver"
	"ipdetective/internal/ratelimit"
	"ipdetective/internal/repositories"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
)

// Advisory API rate limit, counted per client IP in fixed windows.
const (
	apiRateLimit  = 100
	apiRateWindow = 15 * time.Minute
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	content        *repositories.ContentRepository
	machine        *game.Machine
	limiter        *ratelimit.Limiter
}

type config struct {
	Addr      string `env:"IPDETECTIVE_ADDR" envDefault:"localhost:4000"`
	PprofAddr string `env:"IPDETECTIVE_PPROF_ADDR" envDefault:""`
	SqliteURL string `env:"IPDETECTIVE_SQLITE_URL" envDefault:"./ipdetective.sqlite"`
}

func main() {
	loggerHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})
	logger := slog.New(logging.NewContextHandler(loggerHandler))
	ctx := context.Background()

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	// A .env file is a development convenience, deployed environments
	// configure through the process environment.
	_ = godotenv.Load()

	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	// pprof listens on localhost so that it's not open to the world.
	if cfg.PprofAddr != "" {
		pprofserver.Launch(cfg.PprofAddr, logger)
	}

	dbs, err := db.NewDB(cfg.SqliteURL)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to database")

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWriteDB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	content := repositories.NewContentRepository(dbs, logger)

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		htmx:           htmx.New(),
		content:        content,
		machine:        game.NewMachine(content, logger),
		limiter:        ratelimit.New(apiRateLimit, apiRateWindow),
	}

	go app.pruneLimiter(ctx)

	return app.configureAndStartServer(ctx, cfg.Addr)
}

// pruneLimiter drops expired rate limit windows so the per-IP bookkeeping
// doesn't grow without bound.
func (app *application) pruneLimiter(ctx context.Context) {
	ticker := time.NewTicker(apiRateWindow)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.limiter.Prune()
		}
	}
}
