package main

import (
	"context"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/myrjola/ideacoach/internal/broker"
	"github.com/myrjola/ideacoach/internal/chatbot"
	"github.com/myrjola/ideacoach/internal/envstruct"
	"github.com/myrjola/ideacoach/internal/errors"
	"github.com/myrjola/ideacoach/internal/logging"
	"github.com/myrjola/ideacoach/internal/metrics"
	"github.com/myrjola/ideacoach/internal/models"
	"github.com/myrjola/ideacoach/internal/pprofserver"
	"github.com/myrjola/ideacoach/internal/sqlite"
	"github.com/myrjola/ideacoach/internal/workspace"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	workspaces     *workspace.Registry
	metrics        *metrics.Metrics
	htmx           *htmx.HTMX
	now            func() time.Time
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"IDEACOACH_ADDR" envDefault:"localhost:4000"`
	// SqliteURL is the URL to the SQLite database holding the sessions. :memory: keeps them in memory.
	SqliteURL string `env:"IDEACOACH_SQLITE_URL" envDefault:":memory:"`
	// PprofAddr enables the pprof server when set, e.g., [::1]:6060.
	PprofAddr string `env:"IDEACOACH_PPROF_ADDR" envDefault:""`
	// NavigationDelay is how long a page switch stays in transition before it's committed.
	NavigationDelay time.Duration `env:"IDEACOACH_NAVIGATION_DELAY" envDefault:"150ms"`
	// TypingDelay is how long the mentor "types" before a chat reply appears.
	TypingDelay     time.Duration `env:"IDEACOACH_TYPING_DELAY" envDefault:"2s"`
	SessionLifetime time.Duration `env:"IDEACOACH_SESSION_LIFETIME" envDefault:"12h"`
}

const (
	workspaceEvictionInterval = time.Minute
	sessionCountTimeout       = time.Second
)

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cfg config
		err error
	)
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config from environment")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.PprofAddr != "" {
		pprofserver.Launch(ctx, cfg.PprofAddr, logger)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, cfg.SqliteURL, logger); err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close database", errors.SlogError(closeErr))
		}
	}()

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.New(db.ReadWrite.DB)
	sessionManager.Lifetime = cfg.SessionLifetime
	sessionManager.Cookie.Name = "ideacoach_session"
	sessionManager.Cookie.Secure = true

	replies := broker.NewChannelBroker[string, models.ChatMessage]()
	go replies.Start(ctx)
	defer replies.Stop()

	// Workspaces outlive the request that created them, so their goroutines use the server's context.
	var workspaces *workspace.Registry
	m := metrics.New(
		func() int { return workspaces.Len() },
		func() int {
			countCtx, countCancel := context.WithTimeout(ctx, sessionCountTimeout)
			defer countCancel()
			n, countErr := db.CountActiveSessions(countCtx)
			if countErr != nil {
				logger.LogAttrs(ctx, slog.LevelError, "count active sessions", errors.SlogError(countErr))
			}
			return n
		},
	)
	workspaces = workspace.NewRegistry(ctx, workspace.Config{
		NavigationDelay: cfg.NavigationDelay,
		TypingDelay:     cfg.TypingDelay,
		IdleTimeout:     cfg.SessionLifetime,
		Selector:        chatbot.New(),
		Replies:         replies,
		Observer:        m,
		Logger:          logger,
	})
	go workspaces.StartEviction(ctx, workspaceEvictionInterval)

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		workspaces:     workspaces,
		metrics:        m,
		htmx:           htmx.New(),
		now:            time.Now,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	// The .env file is optional. Variables already in the environment take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failure loading .env file", errors.SlogError(err))
		stop()
		os.Exit(1)
	}

	err := run(ctx, logger, os.LookupEnv)
	stop()
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
