//nolint:revive //it is what it is
package eventdeck

import (
	"embed"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"github.com/xhit/go-str2duration/v2"
	"eventdeck/config"
	"eventdeck/eventbus"
	"eventdeck/pkg/catalogapi"
	"eventdeck/repositories"
	"eventdeck/services"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// App is the embedding surface for a host presentation layer: it owns the
// event bus, the repositories and the session services. There is no CLI or
// HTTP surface here; rendering, navigation and transport policy belong to
// the host.
type App struct {
	logger       *slog.Logger
	Config       config.Config
	Bus          eventbus.EventBus
	Repositories *repositories.Repositories
	Services     *services.Services
}

// NewLogger builds the default logger: text output, sentry-aware when the
// environment warrants it.
func NewLogger(cfg config.Config) *slog.Logger {
	return slog.New(sentrytools.NewLogHandler(
		cfg.Env,
		slog.NewTextHandler(os.Stdout, nil),
	))
}

// New wires the app against the backend HTTP API.
func New(logger *slog.Logger, cfg config.Config) (*App, error) {
	timeout, err := str2duration.ParseDuration(cfg.FetchTimeout)
	if err != nil {
		return nil, err
	}

	store, err := repositories.NewFilePreferenceStore(cfg.PreferencesDir)
	if err != nil {
		return nil, err
	}

	client := catalogapi.New(logger, cfg.APIURL, timeout)

	return NewInner(logger, cfg, repositories.NewAPI(client, store))
}

// NewWithDB wires the app straight against the backend database.
func NewWithDB(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) (*App, error) {
	store, err := repositories.NewFilePreferenceStore(cfg.PreferencesDir)
	if err != nil {
		return nil, err
	}

	spandb := postgres.NewSpanDB(db)

	return NewInner(logger, cfg, repositories.New(spandb, store))
}

// NewInner wires the app from prebuilt repositories. Used by the other
// constructors and by tests.
func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	repos *repositories.Repositories,
) (*App, error) {
	if err := initSentry(cfg); err != nil {
		return nil, err
	}

	bus := eventbus.New(logger)

	return &App{
		logger:       logger,
		Config:       cfg,
		Bus:          bus,
		Repositories: repos,
		Services:     services.New(logger, bus, repos),
	}, nil
}

func initSentry(cfg config.Config) error {
	if len(cfg.SentryDsn) == 0 {
		return nil
	}

	//nolint:exhaustruct //other fields are optional
	return sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDsn,
		Environment:      cfg.Env,
		Release:          cfg.Release,
		EnableTracing:    true,
		TracesSampleRate: cfg.SampleRate,
		SampleRate:       cfg.SampleRate,
	})
}

// ApplyMigrations bootstraps the events and guests schema for direct-DB
// deployments.
func (app *App) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *App) GetName() string {
	return "eventdeck"
}
