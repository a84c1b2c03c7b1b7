package config

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env            string
	APIURL         string
	FetchTimeout   string
	DBDsn          string
	PreferencesDir string
	SentryDsn      string
	SampleRate     float64
	Release        string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.APIURL = parser.EnvStr("API_URL", "http://localhost:8000")
	cfg.FetchTimeout = parser.EnvStr("FETCH_TIMEOUT", "10s")
	cfg.DBDsn = parser.EnvStr("DB_DSN", "")
	cfg.PreferencesDir = parser.EnvStr("PREFERENCES_DIR", "")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	return cfg
}
