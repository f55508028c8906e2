package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	CacheTTL      time.Duration
	PublicDir     string
	Stylesheet    string
	OutDir        string
	ExportWorkers int
	ActionRPS     int
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over .env entries.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg(".env could not be parsed")
	}
	return FromEnv()
}

func FromEnv() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":3000"),
		MetricsAddr:   env("METRICS_ADDR", ""),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		PublicDir:     env("PUBLIC_DIR", "public"),
		Stylesheet:    env("STYLESHEET_HREF", Assets.Stylesheet),
		OutDir:        env("OUT_DIR", "out"),
		ExportWorkers: atoi("EXPORT_WORKERS", 4),
		ActionRPS:     atoi("ACTION_RPS", 10),
	}
	if c.ExportWorkers <= 0 {
		c.ExportWorkers = 1
	}
	if c.ActionRPS <= 0 {
		c.ActionRPS = 1
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty, page cache disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
