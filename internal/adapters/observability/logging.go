package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"alx_listing/internal/shared"
)

// NewLogger returns the process logger tagged with app name and version.
// APP_ENV=dev (or development) writes human-friendly console output.
func NewLogger(env string) zerolog.Logger {
	return newLogger(os.Stdout, env)
}

func newLogger(out io.Writer, env string) zerolog.Logger {
	if env == "dev" || env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().
		Timestamp().
		Str("app", shared.App.Name).
		Str("version", shared.App.Version).
		Logger()
}
