package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a human-oriented text logger for local runs.
// dev/prod environments use JSON handlers, see components.SetupLogger.
func SetupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
