package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs the default text logger on stderr, stdout is
// reserved for the tool's own output.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
