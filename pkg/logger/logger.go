package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init configures the process-wide logger. Production gets JSON at info level,
// everything else gets JSON at debug so local submissions are fully visible.
func Init(production bool) {
	level := slog.LevelDebug
	if production {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
