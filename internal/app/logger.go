package app

import (
	"io"
	"log/slog"
)

// newLogger creates a new slog.Logger writing to outW. It does not set the
// global logger, allowing for isolated logger instances. Unknown levels log
// at info.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevels[levelStr]}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
