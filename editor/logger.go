//go:build unix

package editor

import "log/slog"

const logGroup = "editor"

var logger *slog.Logger

func init() {
	logger = slog.Default().WithGroup(logGroup)
}

// SetLogger overrides the package-level logger used to report load,
// save, and lifecycle events.
func SetLogger(log *slog.Logger) {
	logger = log.WithGroup(logGroup)
}
