package buffer

import "log/slog"

const logGroup = "buffer"

var logger *slog.Logger

func init() {
	logger = slog.Default().WithGroup(logGroup)
}

// SetLogger overrides the package-level logger used to report
// internal diagnostics (inserts, deletes, and append-cache hits).
func SetLogger(log *slog.Logger) {
	logger = log.WithGroup(logGroup)
}
