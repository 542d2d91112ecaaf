//go:build !linux && !darwin && !windows

package desknotify

import (
	"log/slog"
	"runtime"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/backend/noop"
)

// platformKind degrades to the inert fallback on platforms without a native
// notification backend.
func platformKind() backend.Kind {
	return backend.Select(runtime.GOOS, "", backend.Environment{})
}

func newPlatformBackend(_ backend.Kind, appName string, limit int, logger *slog.Logger, dispatch backend.Dispatcher) backend.Backend {
	return noop.New(appName, limit, logger, dispatch)
}
