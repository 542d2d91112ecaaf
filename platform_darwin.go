//go:build darwin

package desknotify

import (
	"log/slog"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/backend/noop"
	"github.com/jmylchreest/desknotify/internal/backend/osascript"
)

// platformKind selects the backend for macOS. Notification Center requires a
// signed application bundle and macOS 10.14 or later; anything else degrades
// to the inert fallback.
func platformKind() backend.Kind {
	return backend.Select("darwin", osascript.OSVersion(), osascript.DetectEnvironment())
}

func newPlatformBackend(kind backend.Kind, appName string, limit int, logger *slog.Logger, dispatch backend.Dispatcher) backend.Backend {
	switch kind {
	case backend.KindCocoa:
		return osascript.New(appName, limit, logger, dispatch)
	default:
		return noop.New(appName, limit, logger, dispatch)
	}
}
