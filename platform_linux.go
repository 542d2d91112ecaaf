//go:build linux

package desknotify

import (
	"log/slog"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/backend/dbusnotify"
	"github.com/jmylchreest/desknotify/internal/backend/noop"
)

// platformKind selects the backend for Linux-family desktops. The version
// and packaging context play no role here: every freedesktop desktop speaks
// the same notification interface.
func platformKind() backend.Kind {
	return backend.Select("linux", "", backend.Environment{})
}

func newPlatformBackend(kind backend.Kind, appName string, limit int, logger *slog.Logger, dispatch backend.Dispatcher) backend.Backend {
	switch kind {
	case backend.KindDBus:
		return dbusnotify.New(appName, limit, logger, dispatch)
	default:
		return noop.New(appName, limit, logger, dispatch)
	}
}
