//go:build windows

package desknotify

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/windows"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/backend/noop"
	"github.com/jmylchreest/desknotify/internal/backend/toast"
)

// platformKind selects the backend for Windows. Toast notifications arrived
// with Windows 10 build 10240; older releases degrade to the fallback.
func platformKind() backend.Kind {
	v := windows.RtlGetVersion()
	version := fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)
	return backend.Select("windows", version, backend.Environment{})
}

func newPlatformBackend(kind backend.Kind, appName string, limit int, logger *slog.Logger, dispatch backend.Dispatcher) backend.Backend {
	switch kind {
	case backend.KindToast:
		return toast.New(appName, limit, logger, dispatch)
	default:
		return noop.New(appName, limit, logger, dispatch)
	}
}
