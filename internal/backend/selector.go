package backend

import (
	"strconv"
	"strings"
)

// Kind identifies a concrete backend implementation.
type Kind int

const (
	// KindNoop is the inert fallback: the API stays usable but no native
	// I/O is performed.
	KindNoop Kind = iota
	// KindDBus is the freedesktop org.freedesktop.Notifications backend.
	KindDBus
	// KindToast is the Windows toast notification backend.
	KindToast
	// KindCocoa is the macOS Notification Center backend.
	KindCocoa
)

// String returns the backend kind name.
func (k Kind) String() string {
	switch k {
	case KindDBus:
		return "dbus"
	case KindToast:
		return "toast"
	case KindCocoa:
		return "cocoa"
	case KindNoop:
		return "noop"
	default:
		return "unknown"
	}
}

// Version thresholds below which the native backend is unavailable.
const (
	// MinDarwinVersion is the first macOS release with UNUserNotificationCenter.
	MinDarwinVersion = "10.14"
	// MinWindowsVersion is the first Windows release with toast notifications.
	MinWindowsVersion = "10.0.10240"
)

// Environment carries the runtime context that influences backend selection
// beyond the OS name and version.
type Environment struct {
	// IsBundle reports whether the process runs inside a macOS .app bundle.
	IsBundle bool
	// IsSignedBundle reports whether that bundle carries a valid signature.
	IsSignedBundle bool
}

// Select maps (operating system, OS version, runtime environment) to the
// backend kind to use. It is a pure function: it never constructs native
// bindings and repeated calls with the same inputs yield the same result.
//
// Unmet preconditions (unsupported version, missing app bundle) degrade to
// KindNoop; notification delivery is best-effort and never a hard dependency
// for the host application to start.
func Select(goos, version string, env Environment) Kind {
	switch goos {
	case "darwin":
		if CompareVersions(version, MinDarwinVersion) >= 0 && env.IsBundle && env.IsSignedBundle {
			return KindCocoa
		}
		return KindNoop
	case "linux":
		return KindDBus
	case "windows":
		if CompareVersions(version, MinWindowsVersion) >= 0 {
			return KindToast
		}
		return KindNoop
	default:
		return KindNoop
	}
}

// CompareVersions compares two dotted-decimal version strings, returning -1,
// 0, or 1. Missing components count as zero; non-numeric components count as
// zero as well, so a malformed version never selects a native backend that
// needs a minimum version.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(strings.TrimSpace(as[i]))
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(strings.TrimSpace(bs[i]))
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
