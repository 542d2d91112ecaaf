package osascript

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/jmylchreest/desknotify/internal/backend"
)

// bundleMarker is the path segment present when the running executable lives
// inside a macOS application bundle.
const bundleMarker = ".app/Contents/MacOS/"

// DetectEnvironment probes whether the current process runs inside a signed
// application bundle. Notification Center only accepts notifications from
// bundles, so the selector degrades to the fallback backend otherwise.
func DetectEnvironment() backend.Environment {
	exe, err := os.Executable()
	if err != nil {
		return backend.Environment{}
	}
	return environmentFor(exe, codesignVerify)
}

// environmentFor is the testable core of DetectEnvironment.
func environmentFor(exe string, verify func(path string) bool) backend.Environment {
	idx := strings.Index(exe, bundleMarker)
	if idx < 0 {
		return backend.Environment{}
	}
	bundle := exe[:idx+len(".app")]
	return backend.Environment{
		IsBundle:       true,
		IsSignedBundle: verify(bundle),
	}
}

// codesignVerify checks the bundle signature with the codesign tool.
func codesignVerify(bundle string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "codesign", "--verify", bundle).Run() == nil
}

// OSVersion returns the macOS product version, e.g. "14.2.1". An empty
// string is returned when the probe fails, which the selector treats as
// below any threshold.
func OSVersion() string {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "sw_vers", "-productVersion").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
