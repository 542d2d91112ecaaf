// Package osascript implements the macOS Notification Center backend by
// executing AppleScript through the osascript binary, the same route the
// pack's darwin helpers take. Notification Center offers no retraction or
// interaction surface over this route, so capabilities are limited to
// display fields.
package osascript

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/model"
)

// runner executes a command and returns its error. Swapped out in tests.
type runner func(ctx context.Context, name string, args ...string) error

func execRun(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Backend displays notifications via `osascript -e 'display notification'`.
type Backend struct {
	logger  *slog.Logger
	tracker *backend.Tracker
	run     runner

	mu      sync.Mutex
	appName string
}

var _ backend.Backend = (*Backend)(nil)

// New creates an osascript-based backend.
func New(appName string, limit int, logger *slog.Logger, _ backend.Dispatcher) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{
		logger:  logger,
		tracker: backend.NewTracker(limit),
		run:     execRun,
		appName: appName,
	}
}

// AppName returns the configured application name. Notification Center
// attributes notifications to the sending bundle, so the value is only used
// for logging.
func (b *Backend) AppName() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.appName
}

// SetAppName changes the application name.
func (b *Backend) SetAppName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.appName = name
}

// RequestAuthorisation reports granted. The osascript route shows the
// notification under the scripting host, which carries its own permission;
// there is no prompt this layer can trigger.
func (b *Backend) RequestAuthorisation(ctx context.Context) (bool, error) {
	return true, nil
}

// HasAuthorisation reports granted; see RequestAuthorisation.
func (b *Backend) HasAuthorisation(ctx context.Context) (bool, error) {
	return true, nil
}

// Send displays the notification. A failed osascript invocation is expected
// non-delivery: logged, identifier left unset, no error returned.
func (b *Backend) Send(ctx context.Context, n *model.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	script := BuildScript(n)
	if err := b.run(ctx, "osascript", "-e", script); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		b.logger.Warn("osascript failed", "title", n.Title, "error", err)
		return nil
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		b.logger.Warn("failed to generate identifier", "error", err)
		return nil
	}
	n.Identifier = id.String()
	b.tracker.Add(n)
	b.logger.Debug("notification displayed", "id", n.Identifier, "title", n.Title)
	return nil
}

// BuildScript renders the AppleScript statement for a notification.
func BuildScript(n *model.Notification) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "display notification %s with title %s",
		quote(n.Message), quote(n.Title))
	if n.Thread != "" {
		fmt.Fprintf(&sb, " subtitle %s", quote(n.Thread))
	}
	if n.Sound != nil {
		name := n.Sound.Name
		if n.Sound.IsDefault() {
			name = "default"
		}
		if name != "" {
			fmt.Fprintf(&sb, " sound name %s", quote(name))
		}
	}
	return sb.String()
}

// quote produces a double-quoted AppleScript string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// Clear forgets the notification. The osascript route cannot retract a
// displayed banner, so removal is bookkeeping only.
func (b *Backend) Clear(ctx context.Context, n *model.Notification) error {
	if n == nil || !n.Scheduled() {
		return nil
	}
	b.tracker.Remove(n.Identifier)
	return nil
}

// ClearAll forgets every recorded notification.
func (b *Backend) ClearAll(ctx context.Context) error {
	b.tracker.Clear()
	return nil
}

// Capabilities reports the display-only feature set of the osascript route.
func (b *Backend) Capabilities(ctx context.Context) ([]model.Capability, error) {
	return []model.Capability{
		model.CapabilityTitle,
		model.CapabilityMessage,
		model.CapabilitySound,
		model.CapabilityThread,
	}, nil
}

// CurrentNotifications returns the recorded notifications, oldest first.
func (b *Backend) CurrentNotifications() []*model.Notification {
	return b.tracker.Snapshot()
}

// Close is a no-op.
func (b *Backend) Close() error { return nil }
