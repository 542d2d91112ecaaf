//go:build windows

// Package toast implements the Windows notification backend on top of the
// toast XML surface exposed by github.com/go-toast/toast.
package toast

import (
	"context"
	"crypto/rand"
	"log/slog"
	"sync"
	"time"

	gotoast "github.com/go-toast/toast"
	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/model"
)

// pusher displays a toast notification. Swapped out in tests.
type pusher func(n *gotoast.Notification) error

func push(n *gotoast.Notification) error { return n.Push() }

// Backend displays Windows toast notifications. Toasts are fire-and-forget
// on this surface: buttons are rendered but activation is delivered to the
// protocol handler, not back to this process, so interaction callbacks are
// not part of the capability set.
type Backend struct {
	logger  *slog.Logger
	tracker *backend.Tracker
	push    pusher

	mu      sync.Mutex
	appName string
}

var _ backend.Backend = (*Backend)(nil)

// New creates a toast backend for the given application name. The name also
// serves as the toast AppID shown in the Action Center.
func New(appName string, limit int, logger *slog.Logger, _ backend.Dispatcher) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{
		logger:  logger,
		tracker: backend.NewTracker(limit),
		push:    push,
		appName: appName,
	}
}

// AppName returns the configured application name.
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

// RequestAuthorisation reports granted; toast delivery needs no prompt, the
// user controls it through system notification settings.
func (b *Backend) RequestAuthorisation(ctx context.Context) (bool, error) {
	return true, nil
}

// HasAuthorisation reports granted; see RequestAuthorisation.
func (b *Backend) HasAuthorisation(ctx context.Context) (bool, error) {
	return true, nil
}

// Send displays the toast. A failed push is expected non-delivery: logged,
// identifier left unset, no error returned.
func (b *Backend) Send(ctx context.Context, n *model.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.push(buildToast(b.AppName(), n)); err != nil {
		b.logger.Warn("failed to display toast", "title", n.Title, "error", err)
		return nil
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		b.logger.Warn("failed to generate identifier", "error", err)
		return nil
	}
	n.Identifier = id.String()
	b.tracker.Add(n)
	b.logger.Debug("toast displayed", "id", n.Identifier, "title", n.Title)
	return nil
}

// buildToast maps the cross-platform notification onto the toast XML fields.
func buildToast(appID string, n *model.Notification) *gotoast.Notification {
	t := &gotoast.Notification{
		AppID:   appID,
		Title:   n.Title,
		Message: n.Message,
		Audio:   gotoast.Silent,
	}
	if n.Icon != nil && n.Icon.Path != "" {
		t.Icon = n.Icon.Path
	}
	if n.Sound != nil {
		t.Audio = gotoast.Default
	}
	// The toast surface only distinguishes short and long display; anything
	// without a timeout stays up long.
	if n.Timeout == model.NoTimeout {
		t.Duration = gotoast.Long
	} else {
		t.Duration = gotoast.Short
	}
	for _, btn := range n.Buttons {
		t.Actions = append(t.Actions, gotoast.Action{
			Type:  "protocol",
			Label: btn.Label,
		})
	}
	return t
}

// Clear forgets the notification. The toast surface offers no retraction of
// an individual toast from the Action Center, so removal is bookkeeping only.
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

// Capabilities reports the toast feature set.
func (b *Backend) Capabilities(ctx context.Context) ([]model.Capability, error) {
	return []model.Capability{
		model.CapabilityAppName,
		model.CapabilityTitle,
		model.CapabilityMessage,
		model.CapabilityIcon,
		model.CapabilityButtons,
		model.CapabilitySound,
		model.CapabilityTimeout,
	}, nil
}

// CurrentNotifications returns the recorded notifications, oldest first.
func (b *Backend) CurrentNotifications() []*model.Notification {
	return b.tracker.Snapshot()
}

// Close is a no-op.
func (b *Backend) Close() error { return nil }
