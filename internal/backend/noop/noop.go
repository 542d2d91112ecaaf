// Package noop provides the inert fallback backend used when no native
// notification mechanism is available. It keeps the public API fully usable,
// assigns identifiers, and tracks lifecycle, but performs no native I/O.
package noop

import (
	"context"
	"crypto/rand"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/model"
)

// Backend is the inert fallback.
type Backend struct {
	logger  *slog.Logger
	tracker *backend.Tracker

	mu      sync.Mutex
	appName string
}

var _ backend.Backend = (*Backend)(nil)

// New creates an inert backend for the given application name.
func New(appName string, limit int, logger *slog.Logger, _ backend.Dispatcher) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{
		logger:  logger,
		tracker: backend.NewTracker(limit),
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

// RequestAuthorisation reports granted; there is nothing to prompt for.
func (b *Backend) RequestAuthorisation(ctx context.Context) (bool, error) {
	return true, nil
}

// HasAuthorisation reports granted.
func (b *Backend) HasAuthorisation(ctx context.Context) (bool, error) {
	return true, nil
}

// Send assigns a ULID identifier and records the notification without
// displaying anything.
func (b *Backend) Send(ctx context.Context, n *model.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		b.logger.Warn("failed to generate identifier", "error", err)
		return nil
	}
	n.Identifier = id.String()
	b.tracker.Add(n)
	b.logger.Debug("notification recorded without display", "id", n.Identifier, "title", n.Title)
	return nil
}

// Clear forgets a previously sent notification.
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

// Capabilities reports the full feature set: every field is accepted even
// though nothing is displayed.
func (b *Backend) Capabilities(ctx context.Context) ([]model.Capability, error) {
	caps := make([]model.Capability, len(model.AllCapabilities))
	copy(caps, model.AllCapabilities)
	return caps, nil
}

// CurrentNotifications returns the recorded notifications, oldest first.
func (b *Backend) CurrentNotifications() []*model.Notification {
	return b.tracker.Snapshot()
}

// Close is a no-op.
func (b *Backend) Close() error { return nil }
