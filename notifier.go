package desknotify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/bridge"
	"github.com/jmylchreest/desknotify/internal/model"
)

// ErrInvalidLimit is returned by New for a negative notification limit.
var ErrInvalidLimit = errors.New("desknotify: notification limit must be non-negative")

// Notifier is the cross-platform notification coordinator. It owns one
// backend instance, selected at construction and immutable afterwards, and
// one private execution goroutine used for callback dispatch and for the
// blocking *Sync call variants.
//
// A Notifier is safe for concurrent use. Mutating the app name or icon while
// sending from other goroutines is the caller's responsibility to serialize
// if a consistent pairing matters.
type Notifier struct {
	backend backend.Backend
	loop    *bridge.Loop
	logger  *slog.Logger

	iconMu  sync.Mutex
	appIcon *Icon

	authRequested atomic.Bool

	capMu sync.Mutex
	caps  []Capability
}

// New constructs a Notifier. Backend selection happens here, exactly once:
// unsupported platforms and unmet packaging preconditions degrade to the
// inert fallback rather than failing construction. Only misconfiguration
// (negative limit) is an error.
func New(opts ...Option) (*Notifier, error) {
	o := options{
		appName: DefaultAppName,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, o.limit)
	}

	loop := bridge.New()

	be := o.backend
	if be == nil {
		kind := backend.KindNoop
		if !o.forceFallback {
			kind = platformKind()
		}
		be = newPlatformBackend(kind, o.appName, o.limit, o.logger, loop.Submit)
		o.logger.Debug("backend selected", "backend", kind.String())
	}

	return &Notifier{
		backend: be,
		loop:    loop,
		logger:  o.logger,
		appIcon: o.appIcon,
	}, nil
}

// AppName returns the application name used for notifications.
func (nf *Notifier) AppName() string { return nf.backend.AppName() }

// SetAppName changes the application name for subsequent sends.
func (nf *Notifier) SetAppName(name string) { nf.backend.SetAppName(name) }

// AppIcon returns the default icon applied to notifications without one.
func (nf *Notifier) AppIcon() *Icon {
	nf.iconMu.Lock()
	defer nf.iconMu.Unlock()
	return nf.appIcon
}

// SetAppIcon changes the default icon for subsequent sends.
func (nf *Notifier) SetAppIcon(icon *Icon) {
	nf.iconMu.Lock()
	defer nf.iconMu.Unlock()
	nf.appIcon = icon
}

// RequestAuthorisation asks the platform for permission to send
// notifications, prompting the user where the platform requires it. It is
// idempotent: repeated calls re-query the current state without prompting
// again. Send requests authorisation automatically on first use.
func (nf *Notifier) RequestAuthorisation(ctx context.Context) (bool, error) {
	nf.authRequested.Store(true)
	return nf.backend.RequestAuthorisation(ctx)
}

// HasAuthorisation returns whether permission is currently granted, without
// prompting.
func (nf *Notifier) HasAuthorisation(ctx context.Context) (bool, error) {
	return nf.backend.HasAuthorisation(ctx)
}

// Send builds a notification from the given fields and schedules it.
//
// The returned Notification is never nil on success paths: its Identifier is
// set when the backend accepted it and empty when delivery could not be
// guaranteed. Ordinary non-delivery is not an error; errors are reserved for
// malformed fields and cancelled contexts.
func (nf *Notifier) Send(ctx context.Context, title, message string, opts ...SendOption) (*Notification, error) {
	n := model.New(title, message)
	for _, opt := range opts {
		opt(n)
	}
	return nf.SendNotification(ctx, n)
}

// SendNotification schedules a caller-constructed notification. See Send for
// the delivery contract.
func (nf *Notifier) SendNotification(ctx context.Context, n *Notification) (*Notification, error) {
	if n == nil {
		return nil, errors.New("desknotify: nil notification")
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	if n.Icon == nil {
		n.Icon = nf.AppIcon()
	}

	// First send triggers the authorisation request; the flag keeps later
	// sends from prompting again.
	if nf.authRequested.CompareAndSwap(false, true) {
		granted, err := nf.backend.RequestAuthorisation(ctx)
		if err != nil {
			nf.authRequested.Store(false)
			return n, err
		}
		if !granted {
			nf.logger.Warn("notification authorisation not granted")
		}
	}

	// Attempt delivery regardless of the authorisation answer; the user may
	// have changed permission settings since it was recorded.
	if err := nf.backend.Send(ctx, n); err != nil {
		return n, err
	}
	if n.Scheduled() {
		nf.logger.Debug("notification sent", "id", n.Identifier, "title", n.Title)
	}
	return n, nil
}

// Clear removes a previously sent notification from the notification center.
// Clearing an unsent or already-removed notification is a no-op.
func (nf *Notifier) Clear(ctx context.Context, n *Notification) error {
	return nf.backend.Clear(ctx, n)
}

// ClearAll removes every notification this Notifier has sent.
func (nf *Notifier) ClearAll(ctx context.Context) error {
	return nf.backend.ClearAll(ctx)
}

// Capabilities returns the optional features the selected backend supports.
// The backend is queried once; the result is cached for the Notifier's
// lifetime. A failed query is not cached and will be retried.
func (nf *Notifier) Capabilities(ctx context.Context) ([]Capability, error) {
	nf.capMu.Lock()
	defer nf.capMu.Unlock()
	if nf.caps == nil {
		caps, err := nf.backend.Capabilities(ctx)
		if err != nil {
			return nil, err
		}
		nf.caps = caps
	}
	out := make([]Capability, len(nf.caps))
	copy(out, nf.caps)
	return out, nil
}

// CurrentNotifications returns a snapshot of the notifications still visible
// in the system notification center for this application, oldest first.
func (nf *Notifier) CurrentNotifications() []*Notification {
	return nf.backend.CurrentNotifications()
}

// Close tears down the private execution goroutine and the backend.
func (nf *Notifier) Close() error {
	err := nf.backend.Close()
	nf.loop.Close()
	return err
}
