// Package dbusnotify implements the notification backend for Linux desktops
// over the org.freedesktop.Notifications D-Bus interface.
package dbusnotify

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/model"
)

const (
	dbusDest = "org.freedesktop.Notifications"
	dbusPath = "/org/freedesktop/Notifications"

	callNotify            = "org.freedesktop.Notifications.Notify"
	callCloseNotification = "org.freedesktop.Notifications.CloseNotification"
	callGetCapabilities   = "org.freedesktop.Notifications.GetCapabilities"

	signalNotificationClosed = "org.freedesktop.Notifications.NotificationClosed"
	signalActionInvoked      = "org.freedesktop.Notifications.ActionInvoked"

	// defaultActionKey is the reserved action key a server invokes when the
	// notification body itself is clicked.
	defaultActionKey = "default"

	signalBufferSize = 64
)

// Close reasons defined by the freedesktop notification spec.
const (
	closeReasonExpired   uint32 = 1
	closeReasonDismissed uint32 = 2
	closeReasonClosed    uint32 = 3
)

// connector opens the D-Bus session bus. Swapped out in tests.
type connector func() (*dbus.Conn, error)

// Backend talks to the session notification server. The connection is opened
// lazily on first use so that constructing a Notifier never fails just
// because no bus is available.
type Backend struct {
	logger   *slog.Logger
	dispatch backend.Dispatcher
	tracker  *backend.Tracker
	connect  connector

	mu      sync.Mutex
	appName string
	conn    *dbus.Conn
	signals chan *dbus.Signal
	done    chan struct{}
}

var _ backend.Backend = (*Backend)(nil)

// New creates a D-Bus notification backend for the given application name.
// A limit of 0 keeps an unbounded notification record.
func New(appName string, limit int, logger *slog.Logger, dispatch backend.Dispatcher) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	if dispatch == nil {
		dispatch = func(task func()) { go task() }
	}
	return &Backend{
		logger:   logger,
		dispatch: dispatch,
		tracker:  backend.NewTracker(limit),
		connect:  func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
		appName:  appName,
	}
}

// AppName returns the application name sent with each notification.
func (b *Backend) AppName() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.appName
}

// SetAppName changes the application name for subsequent sends.
func (b *Backend) SetAppName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.appName = name
}

// RequestAuthorisation is a no-op on freedesktop systems: sending
// notifications needs no user permission.
func (b *Backend) RequestAuthorisation(ctx context.Context) (bool, error) {
	return true, nil
}

// HasAuthorisation always reports granted; there is no permission model on
// this platform.
func (b *Backend) HasAuthorisation(ctx context.Context) (bool, error) {
	return true, nil
}

// ensureConn opens the session bus connection and starts the signal loop on
// first use.
func (b *Backend) ensureConn() (*dbus.Conn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		return b.conn, nil
	}

	conn, err := b.connect()
	if err != nil {
		return nil, err
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(dbusPath),
		dbus.WithMatchInterface(dbusDest),
	); err != nil {
		conn.Close()
		return nil, err
	}

	b.signals = make(chan *dbus.Signal, signalBufferSize)
	conn.Signal(b.signals)
	b.done = make(chan struct{})
	go b.signalLoop(b.signals, b.done)

	b.conn = conn
	return conn, nil
}

// Send schedules the notification via Notify. Failures to reach the server
// are expected non-delivery: the identifier stays unset and no error is
// returned. Only context cancellation propagates.
func (b *Backend) Send(ctx context.Context, n *model.Notification) error {
	conn, err := b.ensureConn()
	if err != nil {
		b.logger.Warn("notification server unavailable", "error", err)
		return ctxErr(ctx, err)
	}

	obj := conn.Object(dbusDest, dbusPath)
	call := obj.CallWithContext(ctx, callNotify, 0,
		b.AppName(),
		uint32(0),
		appIcon(n.Icon),
		n.Title,
		n.Message,
		buildActions(n),
		buildHints(n),
		expireTimeout(n.Timeout),
	)
	if call.Err != nil {
		b.logger.Warn("failed to schedule notification", "title", n.Title, "error", call.Err)
		return ctxErr(ctx, call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		b.logger.Warn("unexpected Notify reply", "error", err)
		return nil
	}

	n.Identifier = strconv.FormatUint(uint64(id), 10)
	for _, old := range b.tracker.Add(n) {
		b.closeNative(ctx, old)
	}
	b.logger.Debug("notification scheduled", "id", n.Identifier, "title", n.Title)
	return nil
}

// Clear retracts a previously sent notification. Unknown notifications are a
// no-op.
func (b *Backend) Clear(ctx context.Context, n *model.Notification) error {
	if n == nil || !n.Scheduled() {
		return nil
	}
	// Retract natively even when the tracker no longer knows the identifier:
	// the server treats closing a gone notification as success, which keeps
	// Clear a no-op in the already-removed case.
	b.tracker.Remove(n.Identifier)
	b.closeNative(ctx, n)
	return nil
}

// ClearAll retracts every notification sent by this backend instance.
func (b *Backend) ClearAll(ctx context.Context) error {
	for _, n := range b.tracker.Clear() {
		b.closeNative(ctx, n)
	}
	return nil
}

// closeNative issues CloseNotification, ignoring server-side errors: the
// notification may already be gone, which the spec treats as success.
func (b *Backend) closeNative(ctx context.Context, n *model.Notification) {
	conn, err := b.ensureConn()
	if err != nil {
		return
	}
	id, err := strconv.ParseUint(n.Identifier, 10, 32)
	if err != nil {
		return
	}
	obj := conn.Object(dbusDest, dbusPath)
	if call := obj.CallWithContext(ctx, callCloseNotification, 0, uint32(id)); call.Err != nil {
		b.logger.Debug("CloseNotification failed", "id", n.Identifier, "error", call.Err)
	}
}

// Capabilities queries the server capability list and maps it onto the
// cross-platform capability set.
func (b *Backend) Capabilities(ctx context.Context) ([]model.Capability, error) {
	conn, err := b.ensureConn()
	if err != nil {
		return nil, err
	}
	obj := conn.Object(dbusDest, dbusPath)
	call := obj.CallWithContext(ctx, callGetCapabilities, 0)
	if call.Err != nil {
		return nil, call.Err
	}
	var server []string
	if err := call.Store(&server); err != nil {
		return nil, err
	}
	return mapCapabilities(server), nil
}

// mapCapabilities translates freedesktop server capability strings.
func mapCapabilities(server []string) []model.Capability {
	caps := []model.Capability{
		model.CapabilityAppName,
		model.CapabilityTitle,
		model.CapabilityUrgency,
		model.CapabilityIcon,
		model.CapabilityTimeout,
		model.CapabilityOnDismissed,
	}
	for _, s := range server {
		switch s {
		case "body":
			caps = append(caps, model.CapabilityMessage)
		case "actions":
			caps = append(caps, model.CapabilityButtons, model.CapabilityOnClicked)
		case "sound":
			caps = append(caps, model.CapabilitySound)
		case "body-images":
			caps = append(caps, model.CapabilityAttachment)
		}
	}
	return caps
}

// CurrentNotifications returns the notifications still attributable to this
// application, oldest first.
func (b *Backend) CurrentNotifications() []*model.Notification {
	return b.tracker.Snapshot()
}

// signalLoop consumes ActionInvoked and NotificationClosed signals.
func (b *Backend) signalLoop(signals chan *dbus.Signal, done chan struct{}) {
	for {
		select {
		case sig, ok := <-signals:
			if !ok {
				return
			}
			b.handleSignal(sig)
		case <-done:
			return
		}
	}
}

// handleSignal translates a native signal into the stored notification
// callbacks. Callbacks run through the dispatcher, never on the bus
// delivery goroutine.
func (b *Backend) handleSignal(sig *dbus.Signal) {
	switch sig.Name {
	case signalActionInvoked:
		if len(sig.Body) < 2 {
			return
		}
		id, ok := sig.Body[0].(uint32)
		if !ok {
			return
		}
		key, ok := sig.Body[1].(string)
		if !ok {
			return
		}
		b.onAction(strconv.FormatUint(uint64(id), 10), key)

	case signalNotificationClosed:
		if len(sig.Body) < 2 {
			return
		}
		id, ok := sig.Body[0].(uint32)
		if !ok {
			return
		}
		reason, _ := sig.Body[1].(uint32)
		b.onClosed(strconv.FormatUint(uint64(id), 10), reason)
	}
}

func (b *Backend) onAction(identifier, key string) {
	n := b.tracker.Get(identifier)
	if n == nil {
		return
	}
	if key == defaultActionKey {
		if n.OnClicked != nil {
			b.dispatch(n.OnClicked)
		}
		return
	}
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || idx >= len(n.Buttons) {
		b.logger.Debug("unknown action key", "id", identifier, "key", key)
		return
	}
	if cb := n.Buttons[idx].OnClicked; cb != nil {
		b.dispatch(cb)
	}
}

func (b *Backend) onClosed(identifier string, reason uint32) {
	n := b.tracker.Remove(identifier)
	if n == nil {
		return
	}
	if reason == closeReasonDismissed && n.OnDismissed != nil {
		b.dispatch(n.OnDismissed)
	}
}

// Close stops signal delivery and closes the private bus connection.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		return nil
	}
	close(b.done)
	b.conn.RemoveSignal(b.signals)
	err := b.conn.Close()
	b.conn = nil
	return err
}

// ctxErr propagates context cancellation; anything else is absorbed as
// expected non-delivery.
func ctxErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
