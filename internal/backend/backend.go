// Package backend defines the contract every platform notification backend
// must satisfy, the pure selection logic choosing between them, and shared
// bookkeeping for scheduled notifications.
package backend

import (
	"context"

	"github.com/jmylchreest/desknotify/internal/model"
)

// Dispatcher hands a user-callback invocation over to the notifier's private
// execution context. Backends must call it instead of running notification
// callbacks inline, so native event delivery is never blocked on user code.
// A Dispatcher must not block.
type Dispatcher func(task func())

// Backend is the platform-specific implementation behind a Notifier.
//
// Expected non-delivery (permission denied, feature unsupported, display
// suppressed by the OS) is absorbed: Send returns nil and leaves the
// notification's Identifier empty. Errors are reserved for exceptional
// conditions such as a cancelled context or a mis-selected backend.
type Backend interface {
	// AppName returns the name identifying the application to the
	// notification server.
	AppName() string

	// SetAppName changes the application name used for subsequent sends.
	SetAppName(name string)

	// RequestAuthorisation triggers a one-time OS permission prompt where the
	// platform requires one and returns whether permission is currently
	// granted. Calling it again must not re-prompt; it re-queries the current
	// state.
	RequestAuthorisation(ctx context.Context) (bool, error)

	// HasAuthorisation returns whether permission is currently granted,
	// without prompting.
	HasAuthorisation(ctx context.Context) (bool, error)

	// Send schedules the notification. On success it sets n.Identifier to a
	// backend-assigned token and stamps n.CreatedAt.
	Send(ctx context.Context, n *model.Notification) error

	// Clear removes a previously sent notification. Clearing an unknown or
	// already-removed notification is a no-op.
	Clear(ctx context.Context, n *model.Notification) error

	// ClearAll removes every notification sent by this backend instance.
	ClearAll(ctx context.Context) error

	// Capabilities returns the set of optional features this backend
	// supports. The orchestration layer queries it once and caches.
	Capabilities(ctx context.Context) ([]model.Capability, error)

	// CurrentNotifications returns a snapshot of the notifications still
	// attributable to this application, oldest first.
	CurrentNotifications() []*model.Notification

	// Close releases native resources and stops event delivery.
	Close() error
}
