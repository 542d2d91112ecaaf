package desknotify

import (
	"log/slog"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/model"
)

// DefaultAppName identifies the application when no name is configured.
const DefaultAppName = "desknotify"

type options struct {
	appName       string
	appIcon       *Icon
	limit         int
	logger        *slog.Logger
	backend       backend.Backend
	forceFallback bool
}

// Option configures a Notifier at construction.
type Option func(*options)

// WithAppName sets the name identifying the application in the notification
// center. On Linux this should match the application's desktop entry; on
// macOS the sending bundle determines attribution and the name is ignored.
func WithAppName(name string) Option {
	return func(o *options) { o.appName = name }
}

// WithAppIcon sets the default icon applied to notifications that carry none.
func WithAppIcon(icon *Icon) Option {
	return func(o *options) { o.appIcon = icon }
}

// WithNotificationLimit bounds how many notifications this Notifier keeps in
// the system notification center. When the limit is exceeded the
// oldest-scheduled notification is evicted first. Zero means unbounded.
func WithNotificationLimit(limit int) Option {
	return func(o *options) { o.limit = limit }
}

// WithLogger sets the structured logger. Without it the Notifier is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithBackend replaces platform selection with the given backend. Intended
// for tests and for embedders that bring their own native binding.
func WithBackend(b backend.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithFallback forces the inert fallback backend regardless of platform.
func WithFallback() Option {
	return func(o *options) { o.forceFallback = true }
}

// SendOption sets an optional field on an outgoing notification.
type SendOption func(*Notification)

// WithUrgency sets the urgency level.
func WithUrgency(u Urgency) SendOption {
	return func(n *Notification) { n.Urgency = u }
}

// WithIcon sets the notification icon, overriding the app default.
func WithIcon(icon *Icon) SendOption {
	return func(n *Notification) { n.Icon = icon }
}

// WithButton appends an action button.
func WithButton(label string, onClicked func()) SendOption {
	return func(n *Notification) {
		n.Buttons = append(n.Buttons, Button{Label: label, OnClicked: onClicked})
	}
}

// WithReplyField enables a free-text response field.
func WithReplyField(title, buttonLabel string, onReplied func(text string)) SendOption {
	return func(n *Notification) {
		n.ReplyField = &ReplyField{Title: title, ButtonLabel: buttonLabel, OnReplied: onReplied}
	}
}

// WithAttachment attaches displayable media.
func WithAttachment(a *Attachment) SendOption {
	return func(n *Notification) { n.Attachment = a }
}

// WithSound plays the given sound with the notification.
func WithSound(s *Sound) SendOption {
	return func(n *Notification) { n.Sound = s }
}

// WithDefaultSound plays the platform default notification sound.
func WithDefaultSound() SendOption {
	return func(n *Notification) { n.Sound = model.DefaultSound }
}

// WithThread groups related notifications under the given key.
func WithThread(key string) SendOption {
	return func(n *Notification) { n.Thread = key }
}

// WithTimeout sets the number of seconds before auto-dismissal.
func WithTimeout(seconds int) SendOption {
	return func(n *Notification) { n.Timeout = seconds }
}

// WithOnClicked sets the callback invoked when the notification is clicked.
func WithOnClicked(fn func()) SendOption {
	return func(n *Notification) { n.OnClicked = fn }
}

// WithOnDismissed sets the callback invoked when the notification is
// dismissed.
func WithOnDismissed(fn func()) SendOption {
	return func(n *Notification) { n.OnDismissed = fn }
}
