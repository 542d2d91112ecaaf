package desknotify

import (
	"github.com/jmylchreest/desknotify/internal/bridge"
	"github.com/jmylchreest/desknotify/internal/model"
)

// Re-exported model types. The internal model package exists so backends can
// share these types without importing the public package.
type (
	Notification = model.Notification
	Button       = model.Button
	ReplyField   = model.ReplyField
	Icon         = model.Icon
	Sound        = model.Sound
	Attachment   = model.Attachment
	Urgency      = model.Urgency
	Capability   = model.Capability
)

// Urgency levels.
const (
	UrgencyLow      = model.UrgencyLow
	UrgencyNormal   = model.UrgencyNormal
	UrgencyCritical = model.UrgencyCritical
)

// NoTimeout disables automatic dismissal.
const NoTimeout = model.NoTimeout

// Optional notification features; query Capabilities before relying on one.
const (
	CapabilityAppName     = model.CapabilityAppName
	CapabilityTitle       = model.CapabilityTitle
	CapabilityMessage     = model.CapabilityMessage
	CapabilityUrgency     = model.CapabilityUrgency
	CapabilityIcon        = model.CapabilityIcon
	CapabilityButtons     = model.CapabilityButtons
	CapabilityReplyField  = model.CapabilityReplyField
	CapabilityAttachment  = model.CapabilityAttachment
	CapabilitySound       = model.CapabilitySound
	CapabilityThread      = model.CapabilityThread
	CapabilityTimeout     = model.CapabilityTimeout
	CapabilityOnClicked   = model.CapabilityOnClicked
	CapabilityOnDismissed = model.CapabilityOnDismissed
)

// DefaultSound requests the platform default notification sound.
var DefaultSound = model.DefaultSound

// ErrReentrantCall is returned by *Sync methods invoked from within a
// notification callback.
var ErrReentrantCall = bridge.ErrReentrantCall

// IconFromName returns an Icon referring to a themed icon name.
func IconFromName(name string) *Icon { return model.IconFromName(name) }

// IconFromPath returns an Icon referring to an image file on disk.
func IconFromPath(path string) *Icon { return model.IconFromPath(path) }

// IconFromURI returns an Icon referring to an image URI.
func IconFromURI(uri string) *Icon { return model.IconFromURI(uri) }

// NewNotification constructs a Notification with defaults; fields can be
// set directly before passing it to SendNotification.
func NewNotification(title, message string) *Notification {
	return model.New(title, message)
}
