// Package model defines the value types shared by all notification backends.
package model

import (
	"errors"
	"fmt"
	"time"
)

// Urgency levels matching the freedesktop spec ordering.
type Urgency int

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// UrgencyNames maps urgency levels to human-readable names.
var UrgencyNames = map[Urgency]string{
	UrgencyLow:      "low",
	UrgencyNormal:   "normal",
	UrgencyCritical: "critical",
}

// String returns the human-readable name for the urgency level.
func (u Urgency) String() string {
	if name, ok := UrgencyNames[u]; ok {
		return name
	}
	return fmt.Sprintf("urgency(%d)", int(u))
}

// ParseUrgency converts a name such as "low" into an Urgency level.
func ParseUrgency(name string) (Urgency, error) {
	for level, n := range UrgencyNames {
		if n == name {
			return level, nil
		}
	}
	return UrgencyNormal, fmt.Errorf("%w: %q", ErrInvalidUrgency, name)
}

// Validation errors.
var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrInvalidUrgency     = errors.New("urgency must be low, normal, or critical")
	ErrInvalidTimeout     = errors.New("timeout must be -1 or a non-negative number of seconds")
	ErrEmptyButtonLabel   = errors.New("button label cannot be empty")
	ErrAmbiguousIcon      = errors.New("icon must set at most one of name, path, or URI")
	ErrEmptyIcon          = errors.New("icon must set one of name, path, or URI")
	ErrAmbiguousSound     = errors.New("sound must set at most one of name or path")
	ErrEmptySound         = errors.New("sound must set one of name or path")
	ErrAmbiguousAttach    = errors.New("attachment must set at most one of path or URI")
	ErrEmptyAttach        = errors.New("attachment must set one of path or URI")
	ErrEmptyReplyCallback = errors.New("reply field requires an OnReplied callback")
)

// Icon is a tagged reference to a notification icon. Exactly one of the
// fields may be set: a name in a freedesktop-compliant icon theme, a
// filesystem path, or a URI.
type Icon struct {
	Name string
	Path string
	URI  string
}

// IconFromName returns an Icon referring to a themed icon name.
func IconFromName(name string) *Icon { return &Icon{Name: name} }

// IconFromPath returns an Icon referring to an image file on disk.
func IconFromPath(path string) *Icon { return &Icon{Path: path} }

// IconFromURI returns an Icon referring to an image URI.
func IconFromURI(uri string) *Icon { return &Icon{URI: uri} }

// Validate checks that exactly one variant is populated.
func (i *Icon) Validate() error {
	set := 0
	for _, v := range []string{i.Name, i.Path, i.URI} {
		if v != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return ErrEmptyIcon
	case set > 1:
		return ErrAmbiguousIcon
	}
	return nil
}

// String renders the populated variant for logging and CLI output.
func (i *Icon) String() string {
	switch {
	case i.Name != "":
		return i.Name
	case i.Path != "":
		return i.Path
	default:
		return i.URI
	}
}

// Sound is a tagged reference to a notification sound: either a named system
// sound or a sound file on disk.
type Sound struct {
	Name string
	Path string
}

// DefaultSound requests the platform default notification sound.
var DefaultSound = &Sound{Name: "default"}

// IsDefault reports whether s is the platform-default sentinel.
func (s *Sound) IsDefault() bool { return s.Name == DefaultSound.Name }

// Validate checks that exactly one variant is populated.
func (s *Sound) Validate() error {
	switch {
	case s.Name == "" && s.Path == "":
		return ErrEmptySound
	case s.Name != "" && s.Path != "":
		return ErrAmbiguousSound
	}
	return nil
}

// Attachment is a tagged reference to displayable media shown alongside the
// notification body.
type Attachment struct {
	Path string
	URI  string
}

// Validate checks that exactly one variant is populated.
func (a *Attachment) Validate() error {
	switch {
	case a.Path == "" && a.URI == "":
		return ErrEmptyAttach
	case a.Path != "" && a.URI != "":
		return ErrAmbiguousAttach
	}
	return nil
}

// Button is an action button rendered on the notification.
type Button struct {
	Label     string
	OnClicked func()
}

// ReplyField enables a free-text response on platforms that support it.
type ReplyField struct {
	// Title is the placeholder shown in the text field.
	Title string
	// ButtonLabel is the label of the submit button.
	ButtonLabel string
	// OnReplied receives the text entered by the user, verbatim.
	OnReplied func(text string)
}

// NoTimeout disables automatic dismissal; the notification stays until the
// user or the notification server removes it.
const NoTimeout = -1

// Notification describes a single notification request and, once scheduled,
// its resolved state.
//
// Identifier is assigned by the backend and is set if and only if the backend
// accepted the notification for display. Until then the value is
// indistinguishable from an unsent request.
type Notification struct {
	Identifier string

	Title   string
	Message string
	Urgency Urgency

	Icon       *Icon
	Buttons    []Button
	ReplyField *ReplyField
	Attachment *Attachment
	Sound      *Sound

	// Thread is an optional key grouping related notifications.
	Thread string
	// Timeout is the number of seconds before auto-dismissal; NoTimeout (-1)
	// leaves the display duration to the notification server.
	Timeout int

	OnClicked   func()
	OnDismissed func()

	// CreatedAt is stamped by the backend when the identifier is assigned.
	CreatedAt time.Time
}

// New constructs a Notification with the given title and message and
// defaults for everything else.
func New(title, message string) *Notification {
	return &Notification{
		Title:   title,
		Message: message,
		Urgency: UrgencyNormal,
		Timeout: NoTimeout,
	}
}

// Validate checks field combinations eagerly, before any backend is asked to
// schedule the notification.
func (n *Notification) Validate() error {
	if n.Title == "" {
		return ErrEmptyTitle
	}
	if _, ok := UrgencyNames[n.Urgency]; !ok {
		return ErrInvalidUrgency
	}
	if n.Timeout < NoTimeout {
		return ErrInvalidTimeout
	}
	for _, b := range n.Buttons {
		if b.Label == "" {
			return ErrEmptyButtonLabel
		}
	}
	if n.ReplyField != nil && n.ReplyField.OnReplied == nil {
		return ErrEmptyReplyCallback
	}
	if n.Icon != nil {
		if err := n.Icon.Validate(); err != nil {
			return err
		}
	}
	if n.Sound != nil {
		if err := n.Sound.Validate(); err != nil {
			return err
		}
	}
	if n.Attachment != nil {
		if err := n.Attachment.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Scheduled reports whether a backend has accepted the notification.
func (n *Notification) Scheduled() bool {
	return n.Identifier != ""
}
