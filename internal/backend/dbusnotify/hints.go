package dbusnotify

import (
	"strconv"

	"github.com/godbus/dbus/v5"

	"github.com/jmylchreest/desknotify/internal/model"
)

// defaultSoundName is the freedesktop sound-naming-spec event played when the
// caller asked for the platform default sound.
const defaultSoundName = "message-new-instant"

// buildActions assembles the freedesktop action list: alternating key/label
// pairs. Buttons are keyed by their index; a click on the notification body
// uses the reserved "default" key.
func buildActions(n *model.Notification) []string {
	var actions []string
	if n.OnClicked != nil {
		actions = append(actions, defaultActionKey, n.Title)
	}
	for i, b := range n.Buttons {
		actions = append(actions, strconv.Itoa(i), b.Label)
	}
	return actions
}

// buildHints assembles the hint dictionary for a Notify call.
func buildHints(n *model.Notification) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyByte(n.Urgency)),
	}
	if n.Sound != nil {
		switch {
		case n.Sound.IsDefault():
			hints["sound-name"] = dbus.MakeVariant(defaultSoundName)
		case n.Sound.Name != "":
			hints["sound-name"] = dbus.MakeVariant(n.Sound.Name)
		default:
			hints["sound-file"] = dbus.MakeVariant(n.Sound.Path)
		}
	}
	if n.Attachment != nil {
		if n.Attachment.Path != "" {
			hints["image-path"] = dbus.MakeVariant(n.Attachment.Path)
		} else {
			hints["image-path"] = dbus.MakeVariant(n.Attachment.URI)
		}
	}
	return hints
}

// urgencyByte maps the urgency level onto the freedesktop urgency hint byte.
func urgencyByte(u model.Urgency) byte {
	switch u {
	case model.UrgencyLow:
		return 0
	case model.UrgencyCritical:
		return 2
	default:
		return 1
	}
}

// appIcon renders the icon reference for the app_icon argument. The server
// accepts a theme name, an absolute path, or a URI in the same slot.
func appIcon(icon *model.Icon) string {
	if icon == nil {
		return ""
	}
	return icon.String()
}

// expireTimeout converts a timeout in seconds to the wire format in
// milliseconds, preserving -1 as "server default".
func expireTimeout(seconds int) int32 {
	if seconds < 0 {
		return -1
	}
	return int32(seconds) * 1000
}
