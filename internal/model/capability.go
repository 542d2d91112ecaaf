package model

// Capability names an optional notification feature. Support must be queried
// from the backend before use, never assumed.
type Capability string

const (
	CapabilityAppName     Capability = "app-name"
	CapabilityTitle       Capability = "title"
	CapabilityMessage     Capability = "message"
	CapabilityUrgency     Capability = "urgency"
	CapabilityIcon        Capability = "icon"
	CapabilityButtons     Capability = "buttons"
	CapabilityReplyField  Capability = "reply-field"
	CapabilityAttachment  Capability = "attachment"
	CapabilitySound       Capability = "sound"
	CapabilityThread      Capability = "thread"
	CapabilityTimeout     Capability = "timeout"
	CapabilityOnClicked   Capability = "on-clicked"
	CapabilityOnDismissed Capability = "on-dismissed"
)

// AllCapabilities enumerates every optional feature, in display order.
var AllCapabilities = []Capability{
	CapabilityAppName,
	CapabilityTitle,
	CapabilityMessage,
	CapabilityUrgency,
	CapabilityIcon,
	CapabilityButtons,
	CapabilityReplyField,
	CapabilityAttachment,
	CapabilitySound,
	CapabilityThread,
	CapabilityTimeout,
	CapabilityOnClicked,
	CapabilityOnDismissed,
}
