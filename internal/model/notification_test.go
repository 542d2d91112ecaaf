package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n := New("Reminder", "Meeting in 5 minutes")
	assert.Equal(t, "Reminder", n.Title)
	assert.Equal(t, "Meeting in 5 minutes", n.Message)
	assert.Equal(t, UrgencyNormal, n.Urgency)
	assert.Equal(t, NoTimeout, n.Timeout)
	assert.False(t, n.Scheduled())
	require.NoError(t, n.Validate())
}

func TestNotification_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(n *Notification)
		wantErr error
	}{
		{
			name:    "valid defaults",
			mutate:  func(n *Notification) {},
			wantErr: nil,
		},
		{
			name:    "empty title",
			mutate:  func(n *Notification) { n.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "unknown urgency",
			mutate:  func(n *Notification) { n.Urgency = Urgency(7) },
			wantErr: ErrInvalidUrgency,
		},
		{
			name:    "timeout below -1",
			mutate:  func(n *Notification) { n.Timeout = -2 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "button without label",
			mutate:  func(n *Notification) { n.Buttons = []Button{{Label: ""}} },
			wantErr: ErrEmptyButtonLabel,
		},
		{
			name:    "reply field without callback",
			mutate:  func(n *Notification) { n.ReplyField = &ReplyField{Title: "Reply"} },
			wantErr: ErrEmptyReplyCallback,
		},
		{
			name:    "icon with two variants",
			mutate:  func(n *Notification) { n.Icon = &Icon{Name: "mail", Path: "/tmp/mail.png"} },
			wantErr: ErrAmbiguousIcon,
		},
		{
			name:    "empty icon",
			mutate:  func(n *Notification) { n.Icon = &Icon{} },
			wantErr: ErrEmptyIcon,
		},
		{
			name:    "sound with two variants",
			mutate:  func(n *Notification) { n.Sound = &Sound{Name: "bell", Path: "/tmp/bell.ogg"} },
			wantErr: ErrAmbiguousSound,
		},
		{
			name:    "attachment with two variants",
			mutate:  func(n *Notification) { n.Attachment = &Attachment{Path: "/tmp/a.png", URI: "file:///tmp/a.png"} },
			wantErr: ErrAmbiguousAttach,
		},
		{
			name: "fully populated",
			mutate: func(n *Notification) {
				n.Icon = IconFromName("mail-unread")
				n.Sound = DefaultSound
				n.Attachment = &Attachment{URI: "file:///tmp/a.png"}
				n.Buttons = []Button{{Label: "Open", OnClicked: func() {}}}
				n.ReplyField = &ReplyField{Title: "Reply", OnReplied: func(string) {}}
				n.Timeout = 10
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New("title", "message")
			tt.mutate(n)
			err := n.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUrgency_String(t *testing.T) {
	assert.Equal(t, "low", UrgencyLow.String())
	assert.Equal(t, "normal", UrgencyNormal.String())
	assert.Equal(t, "critical", UrgencyCritical.String())
	assert.Equal(t, "urgency(9)", Urgency(9).String())
}

func TestParseUrgency(t *testing.T) {
	u, err := ParseUrgency("critical")
	require.NoError(t, err)
	assert.Equal(t, UrgencyCritical, u)

	_, err = ParseUrgency("shouty")
	assert.ErrorIs(t, err, ErrInvalidUrgency)
}

func TestIcon_Variants(t *testing.T) {
	assert.Equal(t, "mail", IconFromName("mail").String())
	assert.Equal(t, "/tmp/i.png", IconFromPath("/tmp/i.png").String())
	assert.Equal(t, "file:///i.png", IconFromURI("file:///i.png").String())

	require.NoError(t, IconFromName("mail").Validate())
	assert.ErrorIs(t, (&Icon{}).Validate(), ErrEmptyIcon)
}

func TestSound_Default(t *testing.T) {
	assert.True(t, DefaultSound.IsDefault())
	assert.False(t, (&Sound{Name: "bell"}).IsDefault())
	require.NoError(t, DefaultSound.Validate())
	assert.ErrorIs(t, (&Sound{}).Validate(), ErrEmptySound)
}
