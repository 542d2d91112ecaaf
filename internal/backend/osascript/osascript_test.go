package osascript

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/desknotify/internal/backend"
	"github.com/jmylchreest/desknotify/internal/model"
)

func TestBuildScript(t *testing.T) {
	n := model.New("Reminder", "Meeting in 5 minutes")
	assert.Equal(t,
		`display notification "Meeting in 5 minutes" with title "Reminder"`,
		BuildScript(n))

	n.Thread = "meetings"
	n.Sound = model.DefaultSound
	assert.Equal(t,
		`display notification "Meeting in 5 minutes" with title "Reminder" subtitle "meetings" sound name "default"`,
		BuildScript(n))
}

func TestBuildScript_Quoting(t *testing.T) {
	n := model.New(`say "hi"`, `back\slash`)
	assert.Equal(t,
		`display notification "back\\slash" with title "say \"hi\""`,
		BuildScript(n))
}

func TestSend_RecordsOnSuccess(t *testing.T) {
	b := New("app", 0, nil, nil)
	var gotScript string
	b.run = func(_ context.Context, name string, args ...string) error {
		assert.Equal(t, "osascript", name)
		require.Len(t, args, 2)
		gotScript = args[1]
		return nil
	}

	n := model.New("Reminder", "Meeting in 5 minutes")
	require.NoError(t, b.Send(t.Context(), n))

	assert.True(t, n.Scheduled())
	assert.Contains(t, gotScript, `"Reminder"`)
	require.Len(t, b.CurrentNotifications(), 1)
}

func TestSend_FailureIsNotAnError(t *testing.T) {
	b := New("app", 0, nil, nil)
	b.run = func(context.Context, string, ...string) error {
		return errors.New("osascript: command not found")
	}

	n := model.New("t", "m")
	require.NoError(t, b.Send(t.Context(), n))
	assert.False(t, n.Scheduled())
	assert.Empty(t, b.CurrentNotifications())
}

func TestSend_CancelledContext(t *testing.T) {
	b := New("app", 0, nil, nil)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := b.Send(ctx, model.New("t", "m"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnvironmentFor(t *testing.T) {
	verifyOK := func(string) bool { return true }
	verifyFail := func(string) bool { return false }

	env := environmentFor("/Applications/Mail.app/Contents/MacOS/Mail", verifyOK)
	assert.True(t, env.IsBundle)
	assert.True(t, env.IsSignedBundle)

	env = environmentFor("/Applications/Mail.app/Contents/MacOS/Mail", verifyFail)
	assert.True(t, env.IsBundle)
	assert.False(t, env.IsSignedBundle)

	env = environmentFor("/usr/local/bin/tool", verifyOK)
	assert.Equal(t, backend.Environment{}, env)
}

func TestCapabilities_DisplayOnly(t *testing.T) {
	b := New("app", 0, nil, nil)
	caps, err := b.Capabilities(t.Context())
	require.NoError(t, err)
	assert.Contains(t, caps, model.CapabilityTitle)
	assert.Contains(t, caps, model.CapabilitySound)
	assert.NotContains(t, caps, model.CapabilityButtons)
	assert.NotContains(t, caps, model.CapabilityOnClicked)
}
