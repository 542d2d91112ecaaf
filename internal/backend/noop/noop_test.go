package noop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/desknotify/internal/model"
)

func TestSend_AssignsIdentifier(t *testing.T) {
	b := New("app", 0, nil, nil)

	n := model.New("Reminder", "Meeting in 5 minutes")
	require.NoError(t, b.Send(t.Context(), n))

	assert.True(t, n.Scheduled())
	assert.NotZero(t, n.CreatedAt)

	current := b.CurrentNotifications()
	require.Len(t, current, 1)
	assert.Equal(t, n.Identifier, current[0].Identifier)
}

func TestSend_LimitEvictsOldest(t *testing.T) {
	b := New("app", 2, nil, nil)

	first := model.New("first", "m")
	second := model.New("second", "m")
	third := model.New("third", "m")
	for _, n := range []*model.Notification{first, second, third} {
		require.NoError(t, b.Send(t.Context(), n))
	}

	current := b.CurrentNotifications()
	require.Len(t, current, 2)
	assert.Equal(t, second.Identifier, current[0].Identifier)
	assert.Equal(t, third.Identifier, current[1].Identifier)
}

func TestClear(t *testing.T) {
	b := New("app", 0, nil, nil)

	n := model.New("t", "m")
	require.NoError(t, b.Send(t.Context(), n))
	require.NoError(t, b.Clear(t.Context(), n))
	assert.Empty(t, b.CurrentNotifications())

	// Clearing again, or clearing something never sent, is a no-op.
	require.NoError(t, b.Clear(t.Context(), n))
	require.NoError(t, b.Clear(t.Context(), model.New("x", "y")))
	require.NoError(t, b.Clear(t.Context(), nil))
}

func TestClearAll(t *testing.T) {
	b := New("app", 0, nil, nil)
	for i := 0; i < 3; i++ {
		require.NoError(t, b.Send(t.Context(), model.New("t", "m")))
	}
	require.NoError(t, b.ClearAll(t.Context()))
	assert.Empty(t, b.CurrentNotifications())
}

func TestCapabilities_Full(t *testing.T) {
	b := New("app", 0, nil, nil)
	caps, err := b.Capabilities(t.Context())
	require.NoError(t, err)
	assert.ElementsMatch(t, model.AllCapabilities, caps)
}

func TestAuthorisation(t *testing.T) {
	b := New("app", 0, nil, nil)
	granted, err := b.RequestAuthorisation(t.Context())
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = b.HasAuthorisation(t.Context())
	require.NoError(t, err)
	assert.True(t, granted)
}
