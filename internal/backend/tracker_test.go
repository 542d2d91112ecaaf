package backend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/desknotify/internal/model"
)

func tracked(id string) *model.Notification {
	n := model.New("title "+id, "message")
	n.Identifier = id
	return n
}

func TestTracker_Add(t *testing.T) {
	tr := NewTracker(0)

	evicted := tr.Add(tracked("1"))
	assert.Empty(t, evicted)
	assert.Equal(t, 1, tr.Len())
	assert.NotZero(t, tr.Get("1").CreatedAt)
}

func TestTracker_AddEvictsOldestFirst(t *testing.T) {
	tr := NewTracker(2)

	require.Empty(t, tr.Add(tracked("1")))
	require.Empty(t, tr.Add(tracked("2")))

	evicted := tr.Add(tracked("3"))
	require.Len(t, evicted, 1)
	assert.Equal(t, "1", evicted[0].Identifier)

	snapshot := tr.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "2", snapshot[0].Identifier)
	assert.Equal(t, "3", snapshot[1].Identifier)
}

func TestTracker_AddReplacesSameIdentifier(t *testing.T) {
	tr := NewTracker(0)
	tr.Add(tracked("1"))
	replacement := tracked("1")
	tr.Add(replacement)

	assert.Equal(t, 1, tr.Len())
	assert.Same(t, replacement, tr.Get("1"))
}

func TestTracker_Remove(t *testing.T) {
	tr := NewTracker(0)
	n := tracked("1")
	tr.Add(n)

	assert.Same(t, n, tr.Remove("1"))
	assert.Nil(t, tr.Remove("1"))
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_Clear(t *testing.T) {
	tr := NewTracker(0)
	for i := 0; i < 5; i++ {
		tr.Add(tracked(fmt.Sprintf("%d", i)))
	}

	cleared := tr.Clear()
	assert.Len(t, cleared, 5)
	assert.Equal(t, "0", cleared[0].Identifier)
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.Snapshot())
}

func TestTracker_SnapshotIsCopy(t *testing.T) {
	tr := NewTracker(0)
	tr.Add(tracked("1"))

	snapshot := tr.Snapshot()
	snapshot[0] = nil
	assert.NotNil(t, tr.Get("1"))
}
