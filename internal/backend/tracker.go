package backend

import (
	"sync"
	"time"

	"github.com/jmylchreest/desknotify/internal/model"
)

// Tracker keeps the per-backend record of notifications that are currently
// scheduled. It is the shared implementation of CurrentNotifications and of
// the optional notification limit: when the limit is exceeded the
// oldest-scheduled notification is evicted first.
//
// The tracker only does bookkeeping. Natively retracting an evicted
// notification is the owning backend's job, which is why Add and Clear return
// the affected entries.
type Tracker struct {
	mu    sync.Mutex
	limit int
	order []*model.Notification
	byID  map[string]*model.Notification
}

// NewTracker returns a Tracker bounding retained notifications to limit.
// A limit of 0 means unbounded.
func NewTracker(limit int) *Tracker {
	return &Tracker{
		limit: limit,
		byID:  make(map[string]*model.Notification),
	}
}

// Add records a scheduled notification under its identifier, stamping
// CreatedAt. It returns the notifications evicted to stay within the limit,
// oldest first.
func (t *Tracker) Add(n *model.Notification) []*model.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	// Re-sending under the same identifier replaces the previous entry.
	if _, ok := t.byID[n.Identifier]; ok {
		t.removeLocked(n.Identifier)
	}

	t.order = append(t.order, n)
	t.byID[n.Identifier] = n

	var evicted []*model.Notification
	if t.limit > 0 {
		for len(t.order) > t.limit {
			oldest := t.order[0]
			t.removeLocked(oldest.Identifier)
			evicted = append(evicted, oldest)
		}
	}
	return evicted
}

// Get returns the tracked notification with the given identifier, or nil.
func (t *Tracker) Get(identifier string) *model.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.byID[identifier]
}

// Remove forgets the notification with the given identifier and returns it,
// or nil if it was not tracked.
func (t *Tracker) Remove(identifier string) *model.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.byID[identifier]
	if n != nil {
		t.removeLocked(identifier)
	}
	return n
}

// Clear forgets every tracked notification and returns them, oldest first.
func (t *Tracker) Clear() []*model.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	cleared := t.order
	t.order = nil
	t.byID = make(map[string]*model.Notification)
	return cleared
}

// Snapshot returns the tracked notifications, oldest first.
func (t *Tracker) Snapshot() []*model.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*model.Notification, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of tracked notifications.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.order)
}

func (t *Tracker) removeLocked(identifier string) {
	delete(t.byID, identifier)
	for i, n := range t.order {
		if n.Identifier == identifier {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}
