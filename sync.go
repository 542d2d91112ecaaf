package desknotify

import "context"

// Blocking variants of the asynchronous API, for callers without their own
// concurrency context. Each call runs on the Notifier's private goroutine and
// blocks until it completes. Calling any of these from inside a notification
// callback returns ErrReentrantCall: callbacks already run on that goroutine
// and blocking on it again would deadlock.

// SendSync is the blocking variant of Send.
func (nf *Notifier) SendSync(title, message string, opts ...SendOption) (*Notification, error) {
	var (
		n   *Notification
		err error
	)
	if derr := nf.loop.Do(func() {
		n, err = nf.Send(context.Background(), title, message, opts...)
	}); derr != nil {
		return nil, derr
	}
	return n, err
}

// SendNotificationSync is the blocking variant of SendNotification.
func (nf *Notifier) SendNotificationSync(n *Notification) (*Notification, error) {
	var err error
	if derr := nf.loop.Do(func() {
		n, err = nf.SendNotification(context.Background(), n)
	}); derr != nil {
		return nil, derr
	}
	return n, err
}

// RequestAuthorisationSync is the blocking variant of RequestAuthorisation.
func (nf *Notifier) RequestAuthorisationSync() (bool, error) {
	var (
		granted bool
		err     error
	)
	if derr := nf.loop.Do(func() {
		granted, err = nf.RequestAuthorisation(context.Background())
	}); derr != nil {
		return false, derr
	}
	return granted, err
}

// HasAuthorisationSync is the blocking variant of HasAuthorisation.
func (nf *Notifier) HasAuthorisationSync() (bool, error) {
	var (
		granted bool
		err     error
	)
	if derr := nf.loop.Do(func() {
		granted, err = nf.HasAuthorisation(context.Background())
	}); derr != nil {
		return false, derr
	}
	return granted, err
}

// CapabilitiesSync is the blocking variant of Capabilities.
func (nf *Notifier) CapabilitiesSync() ([]Capability, error) {
	var (
		caps []Capability
		err  error
	)
	if derr := nf.loop.Do(func() {
		caps, err = nf.Capabilities(context.Background())
	}); derr != nil {
		return nil, derr
	}
	return caps, err
}

// ClearSync is the blocking variant of Clear.
func (nf *Notifier) ClearSync(n *Notification) error {
	var err error
	if derr := nf.loop.Do(func() {
		err = nf.Clear(context.Background(), n)
	}); derr != nil {
		return derr
	}
	return err
}

// ClearAllSync is the blocking variant of ClearAll.
func (nf *Notifier) ClearAllSync() error {
	var err error
	if derr := nf.loop.Do(func() {
		err = nf.ClearAll(context.Background())
	}); derr != nil {
		return derr
	}
	return err
}
