// Package bridge provides the private execution context that lets
// synchronous callers drive the asynchronous notification API. Each Loop owns
// exactly one goroutine; it is created with its Notifier and never shared
// with caller-owned concurrency, so blocking on it cannot deadlock or
// re-enter an event loop the caller controls.
package bridge

import (
	"bytes"
	"errors"
	"runtime"
	"strconv"
	"sync"
)

// ErrReentrantCall is returned when a blocking call is made from the loop's
// own goroutine, which would otherwise deadlock. This happens when a
// notification callback, which runs on the loop, calls a *Sync method.
var ErrReentrantCall = errors.New("bridge: blocking call from the loop's own goroutine")

// ErrClosed is returned when the loop has been shut down.
var ErrClosed = errors.New("bridge: loop is closed")

const queueSize = 64

// Loop is a single-goroutine serialized executor.
type Loop struct {
	tasks  chan func()
	done   chan struct{}
	exited chan struct{}
	gid    uint64

	started   sync.WaitGroup
	closeOnce sync.Once
}

// New creates the loop and starts its goroutine.
func New() *Loop {
	l := &Loop{
		tasks:  make(chan func(), queueSize),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	l.started.Add(1)
	go l.run()
	l.started.Wait()
	return l
}

func (l *Loop) run() {
	defer close(l.exited)
	l.gid = goroutineID()
	l.started.Done()
	for {
		select {
		case task := <-l.tasks:
			task()
		case <-l.done:
			// Drain what was already queued so blocked Do callers are
			// released before shutdown completes.
			for {
				select {
				case task := <-l.tasks:
					task()
				default:
					return
				}
			}
		}
	}
}

// Submit enqueues a task without waiting for it. It never blocks the caller:
// if the queue is full the hand-off finishes from a transient goroutine.
// Tasks submitted after Close may be dropped.
func (l *Loop) Submit(task func()) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.tasks <- task:
	default:
		go func() {
			select {
			case l.tasks <- task:
			case <-l.done:
			}
		}()
	}
}

// Do runs the task on the loop goroutine and blocks until it completes.
// Calling Do from the loop goroutine itself returns ErrReentrantCall rather
// than deadlocking.
func (l *Loop) Do(task func()) error {
	if l.InLoop() {
		return ErrReentrantCall
	}
	select {
	case <-l.done:
		return ErrClosed
	default:
	}

	doneTask := make(chan struct{})
	wrapped := func() {
		defer close(doneTask)
		task()
	}
	select {
	case l.tasks <- wrapped:
	case <-l.exited:
		return ErrClosed
	}

	select {
	case <-doneTask:
		return nil
	case <-l.exited:
		// The loop drains queued tasks before exiting; if ours is still
		// pending it was enqueued after the drain and will never run.
		select {
		case <-doneTask:
			return nil
		default:
			return ErrClosed
		}
	}
}

// InLoop reports whether the caller is running on the loop goroutine.
func (l *Loop) InLoop() bool {
	return goroutineID() == l.gid
}

// Close stops the loop after draining already-queued tasks. It is safe to
// call more than once.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}

// goroutineID extracts the numeric id from the first line of the current
// goroutine's stack ("goroutine 123 [running]:"). The runtime offers no
// public accessor; this parse is the established workaround and is only used
// to turn a guaranteed deadlock into an error.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
