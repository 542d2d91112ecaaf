// Package desknotify sends desktop notifications through one API across
// Linux, Windows, and macOS.
//
// A Notifier owns exactly one platform backend, chosen once at construction
// from the operating system, its version, and the packaging context. When the
// native mechanism is unavailable (unsupported OS version, unsigned macOS
// bundle, unknown platform) the Notifier degrades to an inert fallback that
// keeps the API usable without performing native I/O.
//
// Scheduling is best-effort: Send always returns the Notification, with its
// Identifier set when a backend accepted it and empty otherwise. Ordinary
// non-delivery (permission denied, no notification server, display
// suppressed) is never reported as an error.
//
// Interaction callbacks (OnClicked, OnDismissed, button and reply callbacks)
// are invoked asynchronously on a private goroutine owned by the Notifier, at
// a time under the operating system's control. The *Sync method variants
// block on that same private goroutine; calling one from inside a callback
// returns ErrReentrantCall instead of deadlocking.
package desknotify
