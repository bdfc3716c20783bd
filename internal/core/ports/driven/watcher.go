package driven

import "context"

// ChangeWatcher observes the board store for writes made by another
// process sharing the same data directory. Notifications are debounced
// by the implementation: they fire shortly after the other writer goes
// quiet, so a reload sees a complete write. The store is
// last-writer-wins; the watcher exists for freshness, not for conflict
// resolution.
type ChangeWatcher interface {
	// Start begins watching until the context is cancelled.
	Start(ctx context.Context) error

	// Changes returns the notification channel. One value is delivered
	// per debounced burst of external writes.
	Changes() <-chan struct{}

	// Close stops watching and releases resources.
	Close() error
}
