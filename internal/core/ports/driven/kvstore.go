package driven

import "context"

// Well-known keys in the board key-value store. The shapes stored under
// these keys are part of the external schema and shared with other
// writers of the same store.
const (
	// KeyBoard holds the section sequence as JSON. Written as a bare
	// array; a legacy envelope form {"data":[...]} is accepted on read.
	KeyBoard = "notesApp"

	// KeyAutoSave holds the autosave toggle as a stringified boolean.
	KeyAutoSave = "autoSaveEnabled"
)

// KeyValueStore is durable string storage for board state.
// Backed by SQLite for on-disk persistence, or a map for tests.
type KeyValueStore interface {
	// Get retrieves the value for a key. The boolean reports whether the
	// key exists; a missing key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores or replaces the value for a key.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying storage.
	Close() error
}
