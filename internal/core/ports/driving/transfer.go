package driving

import "context"

// TransferService moves whole boards in and out of the application as
// JSON files. Export wraps the section sequence in a versioned envelope;
// import accepts the envelope or a bare section array (older export
// shape) and replaces the board all-or-nothing.
type TransferService interface {
	// Export serialises the board into the versioned envelope.
	Export(ctx context.Context) ([]byte, error)

	// ExportToFile writes the envelope to a file.
	ExportToFile(ctx context.Context, path string) error

	// Import replaces the board from an exported payload. Malformed
	// input fails with domain.ErrMalformedImport and leaves the current
	// board untouched.
	Import(ctx context.Context, data []byte) error

	// ImportFromFile reads and imports a previously exported file.
	ImportFromFile(ctx context.Context, path string) error
}
