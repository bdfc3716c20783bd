package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driving"
	"github.com/pinwall-labs/pinwall-cli/internal/logger"
)

// Ensure TransferService implements the interface.
var _ driving.TransferService = (*TransferService)(nil)

// ExportVersion is the format version written into export envelopes.
const ExportVersion = "1.0"

// Envelope is the versioned wrapper around an exported board.
type Envelope struct {
	Version    string           `json:"version"`
	ExportDate string           `json:"exportDate"`
	Data       []domain.Section `json:"data"`
}

// TransferService implements file-based export and import of whole
// boards.
type TransferService struct {
	board *BoardService
	now   func() time.Time
}

// NewTransferService creates a transfer service bound to a board.
func NewTransferService(board *BoardService) *TransferService {
	return &TransferService{board: board, now: time.Now}
}

// Export serialises the board into the versioned envelope.
func (s *TransferService) Export(_ context.Context) ([]byte, error) {
	env := Envelope{
		Version:    ExportVersion,
		ExportDate: s.now().UTC().Format(time.RFC3339),
		Data:       s.board.Sections(),
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return data, nil
}

// ExportToFile writes the envelope to a file.
func (s *TransferService) ExportToFile(ctx context.Context, path string) error {
	data, err := s.Export(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	logger.Info("board exported to %s", path)
	return nil
}

// Import replaces the board from an exported payload. Both the envelope
// and the bare section array (older export shape) are accepted.
// Malformed input leaves the current board untouched: decoding happens
// entirely before the wholesale replacement.
func (s *TransferService) Import(ctx context.Context, data []byte) error {
	sections, err := DecodeSections(data)
	if err != nil {
		return err
	}

	s.board.Replace(sections)
	if err := s.board.Save(ctx); err != nil {
		return err
	}
	logger.Info("board imported: %d sections", len(sections))
	return nil
}

// ImportFromFile reads and imports a previously exported file.
func (s *TransferService) ImportFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}
	return s.Import(ctx, data)
}
