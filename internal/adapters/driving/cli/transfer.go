package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the board to a JSON file",
	Long:  `Writes the whole board as versioned JSON. With no file argument the JSON goes to stdout.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a board from a JSON file",
	Long: `Replaces the whole board from a previously exported file. Both the
versioned envelope and a bare section array are accepted. Malformed
input is rejected and the current board is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if transferService == nil {
		return errors.New("transfer service not configured")
	}

	ctx := cmd.Context()

	if len(args) == 0 {
		data, err := transferService.Export(ctx)
		if err != nil {
			return fmt.Errorf("failed to export board: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if err := transferService.ExportToFile(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to export board: %w", err)
	}
	cmd.Printf("Board exported to %s.\n", args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if transferService == nil {
		return errors.New("transfer service not configured")
	}

	if err := transferService.ImportFromFile(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrMalformedImport) {
			return fmt.Errorf("%s is not a valid board export", args[0])
		}
		return fmt.Errorf("failed to import board: %w", err)
	}

	cmd.Printf("Board imported from %s.\n", args[0])
	return nil
}
