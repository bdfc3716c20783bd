// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/config/file"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/storage/sqlite"
	"github.com/pinwall-labs/pinwall-cli/internal/core/ports/driving"
	"github.com/pinwall-labs/pinwall-cli/internal/core/services"
	"github.com/pinwall-labs/pinwall-cli/internal/logger"
)

// Persistent flag values.
var (
	verbose   bool
	configDir string
	dataDir   string
)

// Services used by the commands. Set by wireServices in normal operation
// and by tests directly.
var (
	boardService    driving.BoardService
	transferService driving.TransferService
	settingsService driving.SettingsService
)

// wireOnStart makes PersistentPreRunE build the real services. Tests
// leave it false and install their own services.
var wireOnStart bool

// teardown closes resources opened by wireServices.
var teardown func()

var rootCmd = &cobra.Command{
	Use:   "pinwall",
	Short: "Sticky-note workspace in the terminal",
	Long: `Pinwall keeps boards of sticky notes organised into sections.

Notes live on a positional canvas per section, support list shorthand
(bullets, numbered items, checkboxes) and survive restarts via a local
store. Run without arguments for the interactive UI, or use the
subcommands for scripted access.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if wireOnStart && boardService == nil {
			return wireServices(cmd)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation drops into the TUI.
		return runTUI(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.pinwall)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default ~/.pinwall/data)")
}

// wireServices builds the production service graph: TOML config store,
// SQLite-backed board store, and the services on top of them. The board
// is loaded so every command starts from the persisted state.
func wireServices(cmd *cobra.Command) error {
	config, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	dir := dataDir
	if dir == "" {
		dir = config.GetString("storage.data_dir")
	}
	store, err := sqlite.NewStore(dir)
	if err != nil {
		return fmt.Errorf("opening board store: %w", err)
	}
	teardown = func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing board store: %v", err)
		}
	}

	board := services.NewBoardService(store)
	settings := services.NewSettingsService(config, store, board)
	settings.ApplyToBoard()

	if err := board.Load(cmd.Context()); err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	boardService = board
	transferService = services.NewTransferService(board)
	settingsService = settings
	watchDir = func() string { return filepath.Dir(store.Path()) }

	logger.Debug("services wired (config %s, store %s)", config.Path(), store.Path())
	return nil
}

// Execute runs the CLI with the real service graph.
func Execute() error {
	wireOnStart = true
	defer func() {
		if teardown != nil {
			teardown()
		}
	}()
	return rootCmd.Execute()
}
