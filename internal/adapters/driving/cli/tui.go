package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driven/storage/watcher"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui"
	"github.com/pinwall-labs/pinwall-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Pinwall.

The TUI shows your sections as tabs with the notes of the active
section, an editor with list shorthand, and a status bar with transient
notices.

Controls:
  tab/shift+tab - Switch section
  ↑/k, ↓/j      - Navigate notes
  Enter         - Edit note
  n             - New note
  ?             - Toggle help
  q             - Quit`,
	RunE: runTUI,
}

// watchDir reports where the board store lives, so the watcher can
// observe it. Set during service wiring; nil in tests.
var watchDir func() string

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if boardService == nil || settingsService == nil {
		return errors.New("services not configured")
	}

	// Panic recovery keeps a stack trace visible after the alt screen
	// is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Board:    boardService,
		Transfer: transferService,
		Settings: settingsService,
	}

	// Watch the data directory so edits from another process show up.
	// The TUI runs without the watcher if it cannot start.
	if watchDir != nil {
		if w, err := watcher.New(watchDir(), watcher.DefaultDebounce); err == nil {
			watchCtx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				if err := w.Start(watchCtx); err != nil {
					logger.Warn("store watcher stopped: %v", err)
				}
			}()
			defer func() {
				if err := w.Close(); err != nil {
					logger.Warn("closing store watcher: %v", err)
				}
			}()
			ports.Watcher = w
		} else {
			logger.Warn("store watcher unavailable: %v", err)
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
