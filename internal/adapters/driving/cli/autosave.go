package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var autosaveCmd = &cobra.Command{
	Use:   "autosave [on|off]",
	Short: "Show or change the autosave setting",
	Long: `With no argument, reports whether autosave is enabled. With "on" or
"off", changes the setting. When autosave is on, board changes are
persisted shortly after the last edit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAutosave,
}

func init() {
	rootCmd.AddCommand(autosaveCmd)
}

func runAutosave(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 0 {
		state := "off"
		if settingsService.AutoSaveEnabled() {
			state = "on"
		}
		cmd.Printf("Autosave is %s.\n", state)
		return nil
	}

	var enabled bool
	switch args[0] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return fmt.Errorf("expected \"on\" or \"off\", got %q", args[0])
	}

	if err := settingsService.SetAutoSaveEnabled(cmd.Context(), enabled); err != nil {
		return fmt.Errorf("failed to change autosave setting: %w", err)
	}

	cmd.Printf("Autosave turned %s.\n", args[0])
	return nil
}
