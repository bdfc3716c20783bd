package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the colour theme",
	Long:  `Show, change, export, or import the colour theme used by the interactive UI.`,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [name] [hex]",
	Short: "Override a theme colour variable",
	Args:  cobra.ExactArgs(2),
	RunE:  runThemeSet,
}

var themeCustomCmd = &cobra.Command{
	Use:   "custom [slot] [hex]",
	Short: "Assign a custom colour slot (1-4)",
	Args:  cobra.ExactArgs(2),
	RunE:  runThemeCustom,
}

var themeExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the theme to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemeExport,
}

var themeImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a theme from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeImport,
}

func init() {
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeCustomCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeImportCmd)
	rootCmd.AddCommand(themeCmd)
}

func runThemeShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	t := settingsService.Theme()

	names := make([]string, 0, len(t.Colours))
	for name := range t.Colours {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Println("Theme colours:")
	for _, name := range names {
		cmd.Printf("  %-12s %s\n", name, t.Colours[name])
	}
	cmd.Println("\nCustom colours:")
	for i, hex := range t.CustomColours {
		cmd.Printf("  %d  %s\n", i+1, hex)
	}
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetThemeColour(args[0], args[1]); err != nil {
		if errors.Is(err, domain.ErrInvalidColour) {
			return fmt.Errorf("%q is not a #RGB or #RRGGBB colour", args[1])
		}
		return fmt.Errorf("failed to set theme colour: %w", err)
	}

	cmd.Printf("Theme colour %s set to %s.\n", args[0], args[1])
	return nil
}

func runThemeCustom(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	slot, err := strconv.Atoi(args[0])
	if err != nil || slot < 1 || slot > domain.CustomColourSlots {
		return fmt.Errorf("custom colour slot must be 1-%d", domain.CustomColourSlots)
	}

	if err := settingsService.SetCustomColour(slot-1, args[1]); err != nil {
		if errors.Is(err, domain.ErrInvalidColour) {
			return fmt.Errorf("%q is not a #RGB or #RRGGBB colour", args[1])
		}
		return fmt.Errorf("failed to set custom colour: %w", err)
	}

	cmd.Printf("Custom colour %d set to %s.\n", slot, args[1])
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	data, err := settingsService.ExportTheme()
	if err != nil {
		return fmt.Errorf("failed to export theme: %w", err)
	}

	if len(args) == 0 {
		cmd.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], data, 0600); err != nil {
		return fmt.Errorf("failed to export theme: %w", err)
	}
	cmd.Printf("Theme exported to %s.\n", args[0])
	return nil
}

func runThemeImport(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to import theme: %w", err)
	}

	if err := settingsService.ImportTheme(data); err != nil {
		if errors.Is(err, domain.ErrInvalidColour) || errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%s is not a valid theme file", args[0])
		}
		return fmt.Errorf("failed to import theme: %w", err)
	}

	cmd.Printf("Theme imported from %s.\n", args[0])
	return nil
}
