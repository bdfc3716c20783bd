package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Manage board sections",
	Long:  `List, add, rename, or remove the sections that group your notes.`,
}

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sections",
	Args:  cobra.NoArgs,
	RunE:  runSectionList,
}

var sectionAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new section",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionAdd,
}

var sectionRenameCmd = &cobra.Command{
	Use:   "rename [section-id] [title]",
	Short: "Rename a section",
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionRename,
}

var sectionRmCmd = &cobra.Command{
	Use:   "rm [section-id]",
	Short: "Remove a section and all its notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionRm,
}

var sectionMvCmd = &cobra.Command{
	Use:   "mv [section-id] [position]",
	Short: "Move a section to a position in the tab order",
	Long:  `Splices a section to the given 1-based position, keeping the relative order of the others.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runSectionMv,
}

// sectionAddID carries the optional explicit ID for section add.
var sectionAddID int64

func init() {
	sectionAddCmd.Flags().Int64Var(&sectionAddID, "id", 0, "Explicit section ID (0 assigns the next free one)")

	sectionCmd.AddCommand(sectionListCmd)
	sectionCmd.AddCommand(sectionAddCmd)
	sectionCmd.AddCommand(sectionRenameCmd)
	sectionCmd.AddCommand(sectionRmCmd)
	sectionCmd.AddCommand(sectionMvCmd)
	rootCmd.AddCommand(sectionCmd)
}

// parseID converts a command argument into an entity ID.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, domain.ErrInvalidInput)
	}
	return id, nil
}

// parsePosition converts a 1-based position argument into a zero-based
// index.
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: %w", arg, domain.ErrInvalidInput)
	}
	return n - 1, nil
}

func runSectionList(cmd *cobra.Command, _ []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	sections := boardService.Sections()
	active := boardService.ActiveSection()

	for _, sec := range sections {
		marker := " "
		if sec.ID == active {
			marker = "*"
		}
		cmd.Printf("%s %d  %s (%d notes)\n", marker, sec.ID, sec.Title, len(sec.Notes))
	}
	cmd.Printf("Total: %d sections\n", len(sections))
	return nil
}

func runSectionAdd(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	var (
		sec *domain.Section
		err error
	)
	if sectionAddID != 0 {
		sec, err = boardService.CreateSectionWithID(sectionAddID, args[0])
	} else {
		sec, err = boardService.CreateSection(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cmd.Printf("Section %d %q added.\n", sec.ID, sec.Title)
	return nil
}

func runSectionRename(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := boardService.RenameSection(id, args[1]); err != nil {
		return fmt.Errorf("failed to rename section: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cmd.Printf("Section %d renamed to %q.\n", id, args[1])
	return nil
}

func runSectionRm(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := boardService.DeleteSection(id); err != nil {
		if errors.Is(err, domain.ErrLastSection) {
			return errors.New("cannot remove the last remaining section")
		}
		return fmt.Errorf("failed to remove section: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cmd.Printf("Section %d removed.\n", id)
	return nil
}

func runSectionMv(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	position, err := parsePosition(args[1])
	if err != nil {
		return err
	}

	if err := boardService.ReorderSection(id, position); err != nil {
		return fmt.Errorf("failed to move section: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cmd.Printf("Section %d moved to position %s.\n", id, args[1])
	return nil
}
