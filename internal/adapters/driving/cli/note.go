package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pinwall-labs/pinwall-cli/internal/core/domain"
	"github.com/pinwall-labs/pinwall-cli/internal/core/shorthand"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  `Add, list, move, or remove the sticky notes inside a section.`,
}

var noteLsCmd = &cobra.Command{
	Use:   "ls [section-id]",
	Short: "List notes in a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteLs,
}

var noteAddCmd = &cobra.Command{
	Use:   "add [section-id]",
	Short: "Add a note to a section",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteAdd,
}

var noteRmCmd = &cobra.Command{
	Use:   "rm [section-id] [note-id]",
	Short: "Remove a note",
	Args:  cobra.ExactArgs(2),
	RunE:  runNoteRm,
}

var noteMvCmd = &cobra.Command{
	Use:   "mv [note-id] [section-id]",
	Short: "Move a note to another section",
	Long:  `Moves a note between sections. The move is atomic: on any failure the board is unchanged.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runNoteMv,
}

var notePlaceCmd = &cobra.Command{
	Use:   "place [note-id] [x] [y]",
	Short: "Move a note on its section's canvas",
	Args:  cobra.ExactArgs(3),
	RunE:  runNotePlace,
}

var noteResizeCmd = &cobra.Command{
	Use:   "resize [note-id] [width] [height]",
	Short: "Resize a note",
	Long:  `Resizes a note. Dimensions below the minimum note size are clamped up.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runNoteResize,
}

var noteStyleCmd = &cobra.Command{
	Use:   "style [note-id] [colour]",
	Short: "Set a note's colour",
	Long:  `Sets a note's colour to a #RGB or #RRGGBB value. Pass "none" to clear the styling.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runNoteStyle,
}

var noteReorderCmd = &cobra.Command{
	Use:   "reorder [note-id] [position]",
	Short: "Move a note to a position within its section",
	Long:  `Splices a note to the given 1-based position, keeping the relative order of the others.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runNoteReorder,
}

// Flags for note add.
var (
	noteTitle   string
	noteContent string
	noteX       float64
	noteY       float64
	noteWidth   float64
	noteHeight  float64
)

// Flags for note mv. Separate from the add flags so a value set on one
// command never leaks into the other.
var (
	noteMvX float64
	noteMvY float64
)

func init() {
	noteAddCmd.Flags().StringVarP(&noteTitle, "title", "t", "", "Note title")
	noteAddCmd.Flags().StringVarP(&noteContent, "content", "c", "", "Note content")
	noteAddCmd.Flags().Float64Var(&noteX, "x", 0, "Canvas x position")
	noteAddCmd.Flags().Float64Var(&noteY, "y", 0, "Canvas y position")
	noteAddCmd.Flags().Float64Var(&noteWidth, "width", 0, "Note width")
	noteAddCmd.Flags().Float64Var(&noteHeight, "height", 0, "Note height")

	noteMvCmd.Flags().Float64Var(&noteMvX, "x", 0, "Canvas x position in the destination")
	noteMvCmd.Flags().Float64Var(&noteMvY, "y", 0, "Canvas y position in the destination")

	noteCmd.AddCommand(noteLsCmd)
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteRmCmd)
	noteCmd.AddCommand(noteMvCmd)
	noteCmd.AddCommand(notePlaceCmd)
	noteCmd.AddCommand(noteResizeCmd)
	noteCmd.AddCommand(noteStyleCmd)
	noteCmd.AddCommand(noteReorderCmd)
	rootCmd.AddCommand(noteCmd)
}

// parseCoord converts a command argument into a canvas coordinate or
// dimension.
func parseCoord(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", arg, domain.ErrInvalidInput)
	}
	return v, nil
}

func runNoteLs(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	sectionID, err := parseID(args[0])
	if err != nil {
		return err
	}

	sec, err := boardService.Section(sectionID)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if len(sec.Notes) == 0 {
		cmd.Printf("No notes in section %q.\n", sec.Title)
		return nil
	}

	cmd.Printf("Notes in section %q:\n\n", sec.Title)
	for i := range sec.Notes {
		n := &sec.Notes[i]
		cmd.Printf("  %d  %s\n", n.ID, n.Title)
		cmd.Printf("     at (%.0f, %.0f) size %.0fx%.0f\n", n.X, n.Y, n.Width, n.Height)
		if n.Content != "" {
			preview := shorthand.RenderText(shorthand.Parse(n.Content))
			for _, line := range strings.Split(preview, "\n") {
				cmd.Printf("     %s\n", line)
			}
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d notes\n", len(sec.Notes))
	return nil
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	sectionID, err := parseID(args[0])
	if err != nil {
		return err
	}

	note, err := boardService.CreateNote(sectionID, domain.Note{
		Title:   noteTitle,
		Content: noteContent,
		X:       noteX,
		Y:       noteY,
		Width:   noteWidth,
		Height:  noteHeight,
	})
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cmd.Printf("Note %d added to section %d.\n", note.ID, sectionID)
	return nil
}

func runNoteRm(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	sectionID, err := parseID(args[0])
	if err != nil {
		return err
	}
	noteID, err := parseID(args[1])
	if err != nil {
		return err
	}

	if err := boardService.DeleteNote(sectionID, noteID); err != nil {
		return fmt.Errorf("failed to remove note: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cmd.Printf("Note %d removed.\n", noteID)
	return nil
}

func runNoteMv(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	noteID, err := parseID(args[0])
	if err != nil {
		return err
	}
	toSectionID, err := parseID(args[1])
	if err != nil {
		return err
	}

	_, fromSectionID, err := boardService.FindNote(noteID)
	if err != nil {
		return fmt.Errorf("failed to move note: %w", err)
	}

	if err := boardService.MoveNote(noteID, fromSectionID, toSectionID, noteMvX, noteMvY); err != nil {
		return fmt.Errorf("failed to move note: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cmd.Printf("Note %d moved to section %d.\n", noteID, toSectionID)
	return nil
}

func runNotePlace(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	noteID, err := parseID(args[0])
	if err != nil {
		return err
	}
	x, err := parseCoord(args[1])
	if err != nil {
		return err
	}
	y, err := parseCoord(args[2])
	if err != nil {
		return err
	}

	_, sectionID, err := boardService.FindNote(noteID)
	if err != nil {
		return fmt.Errorf("failed to place note: %w", err)
	}
	if err := boardService.PlaceNote(sectionID, noteID, x, y); err != nil {
		return fmt.Errorf("failed to place note: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	// Report the clamped position, not the requested one.
	note, _, err := boardService.FindNote(noteID)
	if err != nil {
		return fmt.Errorf("failed to place note: %w", err)
	}
	cmd.Printf("Note %d placed at (%.0f, %.0f).\n", noteID, note.X, note.Y)
	return nil
}

func runNoteResize(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	noteID, err := parseID(args[0])
	if err != nil {
		return err
	}
	width, err := parseCoord(args[1])
	if err != nil {
		return err
	}
	height, err := parseCoord(args[2])
	if err != nil {
		return err
	}

	_, sectionID, err := boardService.FindNote(noteID)
	if err != nil {
		return fmt.Errorf("failed to resize note: %w", err)
	}
	if err := boardService.ResizeNote(sectionID, noteID, width, height); err != nil {
		return fmt.Errorf("failed to resize note: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	note, _, err := boardService.FindNote(noteID)
	if err != nil {
		return fmt.Errorf("failed to resize note: %w", err)
	}
	cmd.Printf("Note %d resized to %.0fx%.0f.\n", noteID, note.Width, note.Height)
	return nil
}

func runNoteStyle(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	noteID, err := parseID(args[0])
	if err != nil {
		return err
	}

	var style map[string]string
	if args[1] != "none" {
		if !domain.ValidHexColour(args[1]) {
			return fmt.Errorf("colour %q: %w", args[1], domain.ErrInvalidColour)
		}
		style = map[string]string{"color": args[1]}
	}

	_, sectionID, err := boardService.FindNote(noteID)
	if err != nil {
		return fmt.Errorf("failed to style note: %w", err)
	}
	if err := boardService.SetNoteStyle(sectionID, noteID, style); err != nil {
		return fmt.Errorf("failed to style note: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	if style == nil {
		cmd.Printf("Note %d styling cleared.\n", noteID)
	} else {
		cmd.Printf("Note %d recoloured to %s.\n", noteID, args[1])
	}
	return nil
}

func runNoteReorder(cmd *cobra.Command, args []string) error {
	if boardService == nil {
		return errors.New("board service not configured")
	}

	noteID, err := parseID(args[0])
	if err != nil {
		return err
	}
	position, err := parsePosition(args[1])
	if err != nil {
		return err
	}

	_, sectionID, err := boardService.FindNote(noteID)
	if err != nil {
		return fmt.Errorf("failed to reorder note: %w", err)
	}
	if err := boardService.ReorderNote(sectionID, noteID, position); err != nil {
		return fmt.Errorf("failed to reorder note: %w", err)
	}
	if err := boardService.Flush(cmd.Context()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	cmd.Printf("Note %d moved to position %s.\n", noteID, args[1])
	return nil
}
