package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Section Command Tests

func TestSectionCmd_Use(t *testing.T) {
	assert.Equal(t, "section", sectionCmd.Use)
}

func TestSectionCmd_HasSubcommands(t *testing.T) {
	commands := sectionCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "add")
	assert.Contains(t, commandNames, "rename")
	assert.Contains(t, commandNames, "rm")
	assert.Contains(t, commandNames, "mv")
}

func TestSectionListCmd_ShowsDefaultSection(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "section", "list")

	assert.NoError(t, err)
	assert.Contains(t, out, "Section 1")
	assert.Contains(t, out, "Total: 1 sections")
	// The default section is the active one.
	assert.Contains(t, out, "* 1")
}

func TestSectionAddCmd_CreatesSection(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "section", "add", "Work")

	assert.NoError(t, err)
	assert.Contains(t, out, `Section 2 "Work" added.`)
	assert.Len(t, boardService.Sections(), 2)
}

func TestSectionAddCmd_ExplicitID(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() {
		sectionAddID = 0
	}()

	out, err := execute(t, "section", "add", "Imported", "--id", "40")

	assert.NoError(t, err)
	assert.Contains(t, out, `Section 40 "Imported" added.`)

	sec, err := boardService.Section(40)
	require.NoError(t, err)
	assert.Equal(t, "Imported", sec.Title)
}

func TestSectionAddCmd_ExplicitIDCollision(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() {
		sectionAddID = 0
	}()

	_, err := execute(t, "section", "add", "Dup", "--id", "1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add section")
	assert.Len(t, boardService.Sections(), 1)
}

func TestSectionMvCmd_ReordersTabs(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := boardService.CreateSection("Work")
	require.NoError(t, err)
	_, err = boardService.CreateSection("Home")
	require.NoError(t, err)

	out, err := execute(t, "section", "mv", "3", "1")

	assert.NoError(t, err)
	assert.Contains(t, out, "Section 3 moved to position 1.")

	sections := boardService.Sections()
	titles := make([]string, 0, len(sections))
	for _, sec := range sections {
		titles = append(titles, sec.Title)
	}
	assert.Equal(t, []string{"Home", "Section 1", "Work"}, titles)
}

func TestSectionMvCmd_RejectsBadPosition(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "section", "mv", "1", "zero")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid position")
}

func TestSectionAddCmd_RequiresTitle(t *testing.T) {
	_, err := execute(t, "section", "add")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSectionRenameCmd_RenamesSection(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "section", "rename", "1", "Inbox")

	assert.NoError(t, err)
	assert.Contains(t, out, `renamed to "Inbox"`)
	sec, err := boardService.Section(1)
	require.NoError(t, err)
	assert.Equal(t, "Inbox", sec.Title)
}

func TestSectionRenameCmd_RejectsBadID(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "section", "rename", "abc", "Inbox")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestSectionRmCmd_RemovesSection(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := boardService.CreateSection("Scratch")
	require.NoError(t, err)

	out, err := execute(t, "section", "rm", "2")

	assert.NoError(t, err)
	assert.Contains(t, out, "Section 2 removed.")
	assert.Len(t, boardService.Sections(), 1)
}

func TestSectionRmCmd_RefusesLastSection(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "section", "rm", "1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "last remaining section")
	assert.Len(t, boardService.Sections(), 1)
}

func TestSectionListCmd_ServiceNotConfigured(t *testing.T) {
	oldService := boardService
	boardService = nil
	defer func() {
		boardService = oldService
	}()

	_, err := execute(t, "section", "list")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "board service not configured")
}
