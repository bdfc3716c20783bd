package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/components/status"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/keymap"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/messages"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/styles"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/views/board"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/views/editor"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/views/rename"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles, built from the active theme.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// boardView shows the section tabs and the active section's notes.
	boardView *board.View

	// editorView edits a single note's content.
	editorView *editor.View

	// renameView prompts for section and note titles.
	renameView *rename.View

	// statusBar shows the section summary and transient notices.
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.NewStyles(ports.Settings.Theme())
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		boardView:   board.NewView(s, km, ports.Board),
		editorView:  editor.NewView(s, km, ports.Board),
		renameView:  rename.NewView(s),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewBoard,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("pinwall"),
		a.boardView.Init(),
	}
	if a.ports.Watcher != nil {
		cmds = append(cmds, a.awaitStoreChange())
	}
	a.statusBar.SetAutosave(a.ports.Settings.AutoSaveEnabled())
	a.syncStatusBar()
	return tea.Batch(cmds...)
}

// awaitStoreChange blocks on the watcher channel and converts a
// notification into a StoreChanged message. Re-armed after each one.
func (a *App) awaitStoreChange() tea.Cmd {
	changes := a.ports.Watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return messages.StoreChanged{}
	}
}

// syncStatusBar refreshes the left-hand section summary.
func (a *App) syncStatusBar() {
	title, count := a.boardView.ActiveTitle()
	a.statusBar.SetSection(title, count)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.boardView.SetDimensions(msg.Width, msg.Height)
		a.editorView.SetDimensions(msg.Width, msg.Height)
		a.renameView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.EditNote:
		if err := a.editorView.Open(msg.SectionID, msg.NoteID); err != nil {
			return a, a.statusBar.Post(fmt.Sprintf("could not open note: %v", err), messages.NoticeError)
		}
		a.currentView = messages.ViewEditor
		return a, a.editorView.Init()

	case messages.NoteSaved:
		if msg.Err != nil {
			return a, a.statusBar.Post(fmt.Sprintf("could not save note: %v", msg.Err), messages.NoticeError)
		}
		a.currentView = messages.ViewBoard
		a.boardView.Refresh()
		a.syncStatusBar()
		return a, a.statusBar.Post("note saved", messages.NoticeInfo)

	case messages.RenameRequested:
		a.renameView.Open(msg)
		a.currentView = messages.ViewRename
		return a, a.renameView.Init()

	case messages.RenameSubmitted:
		return a, a.applyRename(msg)

	case messages.NoticePosted:
		return a, a.statusBar.Post(msg.Text, msg.Level)

	case messages.NoticeExpired:
		a.statusBar.Expire(msg.Seq)
		return a, nil

	case messages.StoreChanged:
		return a, tea.Batch(a.reloadBoard(), a.awaitStoreChange())

	case messages.BoardReloaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, a.statusBar.Post(fmt.Sprintf("reload failed: %v", msg.Err), messages.NoticeError)
		}
		a.boardView.Refresh()
		a.syncStatusBar()
		return a, a.statusBar.Post("board reloaded from store", messages.NoticeInfo)

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view.
	switch a.currentView {
	case messages.ViewBoard:
		a.boardView, cmd = a.boardView.Update(msg)
	case messages.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
	case messages.ViewRename:
		a.renameView, cmd = a.renameView.Update(msg)
	case messages.ViewHelp:
		// Help view is static.
	}

	return a, cmd
}

// handleKey routes key presses.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	k := msg.String()

	// Global quit with ctrl+c.
	if k == "ctrl+c" {
		return a, a.quit()
	}

	switch a.currentView {
	case messages.ViewBoard:
		if keymap.Matches(k, a.keymap.Quit) {
			return a, a.quit()
		}
		if keymap.Matches(k, a.keymap.Help) {
			a.currentView = messages.ViewHelp
			return a, nil
		}
		a.boardView, cmd = a.boardView.Update(msg)
		a.syncStatusBar()
		return a, cmd

	case messages.ViewEditor:
		if keymap.Matches(k, a.keymap.Back) {
			// Esc commits; unsaved work is never silently dropped.
			a.editorView, cmd = a.editorView.Update(saveKey())
			return a, cmd
		}
		a.editorView, cmd = a.editorView.Update(msg)
		return a, cmd

	case messages.ViewRename:
		if keymap.Matches(k, a.keymap.Back) {
			a.currentView = messages.ViewBoard
			return a, nil
		}
		a.renameView, cmd = a.renameView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) {
			a.currentView = messages.ViewBoard
			return a, nil
		}
		if keymap.Matches(k, a.keymap.Quit) {
			return a, a.quit()
		}
	}

	return a, nil
}

// saveKey synthesises the save keybinding for the editor.
func saveKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyCtrlS}
}

// quit flushes pending work before exiting.
func (a *App) quit() tea.Cmd {
	if err := a.ports.Board.Flush(a.ctx); err != nil {
		return tea.Sequence(
			a.statusBar.Post(fmt.Sprintf("save failed: %v", err), messages.NoticeError),
			tea.Quit,
		)
	}
	return tea.Quit
}

// applyRename commits a submitted title. Empty titles are a silent
// no-op, matching the rename semantics of the board service.
func (a *App) applyRename(msg messages.RenameSubmitted) tea.Cmd {
	a.currentView = messages.ViewBoard

	var err error
	if msg.NoteID != 0 {
		err = a.ports.Board.SetNoteTitle(msg.SectionID, msg.NoteID, msg.Title)
	} else {
		err = a.ports.Board.RenameSection(msg.SectionID, msg.Title)
	}
	if err != nil {
		return a.statusBar.Post(fmt.Sprintf("rename failed: %v", err), messages.NoticeError)
	}

	a.boardView.Refresh()
	a.syncStatusBar()
	return nil
}

// reloadBoard re-reads the store after an external change.
func (a *App) reloadBoard() tea.Cmd {
	ctx := a.ctx
	load := a.ports.Board.Load
	return func() tea.Msg {
		return messages.BoardReloaded{Err: load(ctx)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewBoard:
		body = a.boardView.View()
	case messages.ViewEditor:
		body = a.editorView.View()
	case messages.ViewRename:
		body = a.renameView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.boardView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Board:
  tab/shift+tab  Switch section
  j/k, ↑/↓       Navigate notes
  enter          Edit note
  n              New note
  d              Delete note
  N              New section
  r              Rename section
  D              Delete section

Editor:
  ctrl+s         Save
  ctrl+t         Toggle the checkbox under the cursor
  ctrl+space     Mark an extra cursor
  ctrl+b         Wrap marked selections in backticks
  ctrl+z         Undo multi-cursor edit
  esc            Save and go back

Shorthand (start of line):
  * text         Bullet item
  1. text        Numbered item
  > text         Checkbox item
  > [x] text     Checked checkbox item

[esc] back to board`
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.boardView.SetDimensions(width, height)
	a.editorView.SetDimensions(width, height)
	a.renameView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
