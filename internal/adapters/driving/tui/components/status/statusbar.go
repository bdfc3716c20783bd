// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/keymap"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/messages"
	"github.com/pinwall-labs/pinwall-cli/internal/adapters/driving/tui/styles"
)

// NoticeDuration is how long a transient notice stays visible.
const NoticeDuration = 3 * time.Second

// Bar displays the active section, transient notices, and keybinding
// hints.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	sectionTitle string
	noteCount    int
	autosave     bool

	notice      string
	noticeLevel messages.NoticeLevel
	noticeSeq   int

	width int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		autosave: true,
		width:    80,
	}
}

// Post shows a transient notice and returns the command that dismisses
// it after NoticeDuration. A newer notice supersedes a pending one; the
// sequence number keeps a stale expiry from clearing it early.
func (s *Bar) Post(text string, level messages.NoticeLevel) tea.Cmd {
	s.notice = text
	s.noticeLevel = level
	s.noticeSeq++

	seq := s.noticeSeq
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return messages.NoticeExpired{Seq: seq}
	})
}

// Expire clears the notice if it is the one the expiry was armed for.
func (s *Bar) Expire(seq int) {
	if seq == s.noticeSeq {
		s.notice = ""
	}
}

// Notice returns the currently visible notice text.
func (s *Bar) Notice() string {
	return s.notice
}

// SetSection sets the active section summary shown on the left.
func (s *Bar) SetSection(title string, noteCount int) {
	s.sectionTitle = title
	s.noteCount = noteCount
}

// SetAutosave sets the autosave indicator.
func (s *Bar) SetAutosave(enabled bool) {
	s.autosave = enabled
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the notice when one is visible, otherwise the
// section summary.
func (s *Bar) renderLeft() string {
	if s.notice != "" {
		switch s.noticeLevel {
		case messages.NoticeWarn:
			return s.styles.Warning.Render(s.notice)
		case messages.NoticeError:
			return s.styles.Error.Render(s.notice)
		case messages.NoticeInfo:
			return s.styles.Success.Render(s.notice)
		}
	}

	summary := fmt.Sprintf("%s · %d notes", s.sectionTitle, s.noteCount)
	if !s.autosave {
		summary += " · autosave off"
	}
	return s.styles.Normal.Render(summary)
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.BoardHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " | "))
}

// ShortHelp exposes the compact keybinding list.
func (s *Bar) ShortHelp() []key.Binding {
	return s.keymap.ShortHelp()
}
