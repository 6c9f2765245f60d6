package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/bottles/internal/shared"
	"github.com/desertthunder/bottles/internal/song"
	"github.com/desertthunder/bottles/internal/verses"
)

// focusField identifies which numeric field currently receives keystrokes.
type focusField int

const (
	startField focusField = iota
	endField
)

// Model represents the TUI application state.
type Model struct {
	rng        *verses.Range
	startInput textinput.Model
	endInput   textinput.Model
	focus      focusField
	pane       viewport.Model
	width      int
	height     int
	ready      bool
	help       help.Model
	keys       keyMap
}

// NewModel creates a new TUI model spanning the full song.
func NewModel() *Model {
	rng := verses.NewFull()

	start := textinput.New()
	start.CharLimit = 4
	start.Width = 6
	start.Prompt = "from "
	start.SetValue(rng.Start().Raw())
	start.Focus()

	end := textinput.New()
	end.CharLimit = 4
	end.Width = 6
	end.Prompt = "to "
	end.SetValue(rng.End().Raw())

	return &Model{
		rng:        rng,
		startInput: start,
		endInput:   end,
		focus:      startField,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.pane = viewport.New(msg.Width-4, max(msg.Height-10, 3))
			m.ready = true
			m.refreshPane()
		} else {
			m.pane.Width = msg.Width - 4
			m.pane.Height = max(msg.Height-10, 3)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.next):
			m.toggleFocus()
			return m, nil

		case key.Matches(msg, m.keys.full):
			m.rng.FullSong()
			m.syncInputs()
			m.refreshPane()
			return m, nil

		case key.Matches(msg, m.keys.nextVs):
			m.rng.NextVerse()
			m.syncInputs()
			m.refreshPane()
			return m, nil
		}

		return m, m.updateFocused(msg)
	}

	var cmd tea.Cmd
	m.pane, cmd = m.pane.Update(msg)
	return m, cmd
}

// View renders the picker: title, the two fields, the committed range and the
// verse pane.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := styles.title.Render("99 Bottles of Beer")

	fields := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.startInput.View(),
		"   ",
		m.endInput.View(),
	)

	start, end := m.rng.Bounds()
	status := styles.ok.Render(fmt.Sprintf("singing %s (%d verses)", shared.FormatRange(start, end), m.rng.Len()))
	if !m.rng.Start().IsValid() || !m.rng.End().IsValid() {
		status += styles.warn.Render("  (field text not committed)")
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n\n%s", title, fields, status, m.pane.View(), helpView)
}

// updateFocused forwards a keystroke to the focused field, then pushes the
// field's raw text through the range model so the committed bounds and the
// verse pane stay consistent with what is displayed.
func (m *Model) updateFocused(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case startField:
		m.startInput, cmd = m.startInput.Update(msg)
		m.rng.SetStart(m.startInput.Value())
	case endField:
		m.endInput, cmd = m.endInput.Update(msg)
		m.rng.SetEnd(m.endInput.Value())
	}
	m.refreshPane()
	return cmd
}

func (m *Model) toggleFocus() {
	if m.focus == startField {
		m.focus = endField
		m.startInput.Blur()
		m.endInput.Focus()
	} else {
		m.focus = startField
		m.endInput.Blur()
		m.startInput.Focus()
	}
}

// syncInputs rewrites both fields from the model's raw buffers after a
// programmatic transition (full song, next verse).
func (m *Model) syncInputs() {
	m.startInput.SetValue(m.rng.Start().Raw())
	m.startInput.CursorEnd()
	m.endInput.SetValue(m.rng.End().Raw())
	m.endInput.CursorEnd()
}

func (m *Model) refreshPane() {
	if !m.ready {
		return
	}
	start, end := m.rng.Bounds()
	m.pane.SetContent(strings.Join(song.Lines(start, end), "\n"))
	m.pane.GotoTop()
}
