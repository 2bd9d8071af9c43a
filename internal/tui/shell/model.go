// File: model.go
// Title: Shell TUI Model
// Description: Bubbletea model for the interactive shell: a transcript
//              viewport above a single-line command input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial implementation

package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	rbdblog "github.com/msto63/rbdb/internal/core/log"
	"github.com/msto63/rbdb/internal/session"
	rbdbstringx "github.com/msto63/rbdb/internal/utils/stringx"
)

// entryKind classifies a transcript entry for styling
type entryKind int

const (
	entryInput entryKind = iota
	entrySuccess
	entryValue
	entryWarning
	entryError
)

// entry is one line in the transcript
type entry struct {
	kind entryKind
	text string
}

// Model is the Bubbletea model for the interactive shell
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	textinput textinput.Model
	viewport  viewport.Model

	// Session state
	session *session.Session
	entries []entry
	prompt  string

	// Input history
	inputHistory []string
	historyIndex int // -1 = no history navigation active
	currentInput string
}

// Config holds shell TUI configuration
type Config struct {
	Prompt        string
	MaxLineLength int
	Logger        *rbdblog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt: "RBDB -> ",
	}
}

// New creates a new shell model
func New(cfg Config) Model {
	prompt := rbdbstringx.FromBlankDefault(cfg.Prompt, DefaultConfig().Prompt)

	ti := textinput.New()
	ti.Placeholder = "INSERT key value | SELECT key | UPDATE key value | DELETE key"
	ti.Prompt = prompt
	ti.PromptStyle = PromptStyle
	ti.Focus()
	ti.CharLimit = 0

	sess := session.New(session.Options{
		Logger:        cfg.Logger,
		MaxLineLength: cfg.MaxLineLength,
	})

	return Model{
		textinput:    ti,
		session:      sess,
		entries:      []entry{},
		prompt:       prompt,
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Logo panel
		footerHeight := 6 // Input + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.textinput.Width = msg.Width - 8
		m.updateViewportContent()
	}

	m.textinput, cmd = m.textinput.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyCtrlL:
		// Clear transcript
		m.entries = []entry{}
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		input := m.textinput.Value()
		if strings.TrimSpace(input) == "" {
			return m, nil
		}

		if session.IsSentinel(input) {
			return m, tea.Quit
		}

		// History (skip duplicates of the last entry)
		if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != input {
			m.inputHistory = append(m.inputHistory, input)
			if len(m.inputHistory) > 100 {
				m.inputHistory = m.inputHistory[len(m.inputHistory)-100:]
			}
		}
		m.historyIndex = -1
		m.currentInput = ""

		m.entries = append(m.entries, entry{kind: entryInput, text: m.prompt + input})
		m.submitLine(input)
		m.textinput.Reset()
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyUp:
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.textinput.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textinput.SetValue(m.inputHistory[m.historyIndex])
			m.textinput.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.textinput.SetValue(m.inputHistory[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.textinput.SetValue(m.currentInput)
			}
			m.textinput.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	return m, cmd
}

// submitLine runs one input line through the session and appends the
// outcome to the transcript.
func (m *Model) submitLine(input string) {
	result, err := m.session.ProcessLine(input)
	if err != nil {
		m.entries = append(m.entries, entry{
			kind: entryError,
			text: "Query is malformed: " + err.Error(),
		})
		return
	}

	for _, warning := range result.Warnings {
		m.entries = append(m.entries, entry{kind: entryWarning, text: warning.Message})
	}

	if result.Output == "" {
		return
	}
	kind := entryValue
	if strings.HasPrefix(result.Output, "SUCCESS: ") {
		kind = entrySuccess
	}
	m.entries = append(m.entries, entry{kind: kind, text: result.Output})
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading shell..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderTranscript())
	b.WriteString("\n")

	b.WriteString(InputStyle.Width(m.width - 2).Render(m.textinput.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the logo panel
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	return TitlePanelStyle.Width(m.width - 4).Render(logo)
}

// renderTranscript renders the transcript viewport
func (m Model) renderTranscript() string {
	return TranscriptPanelStyle.
		Width(m.width - 2).
		Height(m.viewport.Height + 2).
		Render(m.viewport.View())
}

// renderStatusBar renders entry count and session id
func (m Model) renderStatusBar() string {
	left := HelpDescStyle.Render(fmt.Sprintf("%d entries", m.session.Table().Len()))
	right := HelpDescStyle.Render("session " + shortID(m.session.ID()))

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := m.width - leftLen - rightLen - 4
	if padding < 1 {
		padding = 1
	}

	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "run"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("Ctrl+L", "clear"),
		RenderKeyHint("Ctrl+C", "quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with the transcript
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, e := range m.entries {
		switch e.kind {
		case entryInput:
			content.WriteString(InputEchoStyle.Render(e.text))
		case entrySuccess:
			content.WriteString(SuccessStyle.Render(e.text))
		case entryValue:
			content.WriteString(ValueStyle.Render(e.text))
		case entryWarning:
			content.WriteString(WarningStyle.Render(e.text))
		case entryError:
			content.WriteString(ErrorStyle.Render(e.text))
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the shell TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
