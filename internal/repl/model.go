package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactbook/internal/command"
)

// entry is one rendered transcript line.
type entry struct {
	text string
	kind entryKind
}

// Model is the Bubble Tea model for the interactive prompt.
type Model struct {
	session    *command.Session
	input      textinput.Model
	keys       keyMap
	help       help.Model
	transcript []entry
	history    []string
	histIdx    int // == len(history) when not browsing
	height     int
	done       bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPrompt sets the text shown before the input field.
func WithPrompt(prompt string) ModelOption {
	return func(m *Model) { m.input.Prompt = prompt }
}

// NewModel creates a Model over s with the welcome banner in the transcript.
func NewModel(s *command.Session, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = command.Prompt
	ti.Placeholder = "help"
	ti.Focus()

	m := Model{
		session:    s,
		input:      ti,
		keys:       defaultKeyMap(),
		help:       help.New(),
		transcript: []entry{{text: command.MsgWelcome, kind: kindBanner}},
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 0)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.append(command.MsgFarewell, kindReply)
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.browse(-1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.browse(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.append(m.input.Prompt+line, kindEcho)

	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histIdx = len(m.history)

	reply := m.session.Execute(line)
	if reply.Text != "" {
		kind := kindReply
		if reply.Failed {
			kind = kindFailure
		}
		m.append(reply.Text, kind)
	}
	if reply.Exit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// browse moves through input history by delta, restoring an empty line
// past the newest entry.
func (m *Model) browse(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histIdx = min(max(m.histIdx+delta, 0), len(m.history))
	if m.histIdx == len(m.history) {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.histIdx])
	}
	m.input.CursorEnd()
}

// append adds text to the transcript, one entry per line.
func (m *Model) append(text string, kind entryKind) {
	for _, line := range strings.Split(text, "\n") {
		m.transcript = append(m.transcript, entry{text: line, kind: kind})
	}
}

// View renders the transcript tail, the prompt, and the help bar.
func (m Model) View() string {
	var b strings.Builder

	lines := m.transcript
	// Reserve rows for the prompt and the help bar.
	if m.height > 2 && len(lines) > m.height-2 {
		lines = lines[len(lines)-(m.height-2):]
	}
	for _, e := range lines {
		b.WriteString(e.kind.style().Render(e.text))
		b.WriteString("\n")
	}

	if m.done {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
