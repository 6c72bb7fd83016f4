package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// textModel reads one line. With optional set, esc skips instead of cancelling.
type textModel struct {
	message   string
	def       string
	optional  bool
	input     textinput.Model
	done      bool
	skipped   bool
	cancelled bool
}

func newTextModel(message, def string, optional bool) textModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = def
	ti.PlaceholderStyle = placeholderStyle
	ti.TextStyle = answerStyle
	ti.Focus()

	return textModel{
		message:  message,
		def:      def,
		optional: optional,
		input:    ti,
	}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			if m.optional {
				m.skipped = true
			} else {
				m.cancelled = true
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// value is the entered text, or the default when nothing was typed.
func (m textModel) value() string {
	if v := m.input.Value(); v != "" {
		return v
	}
	return m.def
}

func (m textModel) View() string {
	switch {
	case m.done:
		return question(m.message) + " " + answerStyle.Render(m.value()) + "\n"
	case m.skipped:
		return question(m.message) + " " + helpStyle.Render("<skipped>") + "\n"
	case m.cancelled:
		return question(m.message) + " " + helpStyle.Render("<cancelled>") + "\n"
	}

	help := "enter to submit, esc to cancel"
	if m.optional {
		help = "enter to submit, esc to skip"
	}
	return question(m.message) + " " + m.input.View() + "\n" + helpStyle.Render(help) + "\n"
}
