package prompt

import tea "github.com/charmbracelet/bubbletea"

// confirmModel answers a yes/no question.
type confirmModel struct {
	message   string
	def       bool
	answer    bool
	done      bool
	cancelled bool
}

func newConfirmModel(message string, def bool) confirmModel {
	return confirmModel{message: message, def: def}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer, m.done = true, true
		return m, tea.Quit
	case "n", "N":
		m.answer, m.done = false, true
		return m, tea.Quit
	case "enter":
		m.answer, m.done = m.def, true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "No"
		if m.answer {
			answer = "Yes"
		}
		return question(m.message) + " " + answerStyle.Render(answer) + "\n"
	}
	if m.cancelled {
		return question(m.message) + " " + helpStyle.Render("<cancelled>") + "\n"
	}

	hint := "(y/N)"
	if m.def {
		hint = "(Y/n)"
	}
	return question(m.message) + " " + helpStyle.Render(hint) + "\n"
}
