package prompt

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel picks one option.
type selectModel struct {
	message   string
	options   []string
	cursor    int
	done      bool
	cancelled bool
}

func newSelectModel(message string, options []string) selectModel {
	return selectModel{message: message, options: options}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.cursor = moveCursor(m.cursor, -1, len(m.options))
	case "down", "j":
		m.cursor = moveCursor(m.cursor, 1, len(m.options))
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done {
		return question(m.message) + " " + answerStyle.Render(m.options[m.cursor]) + "\n"
	}
	if m.cancelled {
		return question(m.message) + " " + helpStyle.Render("<cancelled>") + "\n"
	}

	var b strings.Builder
	b.WriteString(question(m.message) + "\n")
	for i, opt := range m.options {
		b.WriteString(cursorLine(i == m.cursor, opt))
	}
	b.WriteString(helpStyle.Render("↑/↓ to move, enter to select, esc to cancel") + "\n")
	return b.String()
}

// multiSelectModel toggles any number of options.
type multiSelectModel struct {
	message   string
	options   []string
	checked   []bool
	cursor    int
	done      bool
	cancelled bool
}

func newMultiSelectModel(message string, options []string, defaults []int) multiSelectModel {
	checked := make([]bool, len(options))
	for _, i := range defaults {
		if i >= 0 && i < len(options) {
			checked[i] = true
		}
	}
	return multiSelectModel{message: message, options: options, checked: checked}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.cursor = moveCursor(m.cursor, -1, len(m.options))
	case "down", "j":
		m.cursor = moveCursor(m.cursor, 1, len(m.options))
	case " ", "x":
		m.checked = slices.Clone(m.checked)
		m.checked[m.cursor] = !m.checked[m.cursor]
	case "a", "right":
		m.checked = fill(len(m.options), true)
	case "n", "left":
		m.checked = fill(len(m.options), false)
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

// selected returns the checked indexes in ascending order.
func (m multiSelectModel) selected() []int {
	out := []int{}
	for i, c := range m.checked {
		if c {
			out = append(out, i)
		}
	}
	return out
}

func (m multiSelectModel) View() string {
	if m.done {
		var picked []string
		for _, i := range m.selected() {
			picked = append(picked, m.options[i])
		}
		answer := strings.Join(picked, ", ")
		if answer == "" {
			answer = "none"
		}
		return question(m.message) + " " + answerStyle.Render(answer) + "\n"
	}
	if m.cancelled {
		return question(m.message) + " " + helpStyle.Render("<cancelled>") + "\n"
	}

	var b strings.Builder
	b.WriteString(question(m.message) + "\n")
	for i, opt := range m.options {
		box := "[ ] "
		if m.checked[i] {
			box = "[x] "
		}
		b.WriteString(cursorLine(i == m.cursor, box+opt))
	}
	b.WriteString(helpStyle.Render("space to toggle, a all, n none, enter to confirm, esc to cancel") + "\n")
	return b.String()
}

func cursorLine(active bool, text string) string {
	if active {
		return cursorStyle.Render("> "+text) + "\n"
	}
	return "  " + text + "\n"
}

// moveCursor moves by delta and wraps around n options.
func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((cursor+delta)%n + n) % n
}

func fill(n int, v bool) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}
