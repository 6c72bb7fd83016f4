package prompt

import "github.com/charmbracelet/lipgloss"

var (
	questionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))
)

// question renders the leading "? message" of every prompt.
func question(message string) string {
	return questionStyle.Render("?") + " " + message
}
