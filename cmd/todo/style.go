package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hpungsan/todo/internal/todo"
)

// listStyles colors list output. Rendering is plain when w is not a terminal.
type listStyles struct {
	done    lipgloss.Style
	pending lipgloss.Style
	empty   lipgloss.Style
	success lipgloss.Style
}

func newListStyles(w io.Writer) listStyles {
	r := lipgloss.NewRenderer(w)
	return listStyles{
		done:    r.NewStyle().Foreground(lipgloss.Color("42")),
		pending: r.NewStyle(),
		empty:   r.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		success: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}

// line styles one rendered list line by its completion mark.
func (s listStyles) line(l string) string {
	switch {
	case l == todo.EmptyMessage:
		return s.empty.Render(l)
	case strings.HasPrefix(l, todo.MarkDone):
		return s.done.Render(l)
	default:
		return s.pending.Render(l)
	}
}
