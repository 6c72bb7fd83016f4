// Package prompt implements interactive terminal prompts as small bubbletea
// programs. Every prompt reports a user abort as a CANCELLED error.
package prompt

import (
	stderrs "errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hpungsan/todo/internal/errors"
)

// Prompter runs prompts against a terminal.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// New creates a Prompter reading keys from in and drawing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func cancelled() error {
	return errors.NewCancelled("prompt")
}

// run executes m until it quits and returns the final model.
func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		if stderrs.Is(err, tea.ErrInterrupted) || stderrs.Is(err, tea.ErrProgramKilled) {
			return nil, cancelled()
		}
		return nil, errors.NewInternal(fmt.Errorf("prompt: %w", err))
	}
	return final, nil
}

// Text asks for a line of text. Empty input yields def.
func (p *Prompter) Text(message, def string) (string, error) {
	final, err := p.run(newTextModel(message, def, false))
	if err != nil {
		return "", err
	}
	m := final.(textModel)
	if m.cancelled {
		return "", cancelled()
	}
	return m.value(), nil
}

// OptionalText is Text that may be skipped with esc, which yields nil.
func (p *Prompter) OptionalText(message, def string) (*string, error) {
	final, err := p.run(newTextModel(message, def, true))
	if err != nil {
		return nil, err
	}
	m := final.(textModel)
	switch {
	case m.cancelled:
		return nil, cancelled()
	case m.skipped:
		return nil, nil
	}
	v := m.value()
	return &v, nil
}

// Select asks for exactly one of options and returns its index.
func (p *Prompter) Select(message string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.NewInvalidRequest("select requires at least one option")
	}
	final, err := p.run(newSelectModel(message, options))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.cancelled {
		return 0, cancelled()
	}
	return m.cursor, nil
}

// MultiSelect asks for any subset of options, pre-checking defaults, and
// returns the chosen indexes in ascending order.
func (p *Prompter) MultiSelect(message string, options []string, defaults []int) ([]int, error) {
	if len(options) == 0 {
		return nil, errors.NewInvalidRequest("multi-select requires at least one option")
	}
	final, err := p.run(newMultiSelectModel(message, options, defaults))
	if err != nil {
		return nil, err
	}
	m := final.(multiSelectModel)
	if m.cancelled {
		return nil, cancelled()
	}
	return m.selected(), nil
}

// Confirm asks a yes/no question. Enter accepts def.
func (p *Prompter) Confirm(message string, def bool) (bool, error) {
	final, err := p.run(newConfirmModel(message, def))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled {
		return false, cancelled()
	}
	return m.answer, nil
}
