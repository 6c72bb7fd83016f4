package ops

import (
	"time"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/todo"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	ShortDesc string
	LongDesc  *string // nil means absent
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	ID      string    `json:"id"`
	Todo    todo.Task `json:"todo"`
	Message string    `json:"message"`
}

// Add creates a todo and appends it to the collection.
func Add(st *store.Store, cfg *config.Config, input AddInput) (*AddOutput, error) {
	if err := checkShortDesc(cfg, input.ShortDesc); err != nil {
		return nil, err
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}

	t, err := todo.New(input.ShortDesc, input.LongDesc, time.Now())
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	if err := st.Save(ApplyAdd(tasks, t)); err != nil {
		return nil, err
	}
	st.Logger().Debug("todo added", "id", t.ID, "count", len(tasks)+1)

	return &AddOutput{
		ID:      t.ID,
		Todo:    t,
		Message: "Todo added successfully!",
	}, nil
}

// AddInteractive prompts for the descriptions and then adds the todo.
// The long description prompt may be skipped, leaving it absent.
func AddInteractive(st *store.Store, cfg *config.Config, p Prompter) (*AddOutput, error) {
	shortDesc, err := p.Text(promptShortDesc, "")
	if err != nil {
		return nil, err
	}
	if err := checkShortDesc(cfg, shortDesc); err != nil {
		return nil, err
	}

	longDesc, err := p.OptionalText(promptLongDesc, "")
	if err != nil {
		return nil, err
	}

	return Add(st, cfg, AddInput{ShortDesc: shortDesc, LongDesc: longDesc})
}
