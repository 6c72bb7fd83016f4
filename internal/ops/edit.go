package ops

import (
	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/todo"
)

// Edit modes
const (
	EditQuick = "quick"
	EditFull  = "full"
)

// EditInput contains parameters for the interactive Edit operation.
type EditInput struct {
	Full bool
}

// EditOutput contains the result of an edit.
type EditOutput struct {
	Mode    string `json:"mode"`
	Edited  bool   `json:"edited"`
	ID      string `json:"id,omitempty"`      // full edit only
	Changed int    `json:"changed,omitempty"` // quick edit only
	Message string `json:"message"`
}

// Edit runs the quick edit (completion checklist) or the full edit (select one
// todo and re-prompt every field). With no todos it reports so without prompting.
func Edit(st *store.Store, cfg *config.Config, p Prompter, input EditInput) (*EditOutput, error) {
	mode := EditQuick
	if input.Full {
		mode = EditFull
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return &EditOutput{Mode: mode, Message: "No todos to edit"}, nil
	}

	if input.Full {
		return fullEdit(st, cfg, p, tasks)
	}
	return quickEdit(st, p, tasks)
}

func quickEdit(st *store.Store, p Prompter, tasks []todo.Task) (*EditOutput, error) {
	chosen, err := p.MultiSelect(promptQuickEdit, labels(tasks), completedIndexes(tasks))
	if err != nil {
		return nil, err
	}
	ids, err := idsAt(tasks, chosen)
	if err != nil {
		return nil, err
	}

	next := ApplyQuickEdit(tasks, ids)
	if err := st.Save(next); err != nil {
		return nil, err
	}

	changed := 0
	for i := range next {
		if next[i].Completed != tasks[i].Completed {
			changed++
		}
	}
	st.Logger().Debug("quick edit saved", "completed", len(ids), "changed", changed)

	return &EditOutput{
		Mode:    EditQuick,
		Edited:  true,
		Changed: changed,
		Message: "Todos updated",
	}, nil
}

func fullEdit(st *store.Store, cfg *config.Config, p Prompter, tasks []todo.Task) (*EditOutput, error) {
	idx, err := p.Select(promptSelect, labels(tasks))
	if err != nil {
		return nil, err
	}
	ids, err := idsAt(tasks, []int{idx})
	if err != nil {
		return nil, err
	}
	selected := tasks[idx]

	shortDesc, err := p.Text(promptShortDesc, selected.ShortDesc)
	if err != nil {
		return nil, err
	}
	if err := checkShortDesc(cfg, shortDesc); err != nil {
		return nil, err
	}

	currentLong := ""
	if selected.LongDesc != nil {
		currentLong = *selected.LongDesc
	}
	longDesc, err := p.OptionalText(promptLongDesc, currentLong)
	if err != nil {
		return nil, err
	}

	completed, err := p.Confirm(promptCompleted, selected.Completed)
	if err != nil {
		return nil, err
	}

	next, err := ApplyFullEdit(tasks, ids[0], FullEdit{
		ShortDesc: shortDesc,
		LongDesc:  longDesc,
		Completed: completed,
	})
	if err != nil {
		return nil, err
	}
	if err := st.Save(next); err != nil {
		return nil, err
	}
	st.Logger().Debug("full edit saved", "id", ids[0])

	return &EditOutput{
		Mode:    EditFull,
		Edited:  true,
		ID:      ids[0],
		Message: "Todo updated",
	}, nil
}

// UpdateInput contains parameters for the Update operation. Every field is
// replaced; a nil LongDesc removes the long description.
type UpdateInput struct {
	ID        string
	ShortDesc string
	LongDesc  *string
	Completed bool
}

// UpdateOutput contains the result of the Update operation.
type UpdateOutput struct {
	ID   string    `json:"id"`
	Todo todo.Task `json:"todo"`
}

// Update is the non-interactive full edit of the todo with input.ID.
func Update(st *store.Store, cfg *config.Config, input UpdateInput) (*UpdateOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if err := checkShortDesc(cfg, input.ShortDesc); err != nil {
		return nil, err
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}
	if err := requireKnownIDs(tasks, []string{input.ID}); err != nil {
		return nil, err
	}

	next, err := ApplyFullEdit(tasks, input.ID, FullEdit{
		ShortDesc: input.ShortDesc,
		LongDesc:  input.LongDesc,
		Completed: input.Completed,
	})
	if err != nil {
		return nil, err
	}
	if err := st.Save(next); err != nil {
		return nil, err
	}

	return &UpdateOutput{
		ID:   input.ID,
		Todo: next[todo.IndexOf(next, input.ID)],
	}, nil
}

// SetCompletedInput contains parameters for the SetCompleted operation.
type SetCompletedInput struct {
	IDs []string // the complete set of completed todos
}

// SetCompletedOutput contains the result of the SetCompleted operation.
type SetCompletedOutput struct {
	Completed []string `json:"completed"`
	Changed   int      `json:"changed"`
}

// SetCompleted is the non-interactive quick edit: exactly the listed todos
// end up completed. Unknown ids fail with NOT_FOUND before anything is saved.
func SetCompleted(st *store.Store, input SetCompletedInput) (*SetCompletedOutput, error) {
	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}
	if err := requireKnownIDs(tasks, input.IDs); err != nil {
		return nil, err
	}

	next := ApplyQuickEdit(tasks, input.IDs)
	if err := st.Save(next); err != nil {
		return nil, err
	}

	changed := 0
	for i := range next {
		if next[i].Completed != tasks[i].Completed {
			changed++
		}
	}

	return &SetCompletedOutput{Completed: todo.CompletedIDs(next), Changed: changed}, nil
}
