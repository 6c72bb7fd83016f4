package ops

import (
	"fmt"

	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/todo"
)

// RemoveInput contains parameters for the interactive Remove operation.
type RemoveInput struct {
	All bool
}

// RemoveOutput contains the result of a removal.
type RemoveOutput struct {
	Removed int      `json:"removed"`
	IDs     []string `json:"ids"`
	Message string   `json:"message"`
}

func nothingRemoved(msg string) *RemoveOutput {
	return &RemoveOutput{IDs: []string{}, Message: msg}
}

// Remove deletes todos interactively. With All it asks once for confirmation
// (default no). Otherwise it shows a checklist; an empty selection ends without
// saving, and a declined confirmation shows the checklist again.
func Remove(st *store.Store, p Prompter, input RemoveInput) (*RemoveOutput, error) {
	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nothingRemoved("No todos to remove"), nil
	}

	if input.All {
		ok, err := p.Confirm(fmt.Sprintf("Remove all %s?", pluralize(len(tasks))), false)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nothingRemoved("Nothing removed"), nil
		}
		return removeAll(st, tasks)
	}

	for {
		chosen, err := p.MultiSelect(promptRemove, labels(tasks), nil)
		if err != nil {
			return nil, err
		}
		if len(chosen) == 0 {
			return nothingRemoved("Nothing removed"), nil
		}

		ids, err := idsAt(tasks, chosen)
		if err != nil {
			return nil, err
		}

		ok, err := p.Confirm(fmt.Sprintf("Remove %s?", pluralize(len(ids))), false)
		if err != nil {
			return nil, err
		}
		if !ok {
			st.Logger().Debug("removal declined, selecting again", "selected", len(ids))
			continue
		}

		if err := st.Save(ApplyRemoveSelected(tasks, ids)); err != nil {
			return nil, err
		}
		return &RemoveOutput{
			Removed: len(ids),
			IDs:     ids,
			Message: fmt.Sprintf("Removed %s", pluralize(len(ids))),
		}, nil
	}
}

// RemoveIDsInput contains parameters for the RemoveIDs operation.
type RemoveIDsInput struct {
	IDs []string
}

// RemoveIDs deletes the listed todos without prompting. An empty list is a
// no-op; an unknown id fails with NOT_FOUND and nothing is removed.
func RemoveIDs(st *store.Store, input RemoveIDsInput) (*RemoveOutput, error) {
	if len(input.IDs) == 0 {
		return nothingRemoved("Nothing removed"), nil
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}
	if err := requireKnownIDs(tasks, input.IDs); err != nil {
		return nil, err
	}

	next := ApplyRemoveSelected(tasks, input.IDs)
	if err := st.Save(next); err != nil {
		return nil, err
	}

	removed := len(tasks) - len(next)
	return &RemoveOutput{
		Removed: removed,
		IDs:     dedupe(input.IDs),
		Message: fmt.Sprintf("Removed %s", pluralize(removed)),
	}, nil
}

// Clear removes every todo when confirmed. Unconfirmed it leaves the file untouched.
func Clear(st *store.Store, confirmed bool) (*RemoveOutput, error) {
	if !confirmed {
		return nothingRemoved("Nothing removed"), nil
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}
	return removeAll(st, tasks)
}

// removeAll saves an empty collection in place of tasks.
func removeAll(st *store.Store, tasks []todo.Task) (*RemoveOutput, error) {
	if err := st.Save(ApplyRemoveAll(tasks, true)); err != nil {
		return nil, err
	}

	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return &RemoveOutput{
		Removed: len(tasks),
		IDs:     ids,
		Message: fmt.Sprintf("Removed %s", pluralize(len(tasks))),
	}, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
