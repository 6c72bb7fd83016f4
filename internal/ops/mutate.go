package ops

import (
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/todo"
)

// The Apply functions compute the next collection from the current one and
// already-resolved input. They never modify their arguments and never do I/O.

// FullEdit holds the replacement values for a full edit.
type FullEdit struct {
	ShortDesc string
	LongDesc  *string
	Completed bool
}

// ApplyAdd appends t. Existing tasks are carried over unchanged.
func ApplyAdd(tasks []todo.Task, t todo.Task) []todo.Task {
	out := make([]todo.Task, 0, len(tasks)+1)
	out = append(out, todo.Clone(tasks)...)
	return append(out, t.Clone())
}

// ApplyQuickEdit sets Completed on every task from membership in
// completedIDs. It is a full re-derivation: tasks not listed become incomplete.
func ApplyQuickEdit(tasks []todo.Task, completedIDs []string) []todo.Task {
	done := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		done[id] = true
	}

	out := todo.Clone(tasks)
	for i := range out {
		out[i].Completed = done[out[i].ID]
	}
	return out
}

// ApplyFullEdit replaces the task with id by a record built from edit,
// keeping its ID and CreatedAt. A missing id is a SELECTION error.
func ApplyFullEdit(tasks []todo.Task, id string, edit FullEdit) ([]todo.Task, error) {
	idx := todo.IndexOf(tasks, id)
	if idx < 0 {
		return nil, errors.NewSelection(id)
	}

	out := todo.Clone(tasks)
	existing := out[idx]
	updated := todo.Task{
		ID:        existing.ID,
		ShortDesc: edit.ShortDesc,
		LongDesc:  edit.LongDesc,
		Completed: edit.Completed,
		CreatedAt: existing.CreatedAt,
	}
	out[idx] = updated.Clone()
	return out, nil
}

// ApplyRemoveAll empties the collection when confirmed, otherwise returns it unchanged.
func ApplyRemoveAll(tasks []todo.Task, confirmed bool) []todo.Task {
	if !confirmed {
		out := todo.Clone(tasks)
		if out == nil {
			out = []todo.Task{}
		}
		return out
	}
	return []todo.Task{}
}

// ApplyRemoveSelected drops exactly the tasks whose ids are listed; the rest
// keep their order.
func ApplyRemoveSelected(tasks []todo.Task, ids []string) []todo.Task {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	out := make([]todo.Task, 0, len(tasks))
	for _, t := range tasks {
		if !drop[t.ID] {
			out = append(out, t.Clone())
		}
	}
	return out
}
