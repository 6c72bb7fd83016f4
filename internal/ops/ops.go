package ops

import (
	"fmt"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/todo"
)

// Prompter resolves interactive input. Implementations return a CANCELLED
// error when the user aborts a prompt. Selections are indexes into options.
type Prompter interface {
	Text(message, def string) (string, error)
	OptionalText(message, def string) (*string, error)
	Select(message string, options []string) (int, error)
	MultiSelect(message string, options []string, defaults []int) ([]int, error)
	Confirm(message string, def bool) (bool, error)
}

// Prompt messages
const (
	promptShortDesc = "What do you need to do?"
	promptLongDesc  = "Any additional details?"
	promptSelect    = "Select a todo:"
	promptQuickEdit = "Mark completed todos:"
	promptRemove    = "Select todos to remove:"
	promptCompleted = "Complete?"
)

// labels returns the prompt option for each task.
func labels(tasks []todo.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = todo.Format(t, todo.FormatOptions{})
	}
	return out
}

// idsAt maps selected indexes to task ids, so that later steps relocate
// tasks by id rather than by position.
func idsAt(tasks []todo.Task, indexes []int) ([]string, error) {
	ids := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(tasks) {
			return nil, errors.NewInternal(fmt.Errorf("selection index %d out of range [0,%d)", i, len(tasks)))
		}
		ids = append(ids, tasks[i].ID)
	}
	return ids, nil
}

// completedIndexes returns the positions of completed tasks.
func completedIndexes(tasks []todo.Task) []int {
	var out []int
	for i, t := range tasks {
		if t.Completed {
			out = append(out, i)
		}
	}
	return out
}

// requireKnownIDs fails with NOT_FOUND for the first id not in tasks.
func requireKnownIDs(tasks []todo.Task, ids []string) error {
	for _, id := range ids {
		if todo.IndexOf(tasks, id) < 0 {
			return errors.NewNotFound(id)
		}
	}
	return nil
}

// checkShortDesc applies the configured short description policy.
func checkShortDesc(cfg *config.Config, shortDesc string) error {
	strict := cfg != nil && cfg.RequireShortDesc
	if !todo.Lint(todo.LintInput{ShortDesc: shortDesc, Strict: strict}).Valid {
		return errors.NewInvalidRequest("short description must not be empty")
	}
	return nil
}

// pluralize formats a count of todos.
func pluralize(n int) string {
	if n == 1 {
		return "1 todo"
	}
	return fmt.Sprintf("%d todos", n)
}
