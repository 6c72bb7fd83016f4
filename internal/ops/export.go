package ops

import (
	"fmt"

	"github.com/hpungsan/todo/internal/checklist"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/todo"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path string // markdown destination, required
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Export writes the collection, in stored order, as a markdown checklist.
// The destination is replaced atomically; on failure an existing file is kept.
func Export(st *store.Store, input ExportInput) (*ExportOutput, error) {
	path, err := ValidatePath(input.Path, PathCheckWrite, st)
	if err != nil {
		return nil, err
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}

	data := checklist.Render(ToItems(tasks))
	if err := store.WriteFileAtomic(path, data, 0644); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write checklist: %w", err))
	}

	return &ExportOutput{Path: path, Count: len(tasks)}, nil
}

// ToItems converts todos to checklist items.
func ToItems(tasks []todo.Task) []checklist.Item {
	items := make([]checklist.Item, len(tasks))
	for i, t := range tasks {
		items[i] = checklist.Item{
			Text:    todo.OneLine(t.ShortDesc),
			Checked: t.Completed,
			Details: t.Clone().LongDesc,
		}
	}
	return items
}
