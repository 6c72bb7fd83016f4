package ops

import (
	"fmt"
	"os"
	"time"

	"github.com/hpungsan/todo/internal/checklist"
	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/todo"
)

// ImportInput contains parameters for the Import operation.
type ImportInput struct {
	Path string // markdown checklist, required
}

// ImportOutput contains the result of the Import operation.
type ImportOutput struct {
	Path     string   `json:"path"`
	Imported int      `json:"imported"`
	IDs      []string `json:"ids"`
}

// Import appends every task-list item of a markdown checklist as a new todo.
// Checked boxes import as completed. All items are added in one save, or none.
func Import(st *store.Store, cfg *config.Config, input ImportInput) (*ImportOutput, error) {
	path, err := ValidatePath(input.Path, PathCheckRead, st)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to read checklist: %w", err))
	}

	items := checklist.Parse(data)
	for i, item := range items {
		if err := checkShortDesc(cfg, item.Text); err != nil {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("item %d: short description must not be empty", i+1))
		}
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		t, err := todo.New(item.Text, item.Details, now)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		t.Completed = item.Checked
		tasks = ApplyAdd(tasks, t)
		ids = append(ids, t.ID)
	}

	if len(ids) > 0 {
		if err := st.Save(tasks); err != nil {
			return nil, err
		}
	}
	st.Logger().Debug("checklist imported", "path", path, "count", len(ids))

	return &ImportOutput{Path: path, Imported: len(ids), IDs: ids}, nil
}
