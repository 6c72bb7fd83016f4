package ops

import (
	"cmp"
	"slices"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
	"github.com/hpungsan/todo/internal/todo"
)

// RenderOptions controls how a collection is rendered.
type RenderOptions struct {
	ShowCreated bool
	Sort        string // config.SortStored (default) or config.SortDesc
}

// ListInput contains parameters for the List operation.
type ListInput struct {
	ShowCreated bool
	Sort        string // empty uses the configured order
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []todo.Task `json:"items"`
	Lines []string    `json:"-"`
	Empty bool        `json:"empty"`
	Sort  string      `json:"sort"`
}

// List loads the collection and renders it. It never writes.
func List(st *store.Store, cfg *config.Config, input ListInput) (*ListOutput, error) {
	order := input.Sort
	if order == "" && cfg != nil {
		order = cfg.ListSort
	}
	if order == "" {
		order = config.SortStored
	}
	if order != config.SortStored && order != config.SortDesc {
		return nil, errors.NewInvalidRequest("sort must be one of: stored, desc")
	}

	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}

	showCreated := input.ShowCreated || (cfg != nil && cfg.ShowCreated)
	sorted := SortTasks(tasks, order)
	return &ListOutput{
		Items: sorted,
		Lines: Render(tasks, RenderOptions{ShowCreated: showCreated, Sort: order}),
		Empty: len(tasks) == 0,
		Sort:  order,
	}, nil
}

// Render produces one line per todo, or the single empty indicator line.
func Render(tasks []todo.Task, opts RenderOptions) []string {
	if len(tasks) == 0 {
		return []string{todo.EmptyMessage}
	}

	fo := todo.FormatOptions{ShowCreated: opts.ShowCreated}
	sorted := SortTasks(tasks, opts.Sort)
	lines := make([]string, len(sorted))
	for i, t := range sorted {
		lines[i] = todo.Format(t, fo)
	}
	return lines
}

// SortTasks returns a copy of tasks in the requested order. Stored order is
// collection order; desc orders by short description, ties broken by id.
func SortTasks(tasks []todo.Task, order string) []todo.Task {
	out := todo.Clone(tasks)
	if out == nil {
		out = []todo.Task{}
	}
	if order == config.SortDesc {
		slices.SortStableFunc(out, func(a, b todo.Task) int {
			return cmp.Or(cmp.Compare(a.ShortDesc, b.ShortDesc), cmp.Compare(a.ID, b.ID))
		})
	}
	return out
}
