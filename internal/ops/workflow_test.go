package ops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/todo/internal/config"
	"github.com/hpungsan/todo/internal/todo"
)

// TestFullWorkflow exercises the todo lifecycle:
// add → list → quick edit → full edit → remove → remove all → list (empty)
func TestFullWorkflow(t *testing.T) {
	st := newTestStore(t)
	cfg := config.DefaultConfig()

	// 1. Add three todos
	var ids []string
	for _, desc := range []string{"Buy milk", "Write report", "Call mom"} {
		out, err := Add(st, cfg, AddInput{ShortDesc: desc})
		require.NoError(t, err)
		ids = append(ids, out.ID)
	}

	// 2. List in stored order
	listOut, err := List(st, cfg, ListInput{})
	require.NoError(t, err)
	require.Equal(t, []string{"[ ] Buy milk", "[ ] Write report", "[ ] Call mom"}, listOut.Lines)

	// 3. Quick edit: complete the first and last
	_, err = Edit(st, cfg, newFakePrompter(t, multiStep(0, 2)), EditInput{})
	require.NoError(t, err)
	require.Equal(t, []string{ids[0], ids[2]}, todo.CompletedIDs(loadTasks(t, st)))

	// 4. Full edit the middle one
	p := newFakePrompter(t, selectStep(1), textStep("Write final report"), optStep("by Friday"), confirmStep(true))
	_, err = Edit(st, cfg, p, EditInput{Full: true})
	require.NoError(t, err)

	tasks := loadTasks(t, st)
	require.Equal(t, ids[1], tasks[1].ID)
	require.Equal(t, "Write final report", tasks[1].ShortDesc)
	require.True(t, tasks[1].Completed)

	// 5. Remove the first after one declined attempt
	p = newFakePrompter(t, multiStep(1), confirmStep(false), multiStep(0), confirmStep(true))
	_, err = Remove(st, p, RemoveInput{})
	require.NoError(t, err)
	p.requireDone()

	tasks = loadTasks(t, st)
	require.Len(t, tasks, 2)
	require.Equal(t, ids[1], tasks[0].ID)
	require.Equal(t, ids[2], tasks[1].ID)

	// 6. Remove all
	_, err = Remove(st, newFakePrompter(t, confirmStep(true)), RemoveInput{All: true})
	require.NoError(t, err)

	// 7. List shows the empty indicator
	listOut, err = List(st, cfg, ListInput{})
	require.NoError(t, err)
	require.True(t, listOut.Empty)
	require.Equal(t, []string{todo.EmptyMessage}, listOut.Lines)
}
