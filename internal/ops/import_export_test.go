package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/store"
)

func TestExport(t *testing.T) {
	st := seededStore(t)
	path := filepath.Join(t.TempDir(), "todos.md")

	out, err := Export(st, ExportInput{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, out.Path)
	assert.Equal(t, 3, out.Count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `- [x] Buy milk
- [ ] Write report

  Q2 numbers

- [x] Call mom
`
	assert.Equal(t, want, string(data))
}

func TestExport_OverwritesExisting(t *testing.T) {
	st := seededStore(t)
	path := filepath.Join(t.TempDir(), "todos.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	_, err := Export(st, ExportInput{Path: path})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(data))
}

func TestImport(t *testing.T) {
	st := seededStore(t)
	path := filepath.Join(t.TempDir(), "list.md")
	src := `# Weekend

- [ ] Mow lawn
- [x] Fix bike

  Rear tyre
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	out, err := Import(st, nil, ImportInput{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Imported)
	require.Len(t, out.IDs, 2)

	tasks := loadTasks(t, st)
	require.Len(t, tasks, 5)
	assert.Equal(t, sampleTasks(), tasks[:3])

	assert.Equal(t, out.IDs[0], tasks[3].ID)
	assert.Equal(t, "Mow lawn", tasks[3].ShortDesc)
	assert.False(t, tasks[3].Completed)
	assert.Nil(t, tasks[3].LongDesc)

	assert.Equal(t, "Fix bike", tasks[4].ShortDesc)
	assert.True(t, tasks[4].Completed)
	require.NotNil(t, tasks[4].LongDesc)
	assert.Equal(t, "Rear tyre", *tasks[4].LongDesc)
}

func TestImport_NoItemsDoesNotSave(t *testing.T) {
	st := newTestStore(t)
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("nothing to do here\n"), 0644))

	out, err := Import(st, nil, ImportInput{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Imported)
	assert.False(t, st.Exists())
}

func TestImport_MissingFile(t *testing.T) {
	st := newTestStore(t)

	_, err := Import(st, nil, ImportInput{Path: filepath.Join(t.TempDir(), "missing.md")})
	require.True(t, errors.Is(err, errors.ErrNotFound), "got %v", err)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := seededStore(t)
	path := filepath.Join(t.TempDir(), "todos.md")
	_, err := Export(src, ExportInput{Path: path})
	require.NoError(t, err)

	dst := newTestStore(t)
	_, err = Import(dst, nil, ImportInput{Path: path})
	require.NoError(t, err)

	got := loadTasks(t, dst)
	want := sampleTasks()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ShortDesc, got[i].ShortDesc)
		assert.Equal(t, want[i].LongDesc, got[i].LongDesc)
		assert.Equal(t, want[i].Completed, got[i].Completed)
	}
}

func TestValidatePath(t *testing.T) {
	st := newTestStore(t)
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(existing, []byte("- [ ] x\n"), 0644))

	tests := []struct {
		name string
		path string
		mode PathCheckMode
		code errors.ErrorCode
	}{
		{"empty", "", PathCheckWrite, errors.ErrInvalidRequest},
		{"traversal", "../out.md", PathCheckWrite, errors.ErrInvalidRequest},
		{"wrong extension", filepath.Join(dir, "out.txt"), PathCheckWrite, errors.ErrInvalidRequest},
		{"beside store file", filepath.Join(st.Dir(), "x.md"), PathCheckWrite, ""},
		{"directory", filepath.Join(dir, "sub.md"), PathCheckWrite, errors.ErrInvalidRequest},
		{"missing for read", filepath.Join(dir, "missing.md"), PathCheckRead, errors.ErrNotFound},
		{"missing for write", filepath.Join(dir, "new.markdown"), PathCheckWrite, ""},
		{"existing for read", existing, PathCheckRead, ""},
		{"uppercase extension", filepath.Join(dir, "UP.MD"), PathCheckWrite, ""},
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0755))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePath(tt.path, tt.mode, st)
			if tt.code == "" {
				require.NoError(t, err)
				assert.True(t, filepath.IsAbs(got))
				return
			}
			require.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestValidatePath_Symlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.md")
	link := filepath.Join(dir, "link.md")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	_, err := ValidatePath(link, PathCheckRead, nil)
	require.True(t, errors.Is(err, errors.ErrInvalidRequest), "got %v", err)
}

func TestValidatePath_RejectsStoreFile(t *testing.T) {
	st, err := store.New(t.TempDir(), store.WithFileName("todos.md"))
	require.NoError(t, err)

	_, err = ValidatePath(st.Path(), PathCheckWrite, st)
	require.True(t, errors.Is(err, errors.ErrInvalidRequest), "got %v", err)
}
