package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hpungsan/todo/internal/errors"
)

// writeRepoConfig writes root/.todo/config.json and returns its path.
func writeRepoConfig(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_DefaultWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoreFile != DefaultConfig().StoreFile {
		t.Fatalf("StoreFile = %q, want %q", cfg.StoreFile, DefaultConfig().StoreFile)
	}
	if cfg.RequireShortDesc {
		t.Fatal("RequireShortDesc = true, want false (permissive by default)")
	}
	if cfg.ListSort != SortStored {
		t.Fatalf("ListSort = %q, want %q", cfg.ListSort, SortStored)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	content := `{"store_file": "todo.json", "show_created": true, "list_sort": "desc", "require_short_desc": true}`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoreFile != "todo.json" {
		t.Errorf("StoreFile = %q, want %q", cfg.StoreFile, "todo.json")
	}
	if !cfg.ShowCreated {
		t.Error("ShowCreated = false, want true")
	}
	if cfg.ListSort != SortDesc {
		t.Errorf("ListSort = %q, want %q", cfg.ListSort, SortDesc)
	}
	if !cfg.RequireShortDesc {
		t.Error("RequireShortDesc = false, want true")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q (default)", cfg.LogLevel, "warn")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{not json}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatalf("Load() expected error, got nil")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad sort", `{"list_sort": "priority"}`},
		{"bad log level", `{"log_level": "loud"}`},
		{"store file with path", `{"store_file": "../todos.json"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			_, err := Load(tmpDir)
			if !errors.Is(err, errors.ErrInvalidRequest) {
				t.Fatalf("Load() error = %v, want INVALID_REQUEST", err)
			}
		})
	}
}

func TestLoad_DisabledTools(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(`{"disabled_tools": ["todo_clear", "todo_remove"]}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.DisabledTools) != 2 {
		t.Fatalf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
	if cfg.DisabledTools[0] != "todo_clear" {
		t.Errorf("DisabledTools[0] = %q, want %q", cfg.DisabledTools[0], "todo_clear")
	}
	if cfg.DisabledTools[1] != "todo_remove" {
		t.Errorf("DisabledTools[1] = %q, want %q", cfg.DisabledTools[1], "todo_remove")
	}
}

func TestLoadWithRepo_BothPresent(t *testing.T) {
	globalDir := t.TempDir()
	repoRoot := t.TempDir()

	globalConfig := `{"store_file": "global.json", "show_created": true, "disabled_tools": ["todo_clear"]}`
	if err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(globalConfig), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	writeRepoConfig(t, repoRoot, `{"store_file": "repo.json", "disabled_tools": ["todo_remove"]}`)

	cfg, err := LoadWithRepo(globalDir, repoRoot)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}

	// Repo overrides scalar
	if cfg.StoreFile != "repo.json" {
		t.Errorf("StoreFile = %q, want %q (repo override)", cfg.StoreFile, "repo.json")
	}
	// Global boolean survives
	if !cfg.ShowCreated {
		t.Error("ShowCreated = false, want true (from global)")
	}
	// Arrays merged
	if len(cfg.DisabledTools) != 2 {
		t.Errorf("DisabledTools length = %d, want 2", len(cfg.DisabledTools))
	}
}

func TestLoadWithRepo_OnlyGlobal(t *testing.T) {
	globalDir := t.TempDir()
	repoDir := t.TempDir() // No config file

	if err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(`{"list_sort": "desc"}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadWithRepo(globalDir, repoDir)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}
	if cfg.ListSort != SortDesc {
		t.Errorf("ListSort = %q, want %q", cfg.ListSort, SortDesc)
	}
}

func TestLoadWithRepo_NoGlobalDir(t *testing.T) {
	repoRoot := t.TempDir()
	writeRepoConfig(t, repoRoot, `{"require_short_desc": true}`)

	cfg, err := LoadWithRepo("", repoRoot)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}
	if !cfg.RequireShortDesc {
		t.Error("RequireShortDesc = false, want true")
	}
	if cfg.StoreFile != DefaultConfig().StoreFile {
		t.Errorf("StoreFile = %q, want default", cfg.StoreFile)
	}
}

func TestLoadWithRepo_NeitherPresent(t *testing.T) {
	globalDir := t.TempDir()
	repoDir := t.TempDir()

	cfg, err := LoadWithRepo(globalDir, repoDir)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}

	// All defaults
	if cfg.StoreFile != ".todos.json" {
		t.Errorf("StoreFile = %q, want %q", cfg.StoreFile, ".todos.json")
	}
	if len(cfg.DisabledTools) != 0 {
		t.Errorf("DisabledTools = %v, want empty", cfg.DisabledTools)
	}
}

func TestLoadWithRepo_InvalidRepoValue(t *testing.T) {
	repoRoot := t.TempDir()
	writeRepoConfig(t, repoRoot, `{"list_sort": "random"}`)

	if _, err := LoadWithRepo(t.TempDir(), repoRoot); err == nil {
		t.Fatal("LoadWithRepo() expected error, got nil")
	}
}

func TestMerge_ScalarOverride(t *testing.T) {
	base := &Config{StoreFile: "base.json", LogLevel: "info"}
	overlay := &Config{StoreFile: "overlay.json"} // LogLevel is empty (zero value)

	result := Merge(base, overlay)

	if result.StoreFile != "overlay.json" {
		t.Errorf("StoreFile = %q, want %q (overlay)", result.StoreFile, "overlay.json")
	}
	if result.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q (base, overlay is empty)", result.LogLevel, "info")
	}
}

func TestMerge_BooleanOr(t *testing.T) {
	base := &Config{RequireShortDesc: true}
	overlay := &Config{RequireShortDesc: false, ShowCreated: true}

	result := Merge(base, overlay)

	if !result.RequireShortDesc {
		t.Error("RequireShortDesc should be true (base OR overlay)")
	}
	if !result.ShowCreated {
		t.Error("ShowCreated should be true (base OR overlay)")
	}
}

func TestMerge_ArrayMergeDedup(t *testing.T) {
	base := &Config{DisabledTools: []string{"todo_clear", "todo_remove"}}
	overlay := &Config{DisabledTools: []string{" todo_remove ", "todo_update", ""}}

	result := Merge(base, overlay)

	if len(result.DisabledTools) != 3 {
		t.Errorf("DisabledTools length = %d, want 3 (merged, deduped)", len(result.DisabledTools))
	}

	has := make(map[string]bool)
	for _, s := range result.DisabledTools {
		has[s] = true
	}
	for _, want := range []string{"todo_clear", "todo_remove", "todo_update"} {
		if !has[want] {
			t.Errorf("DisabledTools missing %q", want)
		}
	}
}

func TestFindRepoConfig_InCurrentDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeRepoConfig(t, tmpDir, `{}`)

	found := FindRepoConfig(tmpDir)
	if found != configPath {
		t.Errorf("FindRepoConfig() = %q, want %q", found, configPath)
	}
}

func TestFindRepoConfig_InParentDir(t *testing.T) {
	// Create: tmpDir/.todo/config.json
	//         tmpDir/subdir/deeper/
	tmpDir := t.TempDir()
	configPath := writeRepoConfig(t, tmpDir, `{}`)

	subdir := filepath.Join(tmpDir, "subdir", "deeper")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	found := FindRepoConfig(subdir)
	if found != configPath {
		t.Errorf("FindRepoConfig() = %q, want %q", found, configPath)
	}
}

func TestFindRepoConfig_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	if found := FindRepoConfig(tmpDir); found != "" {
		t.Errorf("FindRepoConfig() = %q, want empty string", found)
	}
	if found := FindRepoConfig(""); found != "" {
		t.Errorf("FindRepoConfig(\"\") = %q, want empty string", found)
	}
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	content := "store_file = \"todo.json\"\nlist_sort = \"desc\"\ndisabled_tools = [\"todo_clear\"]\n"
	if err := os.WriteFile(filepath.Join(tmpDir, TOMLFileName), []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoreFile != "todo.json" {
		t.Errorf("StoreFile = %q, want %q", cfg.StoreFile, "todo.json")
	}
	if cfg.ListSort != SortDesc {
		t.Errorf("ListSort = %q, want %q", cfg.ListSort, SortDesc)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "todo_clear" {
		t.Errorf("DisabledTools = %v, want [todo_clear]", cfg.DisabledTools)
	}
}

func TestLoad_JSONWinsOverTOML(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte(`{"list_sort": "stored"}`), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, TOMLFileName), []byte("list_sort = \"desc\"\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListSort != SortStored {
		t.Errorf("ListSort = %q, want %q", cfg.ListSort, SortStored)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, TOMLFileName), []byte("list_sort = \n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Fatal("Load() expected error for invalid TOML")
	}
}

func TestFindRepoConfig_TOML(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	want := filepath.Join(dir, TOMLFileName)
	if err := os.WriteFile(want, []byte("show_created = true\n"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if got := FindRepoConfig(sub); got != want {
		t.Fatalf("FindRepoConfig() = %q, want %q", got, want)
	}

	cfg, err := LoadWithRepo("", sub)
	if err != nil {
		t.Fatalf("LoadWithRepo() error = %v", err)
	}
	if !cfg.ShowCreated {
		t.Error("ShowCreated = false, want true")
	}
}
