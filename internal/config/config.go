package config

import (
	"encoding/json"
	stderrs "errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hpungsan/todo/internal/errors"
)

// DirName is the directory holding the config file, both under the home
// directory (global) and in a project (repo).
const DirName = ".todo"

// Config file names, in lookup order. When both exist in one directory the
// JSON file wins.
const (
	FileName     = "config.json"
	TOMLFileName = "config.toml"
)

// List sort orders.
const (
	SortStored = "stored" // collection order
	SortDesc   = "desc"   // short description, case-sensitive
)

// Config holds application configuration.
type Config struct {
	// StoreFile is the name of the todo file in the working directory.
	StoreFile string `json:"store_file,omitempty" toml:"store_file"`

	// ShowCreated adds the creation time to each listed todo.
	ShowCreated bool `json:"show_created,omitempty" toml:"show_created"`

	// ListSort is the default list order: "stored" or "desc".
	ListSort string `json:"list_sort,omitempty" toml:"list_sort"`

	// RequireShortDesc rejects blank short descriptions on add and edit.
	// Off by default: blank descriptions are stored as given.
	RequireShortDesc bool `json:"require_short_desc,omitempty" toml:"require_short_desc"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" toml:"log_level"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty" toml:"disabled_tools"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		StoreFile: ".todos.json",
		ListSort:  SortStored,
		LogLevel:  "warn",
	}
}

// Load loads configuration from baseDir/config.json (or config.toml).
// Returns default config if neither file exists.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.todo.
func Load(baseDir string) (*Config, error) {
	return loadFile(configPath(baseDir))
}

// configPath returns the config file to read in dir. When neither file
// exists it returns the JSON path, which then loads as empty.
func configPath(dir string) string {
	for _, name := range []string{FileName, TOMLFileName} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(dir, FileName)
}

// LoadWithRepo loads configuration from both global (~/.todo) and repo (.todo) directories.
// Repo config is found by walking upward from startDir to find the nearest .todo/config.{json,toml}.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing. An empty globalDir skips the global config.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global := &Config{}
	if globalDir != "" {
		var err error
		global, err = loadFileRaw(configPath(globalDir))
		if err != nil {
			return nil, err
		}
	}

	// Walk upward from startDir to find repo config
	repoConfigPath := FindRepoConfig(startDir)
	repo, err := loadFileRaw(repoConfigPath)
	if err != nil {
		return nil, err
	}

	// Apply defaults, then global, then repo
	cfg := Merge(Merge(DefaultConfig(), global), repo)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindRepoConfig walks upward from startDir to find the nearest .todo directory
// holding config.json or config.toml. Returns the path if found, or empty
// string if not found.
func FindRepoConfig(startDir string) string {
	if startDir == "" {
		return ""
	}
	dir := startDir
	for {
		for _, name := range []string{FileName, TOMLFileName} {
			p := filepath.Join(dir, DirName, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root, not found
			return ""
		}
		dir = parent
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if !slices.Contains([]string{"", SortStored, SortDesc}, c.ListSort) {
		return errors.NewInvalidRequest(fmt.Sprintf("config: list_sort must be one of: %s, %s", SortStored, SortDesc))
	}
	if !slices.Contains([]string{"", "debug", "info", "warn", "error"}, strings.ToLower(c.LogLevel)) {
		return errors.NewInvalidRequest("config: log_level must be one of: debug, info, warn, error")
	}
	if name := strings.TrimSpace(c.StoreFile); name != "" && filepath.Base(name) != name {
		return errors.NewInvalidRequest("config: store_file must be a plain file name")
	}
	return nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrs.Is(err, os.ErrNotExist) {
			// File doesn't exist, return zero config
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if filepath.Ext(path) == ".toml" {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(path string) (*Config, error) {
	cfg, err := loadFileRaw(path)
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.StoreFile = firstNonEmpty(overlay.StoreFile, base.StoreFile)
	result.ListSort = firstNonEmpty(overlay.ListSort, base.ListSort)
	result.LogLevel = firstNonEmpty(overlay.LogLevel, base.LogLevel)

	// Booleans: overlay wins if true, else base
	result.ShowCreated = base.ShowCreated || overlay.ShowCreated
	result.RequireShortDesc = base.RequireShortDesc || overlay.RequireShortDesc

	// Arrays: merge and deduplicate
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

func firstNonEmpty(a, b string) string {
	if a = strings.TrimSpace(a); a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
