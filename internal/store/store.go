// Package store persists the todo collection as a single JSON file.
//
// The file lives in an explicit base directory (normally the working
// directory of the invocation) and has the shape:
//
//	{
//	  "schema_version": 1,
//	  "todos": [
//	    {
//	      "id": "01J8Z3K6Q4W9Y2B7N5M1C0XHRT",
//	      "short_desc": "Buy milk",
//	      "long_desc": "Two litres",
//	      "completed": false,
//	      "created_at": "2026-01-02T15:04:05.123456789Z"
//	    }
//	  ]
//	}
//
// The whole collection is read and written at once. Writes go to a temp
// file that is renamed over the target, so a failed save leaves the
// previous file intact. There is no locking between processes.
package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/hpungsan/todo/internal/errors"
	"github.com/hpungsan/todo/internal/todo"
)

// DefaultFileName is the store file name used when none is configured.
const DefaultFileName = ".todos.json"

// SchemaVersion is the current file format version.
const SchemaVersion = 1

const schemaURL = "https://github.com/hpungsan/todo/schema/todos.json"

//go:embed schema.json
var schemaJSON string

// compiledSchema compiles the embedded schema once per process.
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// File is the on-disk document.
type File struct {
	SchemaVersion int         `json:"schema_version"`
	Todos         []todo.Task `json:"todos"`
}

// Store is a handle on one todo file.
type Store struct {
	dir    string
	name   string
	log    *slog.Logger
	schema *jsonschema.Schema
}

// Option configures a Store.
type Option func(*Store)

// WithFileName overrides DefaultFileName.
func WithFileName(name string) Option {
	return func(s *Store) {
		s.name = name
	}
}

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Store for the todo file inside dir.
// The dir parameter allows tests to use t.TempDir() instead of the working directory.
func New(dir string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.NewInvalidRequest("store directory must not be empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("resolve store directory: %w", err))
	}

	s := &Store{
		dir:  abs,
		name: DefaultFileName,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.name = strings.TrimSpace(s.name)
	if s.name == "" {
		s.name = DefaultFileName
	}
	if filepath.Base(s.name) != s.name || s.name == "." || s.name == ".." {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("store file must be a plain file name, got %q", s.name))
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("compile store schema: %w", err))
	}
	s.schema = schema

	return s, nil
}

// Dir returns the resolved base directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of the todo file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.name)
}

// Logger returns the store's logger.
func (s *Store) Logger() *slog.Logger {
	return s.log
}

// Exists reports whether the todo file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads the whole collection. A missing file is an empty collection.
func (s *Store) Load() ([]todo.Task, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			s.log.Debug("todo file not found, starting empty", "path", path)
			return []todo.Task{}, nil
		}
		return nil, errors.NewUnreadable(path, err)
	}

	tasks, err := s.decode(data)
	if err != nil {
		return nil, errors.NewMalformed(path, err)
	}

	s.log.Debug("loaded todos", "path", path, "count", len(tasks))
	return tasks, nil
}

// Save overwrites the todo file with tasks, creating it if needed.
func (s *Store) Save(tasks []todo.Task) error {
	path := s.Path()

	if err := checkUniqueIDs(tasks); err != nil {
		return errors.NewEncodeFailed(path, err)
	}

	data, err := Encode(tasks)
	if err != nil {
		return errors.NewEncodeFailed(path, err)
	}

	if err := WriteFileAtomic(path, data, 0644); err != nil {
		return errors.NewWriteFailed(path, err)
	}

	s.log.Debug("saved todos", "path", path, "count", len(tasks))
	return nil
}

// Encode serializes tasks in the store file format with 2-space indentation
// and a trailing newline.
func Encode(tasks []todo.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []todo.Task{}
	}
	data, err := json.MarshalIndent(File{SchemaVersion: SchemaVersion, Todos: tasks}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// decode parses and validates a store document.
func (s *Store) decode(data []byte) ([]todo.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := checkUniqueIDs(f.Todos); err != nil {
		return nil, err
	}

	if f.Todos == nil {
		f.Todos = []todo.Task{}
	}
	return f.Todos, nil
}

// checkUniqueIDs enforces one task per id.
func checkUniqueIDs(tasks []todo.Task) error {
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			return fmt.Errorf("duplicate todo id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// schemaError reduces a jsonschema validation error to its first leaf cause.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	leaf := firstLeaf(ve)
	location := leaf.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Errorf("schema: %s: %s", location, leaf.Message)
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
