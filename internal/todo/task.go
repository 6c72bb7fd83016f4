package todo

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Task is a single todo record. Fields correspond to the on-disk schema
// in internal/store/schema.json.
type Task struct {
	// ID is a ULID assigned once at creation and never reassigned
	ID string `json:"id"`

	// ShortDesc is the one-line summary shown in listings
	ShortDesc string `json:"short_desc"`

	// LongDesc is optional free-form detail (nil means not provided)
	LongDesc *string `json:"long_desc,omitempty"`

	// Completed reports whether the todo is done
	Completed bool `json:"completed"`

	// CreatedAt is set at construction and carried through every edit
	CreatedAt time.Time `json:"created_at"`
}

// New creates an incomplete task with a fresh id, created at now.
func New(shortDesc string, longDesc *string, now time.Time) (Task, error) {
	id, err := NewID(now)
	if err != nil {
		return Task{}, err
	}
	return Task{
		ID:        id,
		ShortDesc: shortDesc,
		LongDesc:  cloneString(longDesc),
		Completed: false,
		CreatedAt: now.UTC(),
	}, nil
}

// NewID generates a new ULID timestamped at now.
func NewID(now time.Time) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(now), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Same reports whether t and other are the same todo. Identity is the id alone.
func (t Task) Same(other Task) bool {
	return t.ID == other.ID
}

// Clone returns a copy of t that shares no memory with it.
func (t Task) Clone() Task {
	t.LongDesc = cloneString(t.LongDesc)
	return t
}

// HasLongDesc reports whether a long description was provided.
func (t Task) HasLongDesc() bool {
	return t.LongDesc != nil
}

// IndexOf returns the position of the task with id in tasks, or -1.
func IndexOf(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// CompletedIDs returns the ids of all completed tasks, in collection order.
func CompletedIDs(tasks []Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Clone copies a collection deeply.
func Clone(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
