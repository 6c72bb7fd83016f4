package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a todo error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrCancelled      ErrorCode = "CANCELLED"       // 499
	ErrPersistence    ErrorCode = "PERSISTENCE"     // 500
	ErrSelection      ErrorCode = "SELECTION"       // 500
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// Persistence failure kinds, reported in Details["kind"].
const (
	KindUnreadable = "unreadable"
	KindMalformed  = "malformed"
	KindEncode     = "encode"
	KindWrite      = "write"
)

// TodoError represents a structured error with code, status, and details.
type TodoError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *TodoError) Unwrap() error {
	return e.Err
}

// NewInvalidRequest creates a 400 error for invalid input.
func NewInvalidRequest(msg string) *TodoError {
	return &TodoError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a todo id is not in the collection.
func NewNotFound(id string) *TodoError {
	return &TodoError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("todo not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewFileNotFound creates a 404 error for a missing import file.
func NewFileNotFound(path string) *TodoError {
	return &TodoError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewCancelled creates an error for a prompt the user aborted.
func NewCancelled(what string) *TodoError {
	return &TodoError{
		Code:    ErrCancelled,
		Status:  499,
		Message: fmt.Sprintf("%s cancelled", what),
	}
}

// NewUnreadable creates a persistence error for a store file that exists but cannot be read.
func NewUnreadable(path string, err error) *TodoError {
	return newPersistence(KindUnreadable, path, "failed to read todo file", err)
}

// NewMalformed creates a persistence error for a store file that does not parse as a collection.
func NewMalformed(path string, err error) *TodoError {
	return newPersistence(KindMalformed, path, "malformed todo file", err)
}

// NewEncodeFailed creates a persistence error for a collection that could not be serialized.
func NewEncodeFailed(path string, err error) *TodoError {
	return newPersistence(KindEncode, path, "failed to encode todos", err)
}

// NewWriteFailed creates a persistence error for a failed write.
func NewWriteFailed(path string, err error) *TodoError {
	return newPersistence(KindWrite, path, "failed to write todo file", err)
}

func newPersistence(kind, path, msg string, err error) *TodoError {
	if err != nil {
		msg = fmt.Sprintf("%s %s: %v", msg, path, err)
	} else {
		msg = fmt.Sprintf("%s %s", msg, path)
	}
	return &TodoError{
		Code:    ErrPersistence,
		Status:  500,
		Message: msg,
		Details: map[string]any{"kind": kind, "path": path},
		Err:     err,
	}
}

// NewSelection creates an error for an edited todo that can no longer be
// located by id. This is an internal invariant violation, not a user error.
func NewSelection(id string) *TodoError {
	return &TodoError{
		Code:    ErrSelection,
		Status:  500,
		Message: fmt.Sprintf("failed to relocate todo %s in memory", id),
		Details: map[string]any{"id": id},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The cause is kept in Details for logging; Message stays generic.
func NewInternal(err error) *TodoError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &TodoError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
		Err:     err,
	}
}

// Is checks if err is, or wraps, a TodoError with the given code.
func Is(err error, code ErrorCode) bool {
	var tErr *TodoError
	if stderrors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}

// Kind returns the persistence kind of err, or "" if err is not a persistence error.
func Kind(err error) string {
	var tErr *TodoError
	if !stderrors.As(err, &tErr) || tErr.Code != ErrPersistence {
		return ""
	}
	kind, _ := tErr.Details["kind"].(string)
	return kind
}
