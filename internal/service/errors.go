package service

import (
	"errors"
	"fmt"
)

// Error kinds shared by every backend. Match them with errors.Is.
var (
	// ErrValidation indicates a blank or otherwise invalid field.
	ErrValidation = errors.New("invalid task")

	// ErrDuplicate indicates the (description, author) pair already exists.
	ErrDuplicate = errors.New("task already exists")

	// ErrNotFound indicates no task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrMalformed indicates the stored data could not be parsed.
	ErrMalformed = errors.New("task store is malformed")

	// ErrInvalidStore indicates a write was rejected by structural validation.
	ErrInvalidStore = errors.New("task store failed validation")

	// ErrLocked indicates the store lock could not be acquired.
	ErrLocked = errors.New("task store is locked")

	// ErrStorage indicates an I/O failure in the backend.
	ErrStorage = errors.New("storage error")
)

// Error describes a failed operation.
type Error struct {
	Op   string // operation name, e.g. "add"
	Kind error  // one of the Err* kinds above
	Err  error  // underlying cause, may be nil
}

// NewError creates an Error with a formatted cause.
func NewError(op string, kind error, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
