package service

import (
	"errors"
	"testing"
)

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []Status{"", "Done", "blocked", "in_progress"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestError(t *testing.T) {
	cause := errors.New("disk full")
	err := &Error{Op: "add", Kind: ErrStorage, Err: cause}

	if err.Error() != "storage error: disk full" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrStorage) || !errors.Is(err, cause) {
		t.Error("expected Error to match both its kind and its cause")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("unexpected kind match")
	}

	bare := &Error{Op: "load", Kind: ErrLocked}
	if bare.Error() != "task store is locked" || !errors.Is(bare, ErrLocked) {
		t.Errorf("unexpected bare error %q", bare.Error())
	}
}

func TestNewError(t *testing.T) {
	err := NewError("delete", ErrNotFound, "id %d", 4)
	if err.Op != "delete" {
		t.Errorf("expected op delete, got %q", err.Op)
	}
	if err.Error() != "task not found: id 4" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
