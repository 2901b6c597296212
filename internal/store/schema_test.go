package store

import (
	"errors"
	"strings"
	"testing"
)

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/", ""},
		{"#", ""},
		{"/0", "[0]"},
		{"/2/status", "[2].status"},
		{"#/10/createdAt", "[10].createdAt"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}

	for _, tt := range tests {
		if got := jsonPointerToPath(tt.input); got != tt.want {
			t.Errorf("jsonPointerToPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	docs := []string{
		`[]`,
		`[{"id":1,"description":"a","author":"b","status":"todo","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00.123Z"}]`,
		`[{"id":7,"description":" x ","author":"y","status":"in-progress","createdAt":"2026-01-01T00:00:00+02:00","updatedAt":"2026-01-01T00:00:00Z"},
		  {"id":2,"description":"x","author":"y","status":"done","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`,
	}

	for _, doc := range docs {
		if errs := validateDocument([]byte(doc)); len(errs) != 0 {
			t.Errorf("expected %s to be valid, got %v", doc, errs)
		}
	}
}

func TestValidateDocument_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{"object root", `{}`, ""},
		{"string id", `[{"id":"1","description":"a","author":"b","status":"todo","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`, "[0].id"},
		{"fractional id", `[{"id":1.5,"description":"a","author":"b","status":"todo","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`, "[0].id"},
		{"blank description", `[{"id":1,"description":"  ","author":"b","status":"todo","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`, "[0].description"},
		{"bad status", `[{"id":1,"description":"a","author":"b","status":"Done","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}]`, "[0].status"},
		{"bad date", `[{"id":1,"description":"a","author":"b","status":"todo","createdAt":"2026-13-01","updatedAt":"2026-01-01T00:00:00Z"}]`, "[0].createdAt"},
		{"extra field", `[{"id":1,"description":"a","author":"b","status":"todo","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z","due":"soon"}]`, "[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateDocument([]byte(tt.doc))
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			var found bool
			for _, err := range errs {
				var ve *ValidationError
				if errors.As(err, &ve) && ve.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error at %q, got %v", tt.wantPath, errs)
			}
		})
	}
}

func TestValidateDocument_ReportsEveryViolation(t *testing.T) {
	doc := `[
		{"id":1,"description":"a","author":"b","status":"blocked","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"},
		{"id":2,"description":"a","author":"","status":"todo","createdAt":"2026-01-01T00:00:00Z","updatedAt":"2026-01-01T00:00:00Z"}
	]`

	errs := validateDocument([]byte(doc))
	joined := errors.Join(errs...).Error()
	for _, want := range []string{"[0].status", "[1].author"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected a violation at %s, got %s", want, joined)
		}
	}
}

func TestValidationError(t *testing.T) {
	cause := errors.New("missing required field")
	err := &ValidationError{Path: "[1].createdAt", Err: cause}

	if err.Error() != "[1].createdAt: missing required field" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected ValidationError to unwrap to its cause")
	}
	if (&ValidationError{Err: cause}).Error() != "missing required field" {
		t.Error("expected bare cause when path is empty")
	}
}
