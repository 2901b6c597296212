package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"taskcli/internal/service"
)

//go:embed task.schema.json
var schemaJSON string

const schemaURL = "taskcli://task-store.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add task schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// ValidationError is a single structural violation in the task store.
type ValidationError struct {
	Path string // e.g. "[2].status"
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// validateDocument checks raw JSON against the task schema.
// Returns nil when the document is valid, otherwise every violation found.
func validateDocument(data []byte) []error {
	schema, err := compiledSchema()
	if err != nil {
		return []error{err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return []error{&ValidationError{Err: err}}
	}

	if err := schema.Validate(doc); err != nil {
		var errs []error
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			collectSchemaErrors(&errs, ve)
		} else {
			errs = append(errs, err)
		}
		return errs
	}
	return nil
}

// validateTasks runs the schema plus the checks a schema cannot express:
// unique ids and timestamps that were actually set.
func validateTasks(tasks []service.Task, data []byte) []error {
	errs := validateDocument(data)
	errs = append(errs, checkUniqueIDs(tasks)...)

	for i, t := range tasks {
		path := fmt.Sprintf("[%d]", i)
		if t.CreatedAt.IsZero() {
			errs = append(errs, &ValidationError{Path: path + ".createdAt", Err: errors.New("missing required field")})
		}
		if t.UpdatedAt.IsZero() {
			errs = append(errs, &ValidationError{Path: path + ".updatedAt", Err: errors.New("missing required field")})
		}
	}
	return errs
}

// checkUniqueIDs reports every task whose id was already used earlier in tasks.
func checkUniqueIDs(tasks []service.Task) []error {
	var errs []error
	seen := make(map[int]int, len(tasks))
	for i, t := range tasks {
		if j, dup := seen[t.ID]; dup {
			errs = append(errs, &ValidationError{
				Path: fmt.Sprintf("[%d].id", i),
				Err:  fmt.Errorf("duplicate id %d (also at [%d])", t.ID, j),
			})
			continue
		}
		seen[t.ID] = i
	}
	return errs
}

func collectSchemaErrors(errs *[]error, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath turns "/2/status" into "[2].status".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
