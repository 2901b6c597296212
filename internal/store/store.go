// Package store implements service.Service on top of a single JSON file.
//
// The file holds the whole task collection as a pretty-printed array. Every
// operation runs one load, mutate, save cycle under an exclusive lock on a
// sidecar "<file>.lock", and every save replaces the file atomically.
package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"taskcli/internal/logging"
	"taskcli/internal/service"
)

const (
	// DefaultLockTimeout bounds how long an operation waits for the lock.
	DefaultLockTimeout = 5 * time.Second

	filePerm = 0o644
)

// Store implements service.Service using a local JSON file.
type Store struct {
	path        string
	logger      *log.Logger
	now         func() time.Time
	lockTimeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLockTimeout sets how long operations wait for the store lock.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// New creates a Store backed by the file at path.
// The file is not touched until the first operation.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:        path,
		logger:      logging.Discard(),
		now:         time.Now,
		lockTimeout: DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

var _ service.Service = (*Store)(nil)

// Load returns every task in the store.
//
// A missing file is created holding an empty array, and an empty or
// whitespace-only file is rewritten to one. A file that does not parse, or
// parses but fails validation, yields an empty slice and an ErrMalformed
// error; the file is left untouched.
func (s *Store) Load(ctx context.Context) ([]service.Task, error) {
	unlock, err := s.acquire(ctx, "load")
	if err != nil {
		return []service.Task{}, err
	}
	defer unlock()
	return s.load("load")
}

// Save replaces the store contents with tasks.
// Structurally invalid input is rejected with ErrInvalidStore and nothing is written.
func (s *Store) Save(ctx context.Context, tasks []service.Task) error {
	unlock, err := s.acquire(ctx, "save")
	if err != nil {
		return err
	}
	defer unlock()
	return s.save("save", tasks)
}

// IsUnique reports whether no task already has both description and author.
// Comparison is exact and case-sensitive.
func IsUnique(tasks []service.Task, description, author string) bool {
	for _, t := range tasks {
		if t.Description == description && t.Author == author {
			return false
		}
	}
	return true
}

// NextID returns max(id)+1, or 1 for an empty store.
func NextID(tasks []service.Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// List implements service.Service.
// A malformed store returns an empty result together with the ErrMalformed error.
func (s *Store) List(ctx context.Context, status service.Status) ([]service.Task, error) {
	tasks, err := s.Load(ctx)
	if err != nil {
		return []service.Task{}, err
	}
	if status == "" {
		return tasks, nil
	}

	filtered := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Add implements service.Service.
func (s *Store) Add(ctx context.Context, description, author string) (service.Task, error) {
	description = strings.TrimSpace(description)
	author = strings.TrimSpace(author)
	if description == "" {
		return service.Task{}, service.NewError("add", service.ErrValidation, "description is required and cannot be empty")
	}
	if author == "" {
		return service.Task{}, service.NewError("add", service.ErrValidation, "author is required and cannot be empty")
	}

	var created service.Task
	err := s.mutate(ctx, "add", func(tasks []service.Task) ([]service.Task, error) {
		if !IsUnique(tasks, description, author) {
			return nil, service.NewError("add", service.ErrDuplicate, "%q by %q", description, author)
		}
		now := s.timestamp()
		created = service.Task{
			ID:          NextID(tasks),
			Description: description,
			Author:      author,
			Status:      service.StatusTodo,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return append(tasks, created), nil
	})
	if err != nil {
		return service.Task{}, err
	}
	return created, nil
}

// Delete implements service.Service.
// An unknown id returns ErrNotFound and leaves the file alone.
func (s *Store) Delete(ctx context.Context, id int) error {
	return s.mutate(ctx, "delete", func(tasks []service.Task) ([]service.Task, error) {
		kept := make([]service.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			return nil, notFound("delete", id)
		}
		return kept, nil
	})
}

// Update implements service.Service.
func (s *Store) Update(ctx context.Context, id int, description string) (service.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return service.Task{}, service.NewError("update", service.ErrValidation, "description is required and cannot be empty")
	}
	return s.modify(ctx, "update", id, func(t *service.Task) {
		t.Description = description
	})
}

// MarkStatus implements service.Service.
func (s *Store) MarkStatus(ctx context.Context, id int, status service.Status) (service.Task, error) {
	if !status.Valid() {
		return service.Task{}, service.NewError("mark", service.ErrValidation, "unknown status %q", status)
	}
	return s.modify(ctx, "mark", id, func(t *service.Task) {
		t.Status = status
	})
}

// modify applies fn to the task with id and refreshes its updatedAt.
// An unknown id returns ErrNotFound without rewriting the file.
func (s *Store) modify(ctx context.Context, op string, id int, fn func(*service.Task)) (service.Task, error) {
	var updated service.Task
	err := s.mutate(ctx, op, func(tasks []service.Task) ([]service.Task, error) {
		for i := range tasks {
			if tasks[i].ID == id {
				fn(&tasks[i])
				tasks[i].UpdatedAt = s.timestamp()
				updated = tasks[i]
				return tasks, nil
			}
		}
		return nil, notFound(op, id)
	})
	if err != nil {
		return service.Task{}, err
	}
	return updated, nil
}

// mutate runs one locked load, change, save cycle.
// When fn returns an error nothing is written. A malformed store is never
// mutated, so an unreadable file is not replaced by a rebuilt one.
func (s *Store) mutate(ctx context.Context, op string, fn func([]service.Task) ([]service.Task, error)) error {
	unlock, err := s.acquire(ctx, op)
	if err != nil {
		return err
	}
	defer unlock()

	tasks, err := s.load(op)
	if err != nil {
		return err
	}
	next, err := fn(tasks)
	if err != nil {
		return err
	}
	return s.save(op, next)
}

func (s *Store) load(op string) ([]service.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("creating task store", "path", s.path)
		if err := writeFileAtomic(s.path, emptyDocument, filePerm); err != nil {
			return []service.Task{}, &service.Error{Op: op, Kind: service.ErrStorage, Err: err}
		}
		return []service.Task{}, nil
	}
	if err != nil {
		return []service.Task{}, &service.Error{Op: op, Kind: service.ErrStorage, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Debug("resetting empty task store", "path", s.path)
		if err := writeFileAtomic(s.path, emptyDocument, filePerm); err != nil {
			return []service.Task{}, &service.Error{Op: op, Kind: service.ErrStorage, Err: err}
		}
		return []service.Task{}, nil
	}

	tasks, err := decodeTasks(data)
	if err != nil {
		s.logger.Warn("task store does not parse", "path", s.path, "err", err)
		return []service.Task{}, &service.Error{Op: op, Kind: service.ErrMalformed, Err: err}
	}
	errs := validateDocument(data)
	errs = append(errs, checkUniqueIDs(tasks)...)
	if len(errs) > 0 {
		for _, e := range errs {
			s.logger.Warn("task store is invalid", "path", s.path, "err", e)
		}
		return []service.Task{}, &service.Error{Op: op, Kind: service.ErrMalformed, Err: errors.Join(errs...)}
	}

	s.logger.Debug("task store loaded", "path", s.path, "tasks", len(tasks))
	return tasks, nil
}

func (s *Store) save(op string, tasks []service.Task) error {
	data, err := encodeTasks(tasks)
	if err != nil {
		return &service.Error{Op: op, Kind: service.ErrInvalidStore, Err: err}
	}
	if errs := validateTasks(tasks, data); len(errs) > 0 {
		for _, e := range errs {
			s.logger.Warn("refusing to save invalid task", "path", s.path, "err", e)
		}
		return &service.Error{Op: op, Kind: service.ErrInvalidStore, Err: errors.Join(errs...)}
	}

	if err := writeFileAtomic(s.path, data, filePerm); err != nil {
		return &service.Error{Op: op, Kind: service.ErrStorage, Err: err}
	}
	s.logger.Debug("task store saved", "path", s.path, "tasks", len(tasks))
	return nil
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// timestamp returns the current time in UTC, truncated to milliseconds so
// that values survive a round trip through the file unchanged.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func notFound(op string, id int) error {
	return service.NewError(op, service.ErrNotFound, "id %d", id)
}
