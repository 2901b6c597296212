// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"taskcli/internal/service"
)

// FixedTime is the timestamp FakeService stamps on every change.
var FixedTime = time.Date(2026, 1, 2, 3, 4, 5, 678_000_000, time.UTC)

// FakeService is an in-memory implementation of service.Service for testing.
// It follows the same rules as the file store: sequential ids, trimmed
// fields, duplicate detection and not-found errors.
type FakeService struct {
	mu    sync.Mutex
	tasks []service.Task

	// Error injection for testing
	ListErr   error
	AddErr    error
	UpdateErr error
	MarkErr   error
	DeleteErr error

	// Calls counts mutating calls that reached the task list.
	Calls int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// Seed appends a task as-is, bypassing validation.
func (f *FakeService) Seed(id int, description, author string, status service.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Description: description,
		Author:      author,
		Status:      status,
		CreatedAt:   FixedTime,
		UpdatedAt:   FixedTime,
	})
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// List implements service.Service.
func (f *FakeService) List(ctx context.Context, status service.Status) ([]service.Task, error) {
	if f.ListErr != nil {
		return []service.Task{}, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]service.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		if status == "" || t.Status == status {
			result = append(result, t)
		}
	}
	return result, nil
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, description, author string) (service.Task, error) {
	if f.AddErr != nil {
		return service.Task{}, f.AddErr
	}
	description = strings.TrimSpace(description)
	author = strings.TrimSpace(author)
	if description == "" || author == "" {
		return service.Task{}, service.NewError("add", service.ErrValidation, "description and author are required")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	next := 1
	for _, t := range f.tasks {
		if t.Description == description && t.Author == author {
			return service.Task{}, service.NewError("add", service.ErrDuplicate, "%q by %q", description, author)
		}
		if t.ID >= next {
			next = t.ID + 1
		}
	}

	task := service.Task{
		ID:          next,
		Description: description,
		Author:      author,
		Status:      service.StatusTodo,
		CreatedAt:   FixedTime,
		UpdatedAt:   FixedTime,
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// Update implements service.Service.
func (f *FakeService) Update(ctx context.Context, id int, description string) (service.Task, error) {
	if f.UpdateErr != nil {
		return service.Task{}, f.UpdateErr
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return service.Task{}, service.NewError("update", service.ErrValidation, "description is required")
	}
	return f.modify("update", id, func(t *service.Task) { t.Description = description })
}

// MarkStatus implements service.Service.
func (f *FakeService) MarkStatus(ctx context.Context, id int, status service.Status) (service.Task, error) {
	if f.MarkErr != nil {
		return service.Task{}, f.MarkErr
	}
	return f.modify("mark", id, func(t *service.Task) { t.Status = status })
}

// Delete implements service.Service.
func (f *FakeService) Delete(ctx context.Context, id int) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return service.NewError("delete", service.ErrNotFound, "id %d", id)
}

func (f *FakeService) modify(op string, id int, fn func(*service.Task)) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++

	for i := range f.tasks {
		if f.tasks[i].ID == id {
			fn(&f.tasks[i])
			f.tasks[i].UpdatedAt = FixedTime.Add(time.Hour)
			return f.tasks[i], nil
		}
	}
	return service.Task{}, service.NewError(op, service.ErrNotFound, "id %d", id)
}
