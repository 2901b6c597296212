// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// Commands never touch the backing file directly.
type Service interface {
	// List returns tasks in store order.
	// An empty status returns every task; any other value keeps only exact
	// matches, so an unknown status yields an empty result.
	List(ctx context.Context, status Status) ([]Task, error)

	// Add creates a task with status todo.
	// Returns ErrValidation for a blank field and ErrDuplicate when the
	// (description, author) pair already exists.
	Add(ctx context.Context, description, author string) (Task, error)

	// Update replaces the description of a task.
	Update(ctx context.Context, id int, description string) (Task, error)

	// MarkStatus sets the status of a task.
	MarkStatus(ctx context.Context, id int, status Status) (Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id int) error
}
