// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (usage, validation, duplicate, not found).
	UserError = 1

	// StoreError indicates the task store could not be read, locked or written.
	StoreError = 2
)
