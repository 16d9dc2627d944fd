package todo

import "errors"

var (
	// ErrEmptyTitle is returned when a title is empty after trimming
	ErrEmptyTitle = errors.New("title is required")

	// ErrNotFound is returned when no task has the requested id
	ErrNotFound = errors.New("task not found")

	// ErrInvalidFormat is returned when a document is not a list of tasks
	ErrInvalidFormat = errors.New("invalid task document")

	// ErrStorageWrite is returned when the task list could not be persisted.
	// The in-memory list is left as it was before the failed operation.
	ErrStorageWrite = errors.New("saving tasks failed")
)
