// internal/organizer/errors.go
package organizer

import "errors"

var (
	// ErrRootNotDirectory indicates the root path is missing or not a directory.
	ErrRootNotDirectory = errors.New("root is not a directory")

	// ErrDestinationExists indicates the move target already exists.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrMoveFailed indicates a file or directory could not be relocated.
	ErrMoveFailed = errors.New("failed to move")

	// ErrPathTraversal indicates a computed destination escaped the root.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrLocked indicates another run holds the lock for the same root.
	ErrLocked = errors.New("root is locked by another run")

	// ErrRollbackFailed indicates a failed run could not be fully undone.
	ErrRollbackFailed = errors.New("rollback incomplete")
)
