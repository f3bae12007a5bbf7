package store

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict indicates a profile update carried a stale
	// version; the caller should re-read and retry.
	ErrVersionConflict = errors.New("profile version conflict")

	// ErrDuplicateResult indicates a result already exists for the
	// (assessment, user) pair.
	ErrDuplicateResult = errors.New("assessment result already recorded")
)
