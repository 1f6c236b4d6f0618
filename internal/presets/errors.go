package presets

import "errors"

var (
	// ErrNotFound is returned when no preset matches the program and name.
	ErrNotFound = errors.New("preset not found")
	// ErrInvalidName is returned for blank preset names.
	ErrInvalidName = errors.New("preset name is required")
	// ErrSchemaMismatch indicates the database was created by an
	// incompatible version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
	// ErrLocked is returned when another writer holds the database lock.
	ErrLocked = errors.New("preset database is locked by another process")
)
