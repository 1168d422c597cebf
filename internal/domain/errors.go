package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found. Cross-tenant
	// reads report it too, so callers cannot tell foreign rows from missing ones.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
)
