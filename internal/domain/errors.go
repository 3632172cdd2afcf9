package domain

import "errors"

var (
	// ErrNotFound indicates no product exists for the given id.
	ErrNotFound = errors.New("product not found")
	// ErrConflict indicates another product already carries the SKU.
	ErrConflict = errors.New("product with this SKU already exists")
	// ErrInvalidID indicates the identifier is not a valid object id.
	ErrInvalidID = errors.New("invalid product ID")
	// ErrEmptyUpdate indicates an update payload with no recognized fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrNoChanges indicates an update that the store reported as a no-op.
	ErrNoChanges = errors.New("no changes made")
)
