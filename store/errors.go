package store

import "errors"

// Error kinds surfaced by every store. Controllers translate these to HTTP
// statuses; stores never retry or recover on their own.
var (
	// ErrValidation marks a malformed or out-of-range field, such as a
	// negative price or a non-positive quantity.
	ErrValidation = errors.New("validation failed")

	// ErrReference marks a foreign-key target that does not exist, such as
	// an unknown category_id on product creation.
	ErrReference = errors.New("referenced entity does not exist")

	// ErrNotFound marks a requested entity id that does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrIntegrity marks a constraint violation during a cascade or a
	// concurrent write.
	ErrIntegrity = errors.New("integrity constraint violated")
)
