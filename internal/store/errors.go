package store

import "errors"

var (
	// ErrAssociationNotFound means no persisted association exists for
	// the requested companion endpoint.
	ErrAssociationNotFound = errors.New("association not found")
)
