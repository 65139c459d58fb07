package service

import "errors"

var (
	// ErrDisconnected is the protocol-state error for operations that
	// require at least one prior Connect (e.g. Associate on a fresh
	// connection). No state is mutated when it is returned.
	ErrDisconnected = errors.New("disconnected")

	// ErrNotAssociated is the protocol-state error for queries issued
	// before a shared key and client id exist. The reference behavior
	// silently returned nothing here; surfacing the precondition is an
	// intentional change.
	ErrNotAssociated = errors.New("not associated")

	// ErrAssociationRejected means the companion refused to register the
	// submitted key. The wrapped message carries the companion's reason
	// when it supplied one.
	ErrAssociationRejected = errors.New("association rejected")

	// ErrQueryRejected means the companion refused a credential query.
	ErrQueryRejected = errors.New("query rejected")

	// ErrInvalidConnectionInfo means a persisted bundle carried only one
	// half of an association; client id and key only travel together.
	ErrInvalidConnectionInfo = errors.New("invalid connection info")
)
