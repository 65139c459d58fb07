package adapter

import "errors"

var (
	// ErrTransport wraps every network or HTTP-level failure of the
	// adapter. The core never retries; the caller decides what to do.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidAddress indicates the companion address could not be
	// parsed into a usable base URL.
	ErrInvalidAddress = errors.New("invalid companion address")
)
