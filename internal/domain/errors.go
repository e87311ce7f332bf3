package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the requested champion does not exist
	ErrNotFound = errors.New("champion not found")

	// ErrNetwork indicates the catalog server was unreachable or answered with an error status
	ErrNetwork = errors.New("catalog server request failed")

	// ErrDecode indicates the catalog server answered with an unexpected payload
	ErrDecode = errors.New("unexpected catalog payload")

	// ErrPersistence indicates the flag store rejected a read or write
	ErrPersistence = errors.New("flag store operation failed")
)
