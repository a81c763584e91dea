// Package process provides the types and the raw memory interface used to
// talk to a foreign process.
package process

import "errors"

var (
	// ErrAddressNotMapped is returned when a memory address is not found within any mapped region of a process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrProcessNotOpen is returned when an operation requiring an open process is attempted
	// before the process has been successfully opened or after it has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrShortRead is returned when the OS transferred fewer bytes than requested.
	ErrShortRead = errors.New("short read")

	// ErrShortWrite is returned when the OS wrote fewer bytes than requested.
	ErrShortWrite = errors.New("short write")

	ErrReadOnly = errors.New("memory is read-only")
)
