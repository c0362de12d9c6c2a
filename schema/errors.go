package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the root of every lookup failure; match it with errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrTagNotFound indicates the referenced tag does not exist.
	ErrTagNotFound = fmt.Errorf("tag %w", ErrNotFound)
	// ErrOutputNotFound indicates the referenced output is not connected.
	ErrOutputNotFound = fmt.Errorf("output %w", ErrNotFound)
	// ErrWindowNotFound indicates the referenced window is not mapped.
	ErrWindowNotFound = fmt.Errorf("window %w", ErrNotFound)
	// ErrOutputExists indicates an output with the same name is already connected.
	ErrOutputExists = errors.New("output already connected")
	// ErrInvalidRequest indicates a malformed request payload.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrServiceClosed indicates the main loop has stopped.
	ErrServiceClosed = errors.New("service closed")
	// ErrSessionClosed indicates a signal session was disconnected.
	ErrSessionClosed = errors.New("session closed")
)
