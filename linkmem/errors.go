package linkmem

import (
	"fmt"
)

type linkError string

var _ error = linkError("")

func (err linkError) Error() string {
	return string(err)
}

const (
	ErrNotBound             = linkError("link is not bound")
	ErrAlreadyBound         = linkError("link is already bound")
	ErrSourceNotBound       = linkError("source link is not bound")
	ErrDestinationNotBound  = linkError("destination link is not bound")
	ErrDestinationReadOnly  = linkError("destination link is read-only")
	ErrInvalidContextLength = linkError("invalid context length")
	ErrInvalidName          = linkError("invalid segment name")
	ErrInvalidConfig        = linkError("invalid configuration")
	ErrSegmentTooSmall      = linkError("segment is smaller than the link record")
)

// BindReason classifies why a segment lookup failed.
type BindReason int

const (
	OtherFailure BindReason = iota
	NotFound
	PermissionDenied
)

func (r BindReason) String() string {
	switch r {
	case NotFound:
		return "segment not found"
	case PermissionDenied:
		return "permission denied"
	default:
		return "os error"
	}
}

// BindError is returned by Bind when the named segment could not be opened.
// The producer may simply not be running yet; callers can retry.
type BindError struct {
	Name   string
	Path   string
	Reason BindReason
	Err    error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s (%s): %s: %v", e.Name, e.Path, e.Reason, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// MapError is returned by Bind when the segment was opened but could not be
// mapped into the address space.
type MapError struct {
	Name string
	Path string
	Err  error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("map %s (%s): %v", e.Name, e.Path, e.Err)
}

func (e *MapError) Unwrap() error {
	return e.Err
}

// ContextLengthError reports a context length beyond ContextCapacity.
type ContextLengthError struct {
	Length uint64
}

func (e *ContextLengthError) Error() string {
	return fmt.Sprintf("%s: %d exceeds capacity %d", ErrInvalidContextLength, e.Length, ContextCapacity)
}

func (e *ContextLengthError) Unwrap() error {
	return ErrInvalidContextLength
}
