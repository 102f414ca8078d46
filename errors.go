package slotlist

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index references a slot that was never allocated.
	ErrOutOfRange = errors.New("index out of range")

	// ErrRemoved is returned when a SlotArray index points at a removed slot.
	ErrRemoved = errors.New("item was removed")

	// ErrInvalidHandle is returned when a handle's index lies outside the list.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrAlreadyRemoved is returned when a handle's version no longer matches its slot.
	ErrAlreadyRemoved = errors.New("item has already been removed")

	// ErrNotFound is returned by GenerationalList lookups on handles that fail Contains.
	ErrNotFound = errors.New("item not found")
)

// IndexError describes a failed SlotArray operation on a raw index.
//
// The sentinel (ErrOutOfRange or ErrRemoved) can be matched via errors.Is.
type IndexError struct {
	Op    string
	Index int
	End   int // logical length of the array at the time of the call
	cause error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d (end %d): %v", e.Op, e.Index, e.End, e.cause)
}

func (e *IndexError) Unwrap() error { return e.cause }

// HandleError describes a failed GenerationalList operation on a handle.
//
// Current holds the slot's version when the handle's index was in range.
// The sentinel (ErrInvalidHandle, ErrAlreadyRemoved or ErrNotFound) can be
// matched via errors.Is.
type HandleError struct {
	Op      string
	Handle  Handle
	Current uint32
	cause   error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("%s handle %s: %v", e.Op, e.Handle, e.cause)
}

func (e *HandleError) Unwrap() error { return e.cause }
