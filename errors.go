package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrBitmapRange is returned when a Roaring bitmap addresses a bit at or
	// beyond the requested vector length.
	ErrBitmapRange = errors.New("bitmap index out of range")
)

// ErrBitmapTooLarge reports the offending bitmap index and the requested
// length. It unwraps to ErrBitmapRange.
type ErrBitmapTooLarge struct {
	Index  uint32
	Length int
}

func (e *ErrBitmapTooLarge) Error() string {
	return fmt.Sprintf("bitmap index %d out of range for length %d", e.Index, e.Length)
}

func (e *ErrBitmapTooLarge) Unwrap() error { return ErrBitmapRange }
