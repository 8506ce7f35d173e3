package minivec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is the cause of every panic raised by Get, At, Set and
	// Remove for an index outside [0, Size()).
	ErrInvalidIndex = errors.New("minivec: invalid index")
	// ErrAllocation is the cause of every panic raised when backing storage
	// cannot be allocated.
	ErrAllocation = errors.New("minivec: allocation failed")
)

// IndexError is the panic value for an out-of-range access.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("minivec: index %d out of range [0:%d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// AllocError is the panic value for an allocation that cannot be satisfied.
type AllocError struct {
	Elems    int // requested element slots
	ElemSize int // bytes per slot
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("minivec: cannot allocate %d slots of %d bytes", e.Elems, e.ElemSize)
}

func (e *AllocError) Unwrap() error { return ErrAllocation }
