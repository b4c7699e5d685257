package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is matched (errors.Is) by every *InvalidSizeError.
	ErrInvalidSize = errors.New("invalid bitset size")

	// ErrUnsortedSources is returned when explicit source ids are not strictly ascending.
	ErrUnsortedSources = errors.New("source ids must be sorted in ascending order")

	// ErrSourceCount is returned when a seed operation gets fewer than 1 or more than 32 sources.
	ErrSourceCount = errors.New("source count must be in [1, 32]")

	// ErrSourceOutOfRange is returned when a seeded source id is not a node of the bitset.
	ErrSourceOutOfRange = errors.New("source id out of range")
)

// InvalidSizeError indicates that a bitset cannot be created for the requested
// node count, either because the count is not positive or because the
// allocation failed or exceeded the memory budget.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InvalidSizeError struct {
	NodeCount int64
	cause     error
}

func (e *InvalidSizeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid node count: %d: %v", e.NodeCount, e.cause)
	}
	return fmt.Sprintf("invalid node count: %d", e.NodeCount)
}

func (e *InvalidSizeError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidSize.
func (e *InvalidSizeError) Is(target error) bool { return target == ErrInvalidSize }
