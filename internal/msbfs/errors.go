package msbfs

import (
	"errors"
	"fmt"

	"github.com/hupe1980/graphalgo/internal/bitset"
)

var (
	// ErrNoSources is returned when a run has no source nodes.
	ErrNoSources = errors.New("no source nodes")

	// ErrTooManySources is returned when a single Runner gets more than 32 sources.
	ErrTooManySources = fmt.Errorf("more than %d sources in a single runner", bitset.Width)

	// ErrUnsortedSources is returned when explicit source ids are not strictly ascending.
	ErrUnsortedSources = bitset.ErrUnsortedSources

	// ErrSourceOutOfRange is returned when a source id is not a node of the graph.
	ErrSourceOutOfRange = bitset.ErrSourceOutOfRange
)

// ChunkPanicError is returned when the consumer panics while a chunk runs.
// The panic aborts the whole run.
type ChunkPanicError struct {
	Chunk int
	Value any
}

func (e *ChunkPanicError) Error() string {
	return fmt.Sprintf("consumer panicked in chunk %d: %v", e.Chunk, e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *ChunkPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
