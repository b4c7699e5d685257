package graphalgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/graphalgo/graph"
	"github.com/hupe1980/graphalgo/internal/bitset"
	"github.com/hupe1980/graphalgo/internal/msbfs"
)

var (
	// ErrNoSources is returned when a traversal has no source nodes.
	ErrNoSources = errors.New("no source nodes")

	// ErrTooManySources is returned by RunLocal for more than 32 sources.
	ErrTooManySources = errors.New("more than 32 sources for a local run")

	// ErrUnsortedSources is returned when source ids reach a runner unsorted.
	ErrUnsortedSources = errors.New("source ids must be sorted in ascending order")

	// ErrNilConsumer is returned when no consumer is given.
	ErrNilConsumer = errors.New("consumer must not be nil")

	// ErrNilGraph is returned when no graph is given.
	ErrNilGraph = errors.New("graph must not be nil")

	// ErrInvalidDirection is returned for an unknown traversal direction.
	ErrInvalidDirection = graph.ErrInvalidDirection

	// ErrInvalidSize is matched (errors.Is) by every *InvalidSizeError.
	ErrInvalidSize = bitset.ErrInvalidSize
)

// InvalidSourceError indicates a source id that is not a node of the graph
// or that was given more than once.
type InvalidSourceError struct {
	NodeID int64
	Reason string
}

func (e *InvalidSourceError) Error() string {
	return fmt.Sprintf("invalid source %d: %s", e.NodeID, e.Reason)
}

// InvalidSizeError indicates that the traversal bitsets cannot be allocated
// for the graph, either because the node count is not positive or because
// the memory budget or the runtime refused the allocation.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InvalidSizeError struct {
	NodeCount int64
	cause     error
}

func (e *InvalidSizeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("cannot size traversal state for %d nodes: %v", e.NodeCount, e.cause)
	}
	return fmt.Sprintf("cannot size traversal state for %d nodes", e.NodeCount)
}

func (e *InvalidSizeError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidSize.
func (e *InvalidSizeError) Is(target error) bool { return target == ErrInvalidSize }

// ChunkPanicError is returned when the consumer panics. The panic aborts
// the whole run.
type ChunkPanicError = msbfs.ChunkPanicError

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var se *bitset.InvalidSizeError
	if errors.As(err, &se) {
		return &InvalidSizeError{NodeCount: se.NodeCount, cause: err}
	}

	if errors.Is(err, msbfs.ErrNoSources) {
		return fmt.Errorf("%w: %w", ErrNoSources, err)
	}
	if errors.Is(err, msbfs.ErrTooManySources) {
		return fmt.Errorf("%w: %w", ErrTooManySources, err)
	}
	if errors.Is(err, msbfs.ErrUnsortedSources) {
		return fmt.Errorf("%w: %w", ErrUnsortedSources, err)
	}

	return err
}
