package msbfs

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/hupe1980/graphalgo/graph"
	"github.com/hupe1980/graphalgo/internal/bitset"
)

// Consumer receives the sources that reached a node for the first time at
// the given depth. sources is only valid during the call.
type Consumer interface {
	Accept(nodeID int64, depth int, sources *SourceSet)
}

// ConsumerFunc adapts a function to Consumer.
type ConsumerFunc func(nodeID int64, depth int, sources *SourceSet)

// Accept implements Consumer.
func (f ConsumerFunc) Accept(nodeID int64, depth int, sources *SourceSet) {
	f(nodeID, depth, sources)
}

// Stats summarizes a finished Runner.
type Stats struct {
	// Depth is the deepest round that delivered at least one source.
	Depth int
	// Deliveries counts Consumer calls.
	Deliveries int64
	// Visits counts (node, source) pairs reported, i.e. the sum of
	// sources.Size() over all deliveries.
	Visits int64
}

// Add accumulates o into s. Depth keeps the maximum.
func (s *Stats) Add(o Stats) {
	s.Depth = max(s.Depth, o.Depth)
	s.Deliveries += o.Deliveries
	s.Visits += o.Visits
}

// Runner executes multi-source BFS for at most 32 sources using a frontier
// and a dual bitset it owns for the duration of Run.
type Runner struct {
	rels     graph.RelationshipIterator
	dir      graph.Direction
	consumer Consumer

	frontier *bitset.PackedBitset
	dual     *bitset.DualPackedBitset

	ids    []int64
	offset int64
	length int

	sources *SourceSet
	stats   Stats

	// word is the frontier word of the node being expanded.
	word    uint32
	unionFn graph.RelationshipConsumer
}

// NewRangeRunner creates a Runner for the length consecutive sources
// starting at offset.
func NewRangeRunner(
	rels graph.RelationshipIterator,
	dir graph.Direction,
	consumer Consumer,
	frontier *bitset.PackedBitset,
	dual *bitset.DualPackedBitset,
	offset int64,
	length int,
) (*Runner, error) {
	if err := checkCount(length); err != nil {
		return nil, err
	}
	if offset < 0 || offset+int64(length) > frontier.Len() {
		return nil, fmt.Errorf("%w: range [%d, %d) exceeds %d nodes", ErrSourceOutOfRange, offset, offset+int64(length), frontier.Len())
	}

	r := newRunner(rels, dir, consumer, frontier, dual)
	r.offset, r.length = offset, length
	r.sources = newRangeSources(offset, length)
	return r, nil
}

// NewSortedRunner creates a Runner for explicit, strictly ascending source
// ids. Bit position k belongs to ids[k].
func NewSortedRunner(
	rels graph.RelationshipIterator,
	dir graph.Direction,
	consumer Consumer,
	frontier *bitset.PackedBitset,
	dual *bitset.DualPackedBitset,
	ids []int64,
) (*Runner, error) {
	if err := checkCount(len(ids)); err != nil {
		return nil, err
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			return nil, fmt.Errorf("%w: %d follows %d", ErrUnsortedSources, ids[i], ids[i-1])
		}
	}
	if ids[0] < 0 || ids[len(ids)-1] >= frontier.Len() {
		return nil, fmt.Errorf("%w: sources [%d .. %d] exceed %d nodes", ErrSourceOutOfRange, ids[0], ids[len(ids)-1], frontier.Len())
	}

	r := newRunner(rels, dir, consumer, frontier, dual)
	r.ids, r.length = ids, len(ids)
	r.sources = newSortedSources(ids)
	return r, nil
}

func newRunner(
	rels graph.RelationshipIterator,
	dir graph.Direction,
	consumer Consumer,
	frontier *bitset.PackedBitset,
	dual *bitset.DualPackedBitset,
) *Runner {
	r := &Runner{
		rels:     rels,
		dir:      dir,
		consumer: consumer,
		frontier: frontier,
		dual:     dual,
	}
	r.unionFn = func(_, target int64) bool {
		r.dual.Union(target, r.word)
		return true
	}
	return r
}

func checkCount(n int) error {
	if n < 1 {
		return ErrNoSources
	}
	if n > bitset.Width {
		return fmt.Errorf("%w: got %d", ErrTooManySources, n)
	}
	return nil
}

// Run traverses the graph until no source reaches a new node.
//
// ctx is checked before the first round and between rounds. On cancellation
// Run returns ctx.Err(); deliveries made so far are not undone.
func (r *Runner) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.seed(); err != nil {
		return err
	}

	for depth := 1; ; depth++ {
		r.expand()

		empty := r.reduce(depth)

		if !r.dual.CopyInto(r.frontier) || empty {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Stats returns the statistics of the last Run.
func (r *Runner) Stats() Stats {
	return r.stats
}

// Len returns the number of sources.
func (r *Runner) Len() int {
	return r.length
}

// String returns "MSBFS{first .. last+1 (n)}".
func (r *Runner) String() string {
	if r.ids != nil {
		return fmt.Sprintf("MSBFS{%d .. %d (%d)}", r.ids[0], r.ids[len(r.ids)-1]+1, len(r.ids))
	}
	return fmt.Sprintf("MSBFS{%d .. %d (%d)}", r.offset, r.offset+int64(r.length), r.length)
}

func (r *Runner) seed() error {
	r.stats = Stats{}
	r.frontier.Clear()

	if r.ids != nil {
		for k, id := range r.ids {
			r.frontier.SetBit(id, k)
		}
		return r.dual.SetAuxBitsSorted(r.ids)
	}

	for k := 0; k < r.length; k++ {
		r.frontier.SetBit(r.offset+int64(k), k)
	}
	return r.dual.SetAuxBitsRange(r.offset, r.length)
}

// expand unions the frontier word of every active node into the default
// lane of its neighbors.
func (r *Runner) expand() {
	r.frontier.ForEach(func(node int64, word uint32) bool {
		r.word = word
		r.rels.ForEachRelationship(node, r.dir, r.unionFn)
		return true
	})
}

// reduce delivers the newly seen sources of every node reached in this round.
// It reports whether the default lane was empty from the start.
func (r *Runner) reduce(depth int) bool {
	node := r.dual.NextSetNode(0)
	if node == bitset.Empty {
		return true
	}

	for node >= 0 {
		if diff := r.dual.UnionDifference(node); diff != 0 {
			r.sources.reset(diff)
			r.consumer.Accept(node, depth, r.sources)

			r.stats.Depth = depth
			r.stats.Deliveries++
			r.stats.Visits += int64(bits.OnesCount32(diff))
		}
		node = r.dual.NextSetNode(node + 1)
	}
	return false
}
