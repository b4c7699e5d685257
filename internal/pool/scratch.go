package pool

import (
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/graphalgo/internal/bitset"
)

// Scratch holds the bitsets a worker needs to run one chunk.
type Scratch struct {
	Frontier *bitset.PackedBitset
	Dual     *bitset.DualPackedBitset

	uses int
}

// Uses returns how many chunks this scratch has served.
func (s *Scratch) Uses() int {
	return s.uses
}

// SizeInBytes returns the memory held by the scratch.
func (s *Scratch) SizeInBytes() int64 {
	return s.Frontier.SizeInBytes() + s.Dual.SizeInBytes()
}

func (s *Scratch) release() {
	s.Frontier.Release()
	s.Dual.Release()
}

// Pool hands out worker-keyed scratch.
//
// Get for a given worker must only be called from the goroutine that owns
// that worker index. Different workers may call Get concurrently.
type Pool struct {
	nodeCount int64
	optFns    []func(o *bitset.Options)
	slots     []*Scratch

	allocated atomic.Int64
	bytes     atomic.Int64
}

// New creates a Pool for workers workers on a graph with nodeCount nodes.
// No bitset is allocated until the first Get.
func New(nodeCount int64, workers int, optFns ...func(o *bitset.Options)) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		nodeCount: nodeCount,
		optFns:    optFns,
		slots:     make([]*Scratch, workers),
	}
}

// Get returns the scratch of worker, allocating it on first use.
func (p *Pool) Get(worker int) (*Scratch, error) {
	if worker < 0 || worker >= len(p.slots) {
		return nil, fmt.Errorf("pool: worker %d out of range [0, %d)", worker, len(p.slots))
	}

	s := p.slots[worker]
	if s == nil {
		frontier, err := bitset.NewPacked(p.nodeCount, p.optFns...)
		if err != nil {
			return nil, err
		}
		dual, err := bitset.NewDual(p.nodeCount, p.optFns...)
		if err != nil {
			frontier.Release()
			return nil, err
		}

		s = &Scratch{Frontier: frontier, Dual: dual}
		p.slots[worker] = s
		p.allocated.Add(1)
		p.bytes.Add(s.SizeInBytes())
	}

	s.uses++
	return s, nil
}

// Release frees every allocated scratch. The Pool must not be used
// afterwards and no worker may hold a scratch.
func (p *Pool) Release() {
	for i, s := range p.slots {
		if s != nil {
			s.release()
			p.slots[i] = nil
		}
	}
	p.allocated.Store(0)
	p.bytes.Store(0)
}

// Stats describes the memory held by a Pool.
type Stats struct {
	Workers   int
	Allocated int
	Bytes     int64
}

// Stats returns current statistics about this Pool.
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:   len(p.slots),
		Allocated: int(p.allocated.Load()),
		Bytes:     p.bytes.Load(),
	}
}
