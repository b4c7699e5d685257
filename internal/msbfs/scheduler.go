package msbfs

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/graphalgo/graph"
	"github.com/hupe1980/graphalgo/internal/bitset"
	"github.com/hupe1980/graphalgo/internal/pool"
	"github.com/hupe1980/graphalgo/resource"
)

// ChunkReport describes a finished chunk.
type ChunkReport struct {
	Chunk    Chunk
	Worker   int
	Stats    Stats
	Duration time.Duration

	// BusyWorkers is the number of held worker slots of the controller,
	// including this chunk. 0 without a controller.
	BusyWorkers int64
}

// Options configures a Scheduler.
type Options struct {
	// AllNodes makes every node of the graph a source. Sources is ignored.
	AllNodes bool

	// Sources are the explicit, strictly ascending source ids. Used when
	// AllNodes is false; an empty list is rejected with ErrNoSources.
	Sources []int64

	// Bitset configures the scratch bitsets of every worker.
	Bitset []func(o *bitset.Options)

	// Controller bounds the number of chunks running at once across every
	// scheduler sharing it. May be nil.
	Controller *resource.Controller

	// OnChunkDone is called after every successful chunk, possibly from
	// several goroutines at once. May be nil.
	OnChunkDone func(ctx context.Context, report ChunkReport)
}

// DefaultOptions contains the default scheduler configuration: every node
// is a source.
var DefaultOptions = Options{AllNodes: true}

// Scheduler fans a set of sources out over chunks of 32 and runs every
// chunk with its own Runner.
type Scheduler struct {
	graph    graph.Graph
	dir      graph.Direction
	consumer Consumer
	opts     Options
	chunks   []Chunk

	pool      *pool.Pool
	poolStats pool.Stats
}

// NewScheduler creates a Scheduler.
func NewScheduler(g graph.Graph, dir graph.Direction, consumer Consumer, optFns ...func(o *Options)) (*Scheduler, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	total := g.NodeCount()
	if !opts.AllNodes {
		total = int64(len(opts.Sources))
	}
	if total == 0 {
		return nil, ErrNoSources
	}

	return &Scheduler{
		graph:    g,
		dir:      dir,
		consumer: consumer,
		opts:     opts,
		chunks:   PlanChunks(total),
	}, nil
}

// Chunks returns the chunk plan. The plan only depends on the number of
// sources.
func (s *Scheduler) Chunks() []Chunk {
	out := make([]Chunk, len(s.chunks))
	copy(out, s.chunks)
	return out
}

// Workers returns the number of worker goroutines Run starts for the given
// concurrency.
func (s *Scheduler) Workers(concurrency int) int {
	return max(1, min(concurrency, len(s.chunks)))
}

// Run executes every chunk. With a concurrency of 1, or a single chunk,
// chunks run in order on the calling goroutine. Otherwise up to concurrency
// workers pull chunks from a shared counter. Run must not be called
// concurrently on the same Scheduler.
//
// The first error aborts the run. Cancellation of ctx is observed before
// every chunk and between the rounds of a chunk.
func (s *Scheduler) Run(ctx context.Context, concurrency int) error {
	workers := s.Workers(concurrency)

	s.pool = pool.New(s.graph.NodeCount(), workers, s.opts.Bitset...)
	defer func() {
		s.poolStats = s.pool.Stats()
		s.pool.Release()
	}()

	if workers == 1 {
		for _, c := range s.chunks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.runChunk(ctx, 0, c); err != nil {
				return err
			}
		}
		return nil
	}

	var next atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := next.Add(1) - 1
				if i >= int64(len(s.chunks)) {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := s.runChunk(gctx, w, s.chunks[i]); err != nil {
					return err
				}
			}
		})
	}

	return g.Wait()
}

// PoolStats returns the scratch statistics of the last finished Run.
func (s *Scheduler) PoolStats() pool.Stats {
	return s.poolStats
}

func (s *Scheduler) runChunk(ctx context.Context, worker int, c Chunk) (err error) {
	if err := s.opts.Controller.AcquireWorker(ctx); err != nil {
		return err
	}
	defer s.opts.Controller.ReleaseWorker()

	scratch, err := s.pool.Get(worker)
	if err != nil {
		return err
	}

	runner, err := s.newRunner(s.graph.ConcurrentCopy(), scratch, c)
	if err != nil {
		return fmt.Errorf("chunk %d: %w", c.Index, err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = &ChunkPanicError{Chunk: c.Index, Value: r}
		}
	}()

	start := time.Now()
	if err := runner.Run(ctx); err != nil {
		return err
	}

	if s.opts.OnChunkDone != nil {
		s.opts.OnChunkDone(ctx, ChunkReport{
			Chunk:    c,
			Worker:   worker,
			Stats:    runner.Stats(),
			Duration: time.Since(start),

			BusyWorkers: s.opts.Controller.BusyWorkers(),
		})
	}
	return nil
}

func (s *Scheduler) newRunner(rels graph.RelationshipIterator, scratch *pool.Scratch, c Chunk) (*Runner, error) {
	if !s.opts.AllNodes {
		return NewSortedRunner(rels, s.dir, s.consumer, scratch.Frontier, scratch.Dual, s.opts.Sources[c.From:c.To()])
	}
	return NewRangeRunner(rels, s.dir, s.consumer, scratch.Frontier, scratch.Dual, c.From, c.Len)
}
