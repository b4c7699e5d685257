package graphalgo

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hupe1980/graphalgo/graph"
	"github.com/hupe1980/graphalgo/internal/bitset"
	"github.com/hupe1980/graphalgo/internal/msbfs"
	"github.com/hupe1980/graphalgo/internal/progress"
)

const tracerName = "github.com/hupe1980/graphalgo"

// MaxLocalSources is the largest number of sources RunLocal accepts.
const MaxLocalSources = bitset.Width

// MSBFS runs bit-parallel multi-source BFS over a graph.
//
// An MSBFS is immutable after New. Run and RunLocal may be called
// repeatedly, also concurrently; every call allocates its own traversal
// state.
type MSBFS struct {
	graph    graph.Graph
	dir      graph.Direction
	consumer msbfs.Consumer
	opts     options
	tracer   trace.Tracer

	// sources is nil when every node is a source.
	sources []int64
	total   int64
}

// New creates an MSBFS over g that follows relationships in direction dir
// and reports to consumer. Sources default to every node of the graph.
func New(g graph.Graph, dir graph.Direction, consumer Consumer, optFns ...Option) (*MSBFS, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if consumer == nil {
		return nil, ErrNilConsumer
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	opts := applyOptions(optFns)

	m := &MSBFS{
		graph:    g,
		dir:      dir,
		consumer: adaptConsumer(consumer),
		opts:     opts,
	}

	tp := opts.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	m.tracer = tp.Tracer(tracerName)

	if opts.explicitSources {
		sources, err := normalizeSources(g, opts.sources)
		if err != nil {
			return nil, err
		}
		m.sources = sources
		m.total = int64(len(sources))
	} else {
		m.total = g.NodeCount()
	}

	if m.total == 0 {
		return nil, ErrNoSources
	}

	return m, nil
}

// normalizeSources sorts ids in place and rejects duplicates and ids that
// are not nodes of g.
func normalizeSources(g graph.IDMapping, ids []int64) ([]int64, error) {
	slices.Sort(ids)
	for i, id := range ids {
		if !g.Contains(id) {
			return nil, &InvalidSourceError{NodeID: id, Reason: fmt.Sprintf("not in [0, %d)", g.NodeCount())}
		}
		if i > 0 && ids[i-1] == id {
			return nil, &InvalidSourceError{NodeID: id, Reason: "duplicate"}
		}
	}
	return ids, nil
}

// Run traverses the graph from every source. Sources are split into chunks
// of 32 that run on up to concurrency goroutines; a concurrency of 1 runs
// the chunks one after another on the calling goroutine and a concurrency
// below 1 uses runtime.GOMAXPROCS(0).
//
// The consumer may receive the same (node, depth) pair several times, once
// per chunk, each time with a disjoint set of sources.
//
// Cancellation of ctx stops the run between rounds and before chunks; Run
// then returns ctx.Err(). Deliveries made before are not undone.
func (m *MSBFS) Run(ctx context.Context, concurrency int) error {
	if concurrency < 1 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return m.run(ctx, "MSBFS.Run", concurrency)
}

// RunLocal traverses the graph on the calling goroutine as a single chunk.
// It fails with ErrTooManySources for more than 32 sources.
func (m *MSBFS) RunLocal(ctx context.Context) error {
	if m.total > MaxLocalSources {
		err := fmt.Errorf("%w: got %d", ErrTooManySources, m.total)
		m.opts.metricsCollector.RecordRun(int(m.total), 0, 0, err)
		return err
	}
	return m.run(ctx, "MSBFS.RunLocal", 1)
}

// Chunks returns the deterministic chunk plan: chunk i covers the sources
// [i*32, min((i+1)*32, n)).
func (m *MSBFS) Chunks() []Chunk {
	return msbfs.PlanChunks(m.total)
}

// Len returns the number of sources.
func (m *MSBFS) Len() int64 {
	return m.total
}

// Direction returns the traversal direction.
func (m *MSBFS) Direction() graph.Direction {
	return m.dir
}

// String returns "MSBFS{first .. last+1 (n)}".
func (m *MSBFS) String() string {
	if m.sources != nil {
		return fmt.Sprintf("MSBFS{%d .. %d (%d)}", m.sources[0], m.sources[len(m.sources)-1]+1, len(m.sources))
	}
	return fmt.Sprintf("MSBFS{%d .. %d (%d)}", 0, m.total, m.total)
}

func (m *MSBFS) run(ctx context.Context, name string, concurrency int) (err error) {
	runID := uuid.NewString()
	chunks := m.Chunks()
	start := time.Now()

	ctx, span := m.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.Int64("sources", m.total),
		attribute.Int("chunks", len(chunks)),
		attribute.Int("concurrency", concurrency),
		attribute.String("direction", m.dir.String()),
	))
	defer span.End()

	logger := m.opts.logger.WithRunID(runID)
	tracker := progress.New(logger.Logger, len(chunks), m.opts.progressInterval)

	var (
		mu    sync.Mutex
		stats msbfs.Stats
	)

	defer func() {
		duration := time.Since(start)
		m.opts.metricsCollector.RecordRun(int(m.total), len(chunks), duration, err)
		logger.LogRun(ctx, int(m.total), len(chunks), tracker.Deliveries(), duration, err)

		span.SetAttributes(
			attribute.Int64("chunks.done", tracker.Done()),
			attribute.Int64("deliveries", stats.Deliveries),
			attribute.Int64("visits", stats.Visits),
			attribute.Int("depth.max", stats.Depth),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	sched, err := msbfs.NewScheduler(m.graph, m.dir, m.consumer, func(o *msbfs.Options) {
		o.AllNodes = !m.opts.explicitSources
		o.Sources = m.sources
		o.Bitset = m.opts.bitsetOptions()
		o.Controller = m.opts.controller
		o.OnChunkDone = func(ctx context.Context, r msbfs.ChunkReport) {
			mu.Lock()
			stats.Add(r.Stats)
			mu.Unlock()

			m.opts.metricsCollector.RecordChunk(r.Stats.Depth, r.Stats.Deliveries, r.Duration)
			logger.LogChunk(ctx, r.Chunk.Index, r.Stats.Depth, r.Stats.Deliveries, r.BusyWorkers, r.Duration)
			tracker.ChunkDone(ctx, r.Chunk.Index, r.Stats.Deliveries)
		}
	})
	if err != nil {
		return translateError(err)
	}

	return translateError(sched.Run(ctx, concurrency))
}
