package graphalgo

import (
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"go.opentelemetry.io/otel/trace"

	"github.com/hupe1980/graphalgo/internal/bitset"
	"github.com/hupe1980/graphalgo/internal/progress"
	"github.com/hupe1980/graphalgo/resource"
)

type options struct {
	sources          []int64
	explicitSources  bool
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	pageShift        uint
	flatLimit        int64
	tracerProvider   trace.TracerProvider
	progressInterval time.Duration
}

// Option configures the MSBFS constructor.
type Option func(*options)

// WithSources selects explicit source nodes. The ids are copied and sorted;
// duplicates and ids outside [0, NodeCount()) are rejected by New with an
// *InvalidSourceError. An empty list makes New fail with ErrNoSources.
//
// Without this option every node of the graph is a source.
//
// Example:
//
//	bfs, _ := graphalgo.New(g, graph.Outgoing, consumer, graphalgo.WithSources(42, 7, 19))
func WithSources(ids ...int64) Option {
	return func(o *options) {
		o.sources = append(make([]int64, 0, len(ids)), ids...)
		o.explicitSources = true
	}
}

// WithSourceBitmap selects the source nodes contained in bm. Roaring
// bitmaps iterate in ascending order, so no sorting is needed.
//
// Example:
//
//	bm := roaring64.BitmapOf(1, 2, 3, 1000)
//	bfs, _ := graphalgo.New(g, graph.Both, consumer, graphalgo.WithSourceBitmap(bm))
func WithSourceBitmap(bm *roaring64.Bitmap) Option {
	return func(o *options) {
		o.explicitSources = true
		o.sources = o.sources[:0]
		if bm == nil {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			o.sources = append(o.sources, int64(it.Next()))
		}
	}
}

// WithMetricsCollector configures a metrics collector for run and chunk
// statistics.
//
// Example:
//
//	metrics := &graphalgo.BasicMetricsCollector{}
//	bfs, _ := graphalgo.New(g, graph.Outgoing, consumer, graphalgo.WithMetricsCollector(metrics))
//	_ = bfs.Run(ctx, 8)
//	fmt.Println(metrics.GetStats().Deliveries)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := graphalgo.NewJSONLogger(slog.LevelInfo)
//	bfs, _ := graphalgo.New(g, graph.Outgoing, consumer, graphalgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController charges bitset memory to rc and bounds the number
// of chunks running at once across every traversal sharing it.
//
// Example:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 4 << 30,
//	    MaxWorkers:       16,
//	})
//	bfs, _ := graphalgo.New(g, graph.Outgoing, consumer, graphalgo.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithPageShift sets log2 of the page length (in words) used for graphs
// above the flat limit. Values outside [1, 30] fall back to the default 14.
func WithPageShift(shift uint) Option {
	return func(o *options) {
		o.pageShift = shift
	}
}

// WithFlatLimit sets the largest node count kept in a single flat array per
// bitset. Larger graphs use paged storage. The default is 2^28.
func WithFlatLimit(limit int64) Option {
	return func(o *options) {
		o.flatLimit = limit
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. By default the
// global provider is used.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithProgressInterval sets the minimum time between two progress log
// lines of a run. The first and the last chunk are always logged.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		pageShift:        bitset.DefaultPageShift,
		flatLimit:        bitset.DefaultFlatLimit,
		progressInterval: progress.DefaultInterval,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}

func (o *options) bitsetOptions() []func(*bitset.Options) {
	return []func(*bitset.Options){func(bo *bitset.Options) {
		bo.PageShift = o.pageShift
		bo.FlatLimit = o.flatLimit
		bo.Controller = o.controller
	}}
}
