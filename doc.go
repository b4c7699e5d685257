// Package graphalgo provides bit-parallel multi-source breadth-first search
// (MS-BFS) over large in-memory graphs.
//
// MS-BFS runs up to 32 breadth-first searches at once. Each node keeps one
// 32-bit word per traversal state, bit k standing for source k, so
// traversals that reach the same node at the same depth share a single
// relationship scan. More than 32 sources are split into chunks of 32 that
// run in parallel.
//
// # Quick Start
//
//	g := graph.Grid(100, 100)
//
//	bfs, err := graphalgo.New(g, graph.Outgoing, graphalgo.ConsumerFunc(
//	    func(nodeID int64, depth int, sources graphalgo.Sources) {
//	        for sources.HasNext() {
//	            src := sources.Next()
//	            // src reached nodeID at distance depth
//	        }
//	    }),
//	    graphalgo.WithSources(0, 99, 5000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = bfs.Run(ctx, runtime.GOMAXPROCS(0))
//
// # Delivery Guarantees
//
//   - A source is never reported for itself; depths start at 1.
//   - Within one chunk a (node, depth) pair is reported at most once.
//   - Chunks running in parallel may report the same pair again, always with
//     a disjoint set of sources. The consumer must be safe for concurrent use.
//   - Sources passed to the consumer are only valid during the call.
//
// # Memory
//
// Every worker holds a 4-byte and an 8-byte word per node. Graphs above
// WithFlatLimit nodes use paged storage. A resource.Controller passed with
// WithResourceController bounds memory (failing fast with ErrInvalidSize)
// and the number of chunks running at once across traversals.
//
// # Observability
//
// Runs are traced with OpenTelemetry (WithTracerProvider), logged through
// log/slog (WithLogger) and measured through a MetricsCollector
// (WithMetricsCollector, see package prommetrics for Prometheus).
//
// # Configuration
//
// LoadConfig reads GRAPHALGO_* environment variables; Config.Options turns
// them into constructor options.
package graphalgo
