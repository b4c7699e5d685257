package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/hupe1980/graphalgo"
	"github.com/hupe1980/graphalgo/graph"
	"github.com/hupe1980/graphalgo/prommetrics"
)

type benchFlags struct {
	envFile     string
	kind        string
	nodes       int64
	rows        int64
	cols        int64
	degree      int
	sources     int
	seed        int64
	direction   string
	concurrency int
	local       bool
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:          "msbfs-bench",
		Short:        "Run multi-source BFS over a generated graph",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runBench(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.envFile, "env-file", ".env", "dotenv file with GRAPHALGO_* settings (ignored if missing)")
	fl.StringVar(&f.kind, "graph", "random", "graph generator: random, grid or complete")
	fl.Int64Var(&f.nodes, "nodes", 100_000, "node count of random and complete graphs")
	fl.Int64Var(&f.rows, "rows", 300, "rows of the grid graph")
	fl.Int64Var(&f.cols, "cols", 300, "columns of the grid graph")
	fl.IntVar(&f.degree, "degree", 8, "out degree of the random graph")
	fl.IntVar(&f.sources, "sources", 256, "number of sampled sources, 0 for all nodes")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.StringVar(&f.direction, "direction", "outgoing", "traversal direction: outgoing, incoming or both")
	fl.IntVar(&f.concurrency, "concurrency", 0, "workers, 0 uses GRAPHALGO_CONCURRENCY")
	fl.BoolVar(&f.local, "local", false, "run a single chunk on the calling goroutine")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")

	return cmd
}

func runBench(ctx context.Context, stdout, stderr io.Writer, f benchFlags) error {
	if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", f.envFile, err)
	}

	cfg, err := graphalgo.LoadConfig()
	if err != nil {
		return err
	}
	if !isTerminal(stderr) {
		cfg.LogFormat = "json"
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	dir, err := graph.ParseDirection(f.direction)
	if err != nil {
		return err
	}

	g, err := buildGraph(f)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	prom, err := prommetrics.New(reg)
	if err != nil {
		return err
	}
	basic := &graphalgo.BasicMetricsCollector{}
	opts = append(opts, graphalgo.WithMetricsCollector(teeCollector{basic, prom}))

	if f.metricsAddr != "" {
		srv := &http.Server{
			Addr:              f.metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", "error", err)
			}
		}()
		defer srv.Close()
	}

	if f.sources > 0 {
		opts = append(opts, graphalgo.WithSourceBitmap(sampleSources(g.NodeCount(), f.sources, f.seed)))
	}

	var visits, maxDepth atomic.Int64
	consumer := graphalgo.ConsumerFunc(func(_ int64, depth int, sources graphalgo.Sources) {
		visits.Add(int64(sources.Size()))
		for {
			cur := maxDepth.Load()
			if int64(depth) <= cur || maxDepth.CompareAndSwap(cur, int64(depth)) {
				return
			}
		}
	})

	bfs, err := graphalgo.New(g, dir, consumer, opts...)
	if err != nil {
		return err
	}

	concurrency := f.concurrency
	if concurrency < 1 {
		concurrency = cfg.EffectiveConcurrency()
	}

	start := time.Now()
	if f.local {
		err = bfs.RunLocal(ctx)
	} else {
		err = bfs.Run(ctx, concurrency)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	stats := basic.GetStats()
	fmt.Fprintf(stdout, "graph:       %s (%d nodes, %d relationships)\n", f.kind, g.NodeCount(), g.RelationshipCount())
	fmt.Fprintf(stdout, "traversal:   %s\n", bfs)
	fmt.Fprintf(stdout, "direction:   %s\n", dir)
	fmt.Fprintf(stdout, "chunks:      %d\n", stats.ChunkCount)
	fmt.Fprintf(stdout, "deliveries:  %d\n", stats.Deliveries)
	fmt.Fprintf(stdout, "visits:      %d\n", visits.Load())
	fmt.Fprintf(stdout, "max depth:   %d\n", maxDepth.Load())
	fmt.Fprintf(stdout, "elapsed:     %s\n", elapsed.Round(time.Microsecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(stdout, "visits/s:    %.0f\n", float64(visits.Load())/secs)
	}
	return nil
}

func buildGraph(f benchFlags) (*graph.CSR, error) {
	switch f.kind {
	case "random":
		return graph.Random(f.nodes, f.degree, f.seed)
	case "grid":
		if f.rows < 1 || f.cols < 1 {
			return nil, fmt.Errorf("grid needs positive rows and cols, got %dx%d", f.rows, f.cols)
		}
		return graph.Grid(f.rows, f.cols), nil
	case "complete":
		if f.nodes < 1 {
			return nil, fmt.Errorf("complete graph needs a positive node count, got %d", f.nodes)
		}
		return graph.Complete(f.nodes), nil
	default:
		return nil, fmt.Errorf("unknown graph %q", f.kind)
	}
}

// sampleSources picks k distinct node ids. k is capped at nodeCount.
func sampleSources(nodeCount int64, k int, seed int64) *roaring64.Bitmap {
	bm := roaring64.New()
	if int64(k) >= nodeCount {
		bm.AddRange(0, uint64(nodeCount))
		return bm
	}

	rng := rand.New(rand.NewSource(seed))
	for bm.GetCardinality() < uint64(k) {
		bm.Add(uint64(rng.Int63n(nodeCount)))
	}
	return bm
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// teeCollector forwards metrics to several collectors.
type teeCollector []graphalgo.MetricsCollector

func (t teeCollector) RecordRun(sources, chunks int, duration time.Duration, err error) {
	for _, c := range t {
		c.RecordRun(sources, chunks, duration, err)
	}
}

func (t teeCollector) RecordChunk(depth int, deliveries int64, duration time.Duration) {
	for _, c := range t {
		c.RecordChunk(depth, deliveries, duration)
	}
}
