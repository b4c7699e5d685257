// Package testutil provides testing utilities for graphalgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random source, a reference single-source BFS
// and a recording consumer.
//
// # Random Sources
//
//	rng := testutil.NewRNG(seed)
//	sources := rng.SampleSources(nodeCount, 100) // sorted, distinct
//
// # Reference Traversal (Ground Truth)
//
//	want := testutil.ReferenceVisits(g, graph.Outgoing, sources)
//
// # Recording
//
//	rec := testutil.NewRecorder()
//	// pass rec.Record to a consumer adapter, run, then
//	got := rec.Visits()
package testutil
