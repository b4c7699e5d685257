package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph(t *testing.T) {
	g, err := buildGraph(benchFlags{kind: "grid", rows: 3, cols: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(12), g.NodeCount())

	g, err = buildGraph(benchFlags{kind: "complete", nodes: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(20), g.RelationshipCount())

	g, err = buildGraph(benchFlags{kind: "random", nodes: 50, degree: 2, seed: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(50), g.NodeCount())

	_, err = buildGraph(benchFlags{kind: "ring"})
	assert.Error(t, err)

	_, err = buildGraph(benchFlags{kind: "grid"})
	assert.Error(t, err)
}

func TestSampleSources(t *testing.T) {
	bm := sampleSources(1000, 40, 7)
	assert.Equal(t, uint64(40), bm.GetCardinality())
	assert.Less(t, bm.Maximum(), uint64(1000))

	assert.Equal(t, bm.ToArray(), sampleSources(1000, 40, 7).ToArray())

	all := sampleSources(10, 50, 1)
	assert.Equal(t, uint64(10), all.GetCardinality())
}

func TestRunBench(t *testing.T) {
	t.Setenv("GRAPHALGO_LOG_LEVEL", "off")

	var stdout, stderr bytes.Buffer
	err := runBench(context.Background(), &stdout, &stderr, benchFlags{
		envFile:     "testdata/missing.env",
		kind:        "grid",
		rows:        10,
		cols:        10,
		sources:     40,
		seed:        1,
		direction:   "both",
		concurrency: 2,
	})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "graph:       grid (100 nodes, 180 relationships)")
	assert.Contains(t, out, "direction:   BOTH")
	assert.Contains(t, out, "chunks:      2")
	// every source reaches the 99 other nodes
	assert.Contains(t, out, "visits:      3960")
}

func TestRunBench_InvalidDirection(t *testing.T) {
	t.Setenv("GRAPHALGO_LOG_LEVEL", "off")

	var out bytes.Buffer
	err := runBench(context.Background(), &out, &out, benchFlags{
		envFile:   "testdata/missing.env",
		kind:      "grid",
		rows:      2,
		cols:      2,
		direction: "sideways",
	})
	assert.Error(t, err)
}

func TestRootCmd_Local(t *testing.T) {
	t.Setenv("GRAPHALGO_LOG_LEVEL", "off")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--env-file", "testdata/missing.env",
		"--graph", "complete",
		"--nodes", "20",
		"--sources", "5",
		"--local",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "visits:      95")
	assert.Contains(t, out.String(), "max depth:   1")
}
