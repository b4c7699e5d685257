package graphalgo_test

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/graphalgo"
	"github.com/hupe1980/graphalgo/graph"
	"github.com/hupe1980/graphalgo/resource"
)

// Example demonstrates a local run with two sources on a small graph.
func Example() {
	g, err := graph.FromEdges(6, []graph.Edge{
		{Source: 0, Target: 2}, {Source: 0, Target: 3},
		{Source: 1, Target: 2}, {Source: 1, Target: 3},
		{Source: 2, Target: 0}, {Source: 2, Target: 1}, {Source: 2, Target: 4},
		{Source: 3, Target: 0}, {Source: 3, Target: 1}, {Source: 3, Target: 5},
		{Source: 4, Target: 2},
		{Source: 5, Target: 3},
	})
	if err != nil {
		log.Fatal(err)
	}

	bfs, err := graphalgo.New(g, graph.Outgoing, graphalgo.ConsumerFunc(
		func(nodeID int64, depth int, sources graphalgo.Sources) {
			var ids []int64
			for sources.HasNext() {
				ids = append(ids, sources.Next())
			}
			fmt.Printf("node %d depth %d sources %v\n", nodeID, depth, ids)
		}),
		graphalgo.WithSources(0, 1),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := bfs.RunLocal(context.Background()); err != nil {
		log.Fatal(err)
	}

	// Output:
	// node 2 depth 1 sources [0 1]
	// node 3 depth 1 sources [0 1]
	// node 0 depth 2 sources [1]
	// node 1 depth 2 sources [0]
	// node 4 depth 2 sources [0 1]
	// node 5 depth 2 sources [0 1]
}

// Example_eccentricity computes the eccentricity of sampled nodes of a grid
// with a parallel run.
func Example_eccentricity() {
	g := graph.Grid(50, 50)

	var mu sync.Mutex
	ecc := map[int64]int{}

	bfs, err := graphalgo.New(g, graph.Both, graphalgo.ConsumerFunc(
		func(_ int64, depth int, sources graphalgo.Sources) {
			mu.Lock()
			defer mu.Unlock()
			for sources.HasNext() {
				s := sources.Next()
				ecc[s] = max(ecc[s], depth)
			}
		}),
		graphalgo.WithSourceBitmap(roaring64.BitmapOf(0, 49, 1275, 2499)),
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := bfs.Run(context.Background(), 4); err != nil {
		log.Fatal(err)
	}

	keys := make([]int64, 0, len(ecc))
	for k := range ecc {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Printf("%d: %d\n", k, ecc[k])
	}

	// Output:
	// 0: 98
	// 49: 98
	// 1275: 50
	// 2499: 98
}

// Example_resourceController bounds the memory of a run.
func Example_resourceController() {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 10})

	bfs, err := graphalgo.New(graph.Grid(100, 100), graph.Outgoing,
		graphalgo.ConsumerFunc(func(int64, int, graphalgo.Sources) {}),
		graphalgo.WithResourceController(rc),
	)
	if err != nil {
		log.Fatal(err)
	}

	err = bfs.Run(context.Background(), 1)
	fmt.Println(err != nil)

	// Output: true
}
