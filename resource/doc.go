// Package resource implements the Controller shared by traversal runs for
// memory and concurrency governance.
//
// The Controller manages two resource types:
//
//   - Memory: bytes reserved for per-node bitsets (non-blocking, fail-fast)
//   - Workers: the number of chunks executing at once across all runs
//
// # Memory Management
//
// Bitset allocations are charged against the memory limit before they are
// made. AcquireMemory never blocks; it returns ErrMemoryLimitExceeded when the
// reservation would exceed the limit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(nodeCount * 8); err != nil {
//	    // ErrMemoryLimitExceeded - the graph does not fit the budget
//	}
//	defer rc.ReleaseMemory(nodeCount * 8)
//
// # Worker Limits
//
// A single Controller passed to several concurrent runs bounds the total
// number of chunks in flight, independent of each run's own concurrency:
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
