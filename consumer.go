package graphalgo

import "github.com/hupe1980/graphalgo/internal/msbfs"

// Sources enumerates the sources that reached a node at a given depth.
//
// A Sources value is only valid during the Consumer call that received it.
// It is reused for the next call and must not be retained.
type Sources interface {
	// HasNext reports whether Next returns another source.
	HasNext() bool
	// Next returns the next source id in ascending order.
	Next() int64
	// Size returns the number of sources, independent of the cursor.
	Size() int
	// Reset rewinds the cursor.
	Reset()
}

// Consumer is called once per (node, depth) for every chunk of sources that
// reached node for the first time at depth. Sources never see themselves;
// depth starts at 1.
//
// Run calls Accept from several goroutines at once; implementations must be
// safe for concurrent use unless they are only used with RunLocal or a
// concurrency of 1.
type Consumer interface {
	Accept(nodeID int64, depth int, sources Sources)
}

// ConsumerFunc adapts a function to Consumer.
type ConsumerFunc func(nodeID int64, depth int, sources Sources)

// Accept implements Consumer.
func (f ConsumerFunc) Accept(nodeID int64, depth int, sources Sources) {
	f(nodeID, depth, sources)
}

// Chunk is a contiguous group of at most 32 sources processed together.
type Chunk = msbfs.Chunk

func adaptConsumer(c Consumer) msbfs.Consumer {
	return msbfs.ConsumerFunc(func(nodeID int64, depth int, sources *msbfs.SourceSet) {
		c.Accept(nodeID, depth, sources)
	})
}
