package testutil

import (
	"fmt"
	"sync"
)

// Sources is the enumerator handed to a multi-source BFS consumer.
type Sources interface {
	HasNext() bool
	Next() int64
	Size() int
	Reset()
}

// Delivery is one consumer call.
type Delivery struct {
	Node    int64
	Depth   int
	Sources []int64
}

// String returns "node@depth[sources]".
func (d Delivery) String() string {
	return fmt.Sprintf("%d@%d%v", d.Node, d.Depth, d.Sources)
}

// Recorder stores every consumer call. It is thread-safe.
type Recorder struct {
	mu         sync.Mutex
	deliveries []Delivery
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record drains sources and stores the delivery. It also checks that Size
// matches the number of enumerated sources and panics otherwise.
func (r *Recorder) Record(node int64, depth int, sources Sources) {
	ids := make([]int64, 0, sources.Size())
	for sources.HasNext() {
		ids = append(ids, sources.Next())
	}
	if len(ids) != sources.Size() {
		panic(fmt.Sprintf("testutil: size %d but %d sources enumerated", sources.Size(), len(ids)))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries = append(r.deliveries, Delivery{Node: node, Depth: depth, Sources: ids})
}

// Deliveries returns a copy of the recorded calls in call order.
func (r *Recorder) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out
}

// Visits flattens the recorded calls into visits sorted with SortVisits.
func (r *Recorder) Visits() []Visit {
	r.mu.Lock()
	defer r.mu.Unlock()

	var visits []Visit
	for _, d := range r.deliveries {
		for _, s := range d.Sources {
			visits = append(visits, Visit{Node: d.Node, Depth: d.Depth, Source: s})
		}
	}
	SortVisits(visits)
	return visits
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.deliveries)
}
