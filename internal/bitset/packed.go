package bitset

import "fmt"

// Width is the number of sources tracked per node word.
const Width = 32

// Scan sentinels returned by NextSetNode.
const (
	// Exhausted means no set node exists at or after the start position.
	Exhausted int64 = -1

	// Empty means the scan started at node 0 and nothing is set at all.
	Empty int64 = -2
)

// PackedBitset stores one 32-bit source mask per node. Bit k of a node's
// word is set while source k occupies the node in the active frontier.
type PackedBitset struct {
	words array[uint32]
	bytes int64
	opts  Options
}

// NewPacked creates a PackedBitset for nodeCount nodes.
func NewPacked(nodeCount int64, optFns ...func(o *Options)) (*PackedBitset, error) {
	opts := applyOptions(optFns)

	words, bytes, err := allocate[uint32](nodeCount, opts)
	if err != nil {
		return nil, err
	}

	return &PackedBitset{words: words, bytes: bytes, opts: opts}, nil
}

// SetBit sets bit k (in [0, 32)) for the node.
func (b *PackedBitset) SetBit(nodeID int64, k int) {
	checkBit(k)
	b.words.or(nodeID, uint32(1)<<k)
}

// Get returns the source mask of the node.
func (b *PackedBitset) Get(nodeID int64) uint32 {
	return b.words.get(nodeID)
}

// Set overwrites the source mask of the node.
func (b *PackedBitset) Set(nodeID int64, mask uint32) {
	b.words.set(nodeID, mask)
}

// NextSetNode returns the smallest node id >= from with a nonzero word.
// If there is none it returns Exhausted, or Empty when from is 0.
func (b *PackedBitset) NextSetNode(from int64) int64 {
	return nextNonZero(b.words, from, func(w uint32) bool { return w != 0 })
}

// Clear zeroes every word.
func (b *PackedBitset) Clear() {
	b.words.fill(0)
}

// Len returns the number of nodes.
func (b *PackedBitset) Len() int64 {
	return b.words.size()
}

// Paged reports whether the paged storage variant is used.
func (b *PackedBitset) Paged() bool {
	return b.words.paged()
}

// SizeInBytes returns the memory charged for the word storage.
func (b *PackedBitset) SizeInBytes() int64 {
	return b.bytes
}

// Release returns the charged memory to the controller. The bitset must not
// be used afterwards.
func (b *PackedBitset) Release() {
	if b.bytes == 0 {
		return
	}
	b.opts.Controller.ReleaseMemory(b.bytes)
	b.bytes = 0
	b.words = nil
}

// ForEach calls fn for every node in the frontier with its source mask,
// in ascending node order. Iteration stops early when fn returns false.
func (b *PackedBitset) ForEach(fn func(nodeID int64, mask uint32) bool) {
	c := b.words.cursor(0)
	for c.next() {
		for i, w := range c.words {
			if w != 0 && !fn(c.start+int64(i), w) {
				return
			}
		}
	}
}

func nextNonZero[T word](words array[T], from int64, isSet func(T) bool) int64 {
	if from < 0 {
		from = 0
	}
	c := words.cursor(from)
	for c.next() {
		for i, w := range c.words {
			if isSet(w) {
				return c.start + int64(i)
			}
		}
	}
	if from == 0 {
		return Empty
	}
	return Exhausted
}

func checkBit(k int) {
	if k < 0 || k >= Width {
		panic(fmt.Sprintf("bitset: bit %d out of range [0, %d)", k, Width))
	}
}
