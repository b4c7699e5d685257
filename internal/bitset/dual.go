package bitset

const (
	auxMask = uint64(0xFFFFFFFF00000000)
	defMask = uint64(0x00000000FFFFFFFF)
	auxBits = 32
)

// DualPackedBitset packs two 32-bit source masks into one uint64 per node.
//
//	 63            32 31             0
//	┌────────────────┬────────────────┐
//	│ aux (seen)     │ def (visitNext)│
//	└────────────────┴────────────────┘
//
// The auxiliary lane records which sources have ever reached a node; it only
// grows until the next seed operation. The default lane collects arrivals of
// the current round.
type DualPackedBitset struct {
	words array[uint64]
	bytes int64
	opts  Options
}

// NewDual creates a DualPackedBitset for nodeCount nodes.
func NewDual(nodeCount int64, optFns ...func(o *Options)) (*DualPackedBitset, error) {
	opts := applyOptions(optFns)

	words, bytes, err := allocate[uint64](nodeCount, opts)
	if err != nil {
		return nil, err
	}

	return &DualPackedBitset{words: words, bytes: bytes, opts: opts}, nil
}

// Get returns the combined word of the node.
func (b *DualPackedBitset) Get(nodeID int64) uint64 {
	return b.words.get(nodeID)
}

// SetAuxBit marks source k (in [0, 32)) as having seen the node.
func (b *DualPackedBitset) SetAuxBit(nodeID int64, k int) {
	checkBit(k)
	b.words.or(nodeID, uint64(1)<<(k+auxBits))
}

// SetAuxBitsRange clears all state and sets aux bit i on node fromID+i for
// every i in [0, n).
func (b *DualPackedBitset) SetAuxBitsRange(fromID int64, n int) error {
	if n < 1 || n > Width {
		return ErrSourceCount
	}
	if fromID < 0 || fromID+int64(n) > b.words.size() {
		return ErrSourceOutOfRange
	}

	b.words.fill(0)
	for i := 0; i < n; i++ {
		b.words.set(fromID+int64(i), uint64(1)<<(i+auxBits))
	}
	return nil
}

// SetAuxBitsSorted clears all state and sets aux bit i on node ids[i].
// ids must be strictly ascending, otherwise ErrUnsortedSources is returned
// and the bitset is left untouched.
func (b *DualPackedBitset) SetAuxBitsSorted(ids []int64) error {
	if len(ids) < 1 || len(ids) > Width {
		return ErrSourceCount
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			return ErrUnsortedSources
		}
	}
	if ids[0] < 0 || ids[len(ids)-1] >= b.words.size() {
		return ErrSourceOutOfRange
	}

	b.words.fill(0)
	for i, id := range ids {
		b.words.set(id, uint64(1)<<(i+auxBits))
	}
	return nil
}

// Union adds mask to the default lane of the node.
func (b *DualPackedBitset) Union(nodeID int64, mask uint32) {
	b.words.or(nodeID, uint64(mask))
}

// UnionDifference removes already seen sources from the default lane and
// adds the remainder to the auxiliary lane:
//
//	def &= ^aux
//	aux |= def
//
// It returns the reduced default lane, i.e. the sources reaching the node for
// the first time. The result may be 0.
func (b *DualPackedBitset) UnionDifference(nodeID int64) uint32 {
	w := b.words.get(nodeID)

	aux := uint32(w >> auxBits)
	def := uint32(w)
	def &^= aux
	aux |= def

	b.words.set(nodeID, uint64(aux)<<auxBits|uint64(def))
	return def
}

// CopyInto writes the default lane of every node into target and clears the
// default lane, keeping the auxiliary lane. It reports whether any nonzero
// default lane was copied.
func (b *DualPackedBitset) CopyInto(target *PackedBitset) bool {
	copied := false
	c := b.words.cursor(0)
	for c.next() {
		for i, w := range c.words {
			def := uint32(w & defMask)
			if def != 0 {
				copied = true
			}
			target.Set(c.start+int64(i), def)
			c.words[i] = w & auxMask
		}
	}
	return copied
}

// NextSetNode returns the smallest node id >= from whose default lane is
// nonzero. If there is none it returns Exhausted, or Empty when from is 0.
func (b *DualPackedBitset) NextSetNode(from int64) int64 {
	return nextNonZero(b.words, from, func(w uint64) bool { return w&defMask != 0 })
}

// Clear zeroes both lanes of every node.
func (b *DualPackedBitset) Clear() {
	b.words.fill(0)
}

// Len returns the number of nodes.
func (b *DualPackedBitset) Len() int64 {
	return b.words.size()
}

// Paged reports whether the paged storage variant is used.
func (b *DualPackedBitset) Paged() bool {
	return b.words.paged()
}

// SizeInBytes returns the memory charged for the word storage.
func (b *DualPackedBitset) SizeInBytes() int64 {
	return b.bytes
}

// Release returns the charged memory to the controller. The bitset must not
// be used afterwards.
func (b *DualPackedBitset) Release() {
	if b.bytes == 0 {
		return
	}
	b.opts.Controller.ReleaseMemory(b.bytes)
	b.bytes = 0
	b.words = nil
}
