package msbfs

import "github.com/hupe1980/graphalgo/internal/bitset"

// Chunk is a contiguous slice of at most 32 sources. From and Len index the
// source list, or the node id space when every node is a source.
type Chunk struct {
	Index int
	From  int64
	Len   int
}

// To returns the exclusive end of the chunk.
func (c Chunk) To() int64 {
	return c.From + int64(c.Len)
}

// PlanChunks splits total sources into chunks of 32. Chunk i covers
// [i*32, min((i+1)*32, total)).
func PlanChunks(total int64) []Chunk {
	if total <= 0 {
		return nil
	}

	n := (total + bitset.Width - 1) / bitset.Width
	chunks := make([]Chunk, n)
	for i := range chunks {
		from := int64(i) * bitset.Width
		chunks[i] = Chunk{
			Index: i,
			From:  from,
			Len:   int(min(total-from, bitset.Width)),
		}
	}
	return chunks
}
