package msbfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(s *SourceSet) []int64 {
	var out []int64
	for s.HasNext() {
		out = append(out, s.Next())
	}
	return out
}

func TestSourceSet_Sorted(t *testing.T) {
	s := newSortedSources([]int64{3, 8, 13, 21})

	s.reset(0b1010)
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []int64{8, 21}, drain(s))
	assert.False(t, s.HasNext())
	assert.Equal(t, int64(-1), s.Next())

	s.Reset()
	assert.Equal(t, []int64{8, 21}, drain(s))

	s.reset(0b0001)
	assert.Equal(t, []int64{3}, drain(s))
}

func TestSourceSet_Range(t *testing.T) {
	s := newRangeSources(64, 32)

	s.reset(1 | 1<<5 | 1<<31)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []int64{64, 69, 95}, drain(s))

	s.reset(0xFFFFFFFF)
	assert.Equal(t, 32, s.Size())
	got := drain(s)
	assert.Len(t, got, 32)
	assert.Equal(t, int64(64), got[0])
	assert.Equal(t, int64(95), got[31])
}

func TestSourceSet_EmptyMask(t *testing.T) {
	s := newRangeSources(0, 4)
	s.reset(0)
	assert.Equal(t, 0, s.Size())
	assert.False(t, s.HasNext())
}

func TestSourceSet_IgnoresBitsBeyondLength(t *testing.T) {
	s := newRangeSources(10, 2)
	s.reset(0b111)
	assert.Equal(t, []int64{10, 11}, drain(s))
}

func TestSourceSet_AppendTo(t *testing.T) {
	s := newSortedSources([]int64{1, 2, 4, 8})
	s.reset(0b1101)
	s.Next()

	assert.Equal(t, []int64{0, 1, 4, 8}, s.AppendTo([]int64{0}))
	// cursor is unchanged
	assert.Equal(t, []int64{4, 8}, drain(s))
}
