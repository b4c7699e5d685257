package bitset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/graphalgo/resource"
)

func TestPacked_SetBitAndGet(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b, err := NewPacked(20, v.opts...)
			require.NoError(t, err)

			b.SetBit(3, 0)
			b.SetBit(3, 31)
			b.SetBit(19, 5)

			assert.Equal(t, uint32(1)|uint32(1)<<31, b.Get(3))
			assert.Equal(t, uint32(1)<<5, b.Get(19))
			assert.Zero(t, b.Get(4))

			b.Set(3, 7)
			assert.Equal(t, uint32(7), b.Get(3))
		})
	}
}

func TestPacked_NextSetNode(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b, err := NewPacked(10, v.opts...)
			require.NoError(t, err)

			assert.Equal(t, Empty, b.NextSetNode(0))
			assert.Equal(t, Exhausted, b.NextSetNode(1))
			assert.Equal(t, Exhausted, b.NextSetNode(10))

			b.SetBit(2, 1)
			b.SetBit(9, 1)

			assert.Equal(t, int64(2), b.NextSetNode(0))
			assert.Equal(t, int64(2), b.NextSetNode(2))
			assert.Equal(t, int64(9), b.NextSetNode(3))
			assert.Equal(t, Exhausted, b.NextSetNode(10))

			// negative start is treated as 0
			assert.Equal(t, int64(2), b.NextSetNode(-5))
		})
	}
}

func TestPacked_ForEach(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b, err := NewPacked(33, v.opts...)
			require.NoError(t, err)

			b.Set(0, 1)
			b.Set(4, 2)
			b.Set(17, 3)
			b.Set(32, 4)

			var nodes []int64
			var masks []uint32
			b.ForEach(func(nodeID int64, mask uint32) bool {
				nodes = append(nodes, nodeID)
				masks = append(masks, mask)
				return true
			})

			assert.Equal(t, []int64{0, 4, 17, 32}, nodes)
			assert.Equal(t, []uint32{1, 2, 3, 4}, masks)

			count := 0
			b.ForEach(func(int64, uint32) bool {
				count++
				return count < 2
			})
			assert.Equal(t, 2, count)
		})
	}
}

func TestPacked_Clear(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			b, err := NewPacked(9, v.opts...)
			require.NoError(t, err)
			for i := int64(0); i < 9; i++ {
				b.Set(i, uint32(i+1))
			}
			b.Clear()
			assert.Equal(t, Empty, b.NextSetNode(0))
		})
	}
}

func TestPacked_SetBitOutOfRangePanics(t *testing.T) {
	b, err := NewPacked(1)
	require.NoError(t, err)
	assert.Panics(t, func() { b.SetBit(0, 32) })
}

func TestStorage_Variant(t *testing.T) {
	b, err := NewPacked(100)
	require.NoError(t, err)
	assert.False(t, b.Paged())
	assert.Equal(t, int64(100), b.Len())
	assert.Equal(t, int64(400), b.SizeInBytes())

	p, err := NewPacked(100, func(o *Options) {
		o.FlatLimit = 64
		o.PageShift = 4
	})
	require.NoError(t, err)
	assert.True(t, p.Paged())
	assert.Equal(t, int64(100), p.Len())

	d, err := NewDual(100, func(o *Options) { o.FlatLimit = 99 })
	require.NoError(t, err)
	assert.True(t, d.Paged())
	assert.Equal(t, int64(800), d.SizeInBytes())
}

func TestStorage_InvalidPageShiftFallsBackToDefault(t *testing.T) {
	opts := applyOptions([]func(o *Options){func(o *Options) { o.PageShift = 64 }})
	assert.Equal(t, uint(DefaultPageShift), opts.PageShift)
}

func TestStorage_InvalidSize(t *testing.T) {
	for _, n := range []int64{0, -1} {
		_, err := NewPacked(n)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSize)

		var sizeErr *InvalidSizeError
		require.True(t, errors.As(err, &sizeErr))
		assert.Equal(t, n, sizeErr.NodeCount)

		_, err = NewDual(n)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestStorage_MemoryLimit(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1000})

	withController := func(o *Options) { o.Controller = rc }

	b, err := NewPacked(100, withController)
	require.NoError(t, err)
	assert.Equal(t, int64(400), rc.MemoryUsage())

	_, err = NewDual(100, withController)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.Equal(t, int64(400), rc.MemoryUsage())

	b.Release()
	assert.Equal(t, int64(0), rc.MemoryUsage())
	assert.Zero(t, b.SizeInBytes())

	// releasing twice is a no-op
	b.Release()
	assert.Equal(t, int64(0), rc.MemoryUsage())

	d, err := NewDual(100, withController)
	require.NoError(t, err)
	assert.Equal(t, int64(800), rc.MemoryUsage())
	d.Release()
	assert.Equal(t, int64(0), rc.MemoryUsage())
}

func TestCursor_CrossesPages(t *testing.T) {
	a := newPagedArray[uint32](10, 2)
	require.Len(t, a.pages, 3)
	assert.Len(t, a.pages[2], 2)

	for i := int64(0); i < 10; i++ {
		a.set(i, uint32(i))
	}

	c := a.cursor(3)
	var got []uint32
	var starts []int64
	for c.next() {
		starts = append(starts, c.start)
		got = append(got, c.words...)
	}
	assert.Equal(t, []int64{3, 4, 8}, starts)
	assert.Equal(t, []uint32{3, 4, 5, 6, 7, 8, 9}, got)

	c = a.cursor(10)
	assert.False(t, c.next())
}
