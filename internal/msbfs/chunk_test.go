package msbfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanChunks(t *testing.T) {
	assert.Nil(t, PlanChunks(0))

	assert.Equal(t, []Chunk{{Index: 0, From: 0, Len: 5}}, PlanChunks(5))
	assert.Equal(t, []Chunk{{Index: 0, From: 0, Len: 32}}, PlanChunks(32))
	assert.Equal(t, []Chunk{
		{Index: 0, From: 0, Len: 32},
		{Index: 1, From: 32, Len: 32},
		{Index: 2, From: 64, Len: 4},
	}, PlanChunks(68))
}

func TestPlanChunks_CoversEverySourceOnce(t *testing.T) {
	for _, total := range []int64{1, 31, 33, 64, 100, 1000} {
		chunks := PlanChunks(total)
		assert.Equal(t, chunks, PlanChunks(total))

		next := int64(0)
		for i, c := range chunks {
			assert.Equal(t, i, c.Index)
			assert.Equal(t, next, c.From)
			assert.LessOrEqual(t, c.Len, 32)
			assert.Positive(t, c.Len)
			next = c.To()
		}
		assert.Equal(t, total, next)
	}
}
