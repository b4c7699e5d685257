package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"outgoing", Outgoing},
		{"OUT", Outgoing},
		{" Incoming ", Incoming},
		{"in", Incoming},
		{"both", Both},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "OUTGOING", Outgoing.String())
	assert.Equal(t, "INCOMING", Incoming.String())
	assert.Equal(t, "BOTH", Both.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())

	assert.True(t, Both.Valid())
	assert.False(t, Direction(3).Valid())
}
