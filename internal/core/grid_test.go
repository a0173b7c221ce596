package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	assert.True(t, g.Contains(0, 0))
	assert.True(t, g.Contains(2, 1))
	assert.False(t, g.Contains(3, 0))
	assert.False(t, g.Contains(0, 2))
	assert.False(t, g.Contains(-1, 0))

	g.Set(2, 1, 7)
	g.Set(5, 5, 9)
	assert.Equal(t, uint8(7), g.Get(2, 1))
	assert.Equal(t, uint8(0), g.Get(5, 5))
	assert.Equal(t, 5, g.Index(2, 1))

	g.Clear()
	assert.Equal(t, make([]uint8, 6), g.Cells())
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -4)
	assert.Equal(t, 1, g.W)
	assert.Equal(t, 1, g.H)
	assert.Len(t, g.Cells(), 1)
}
