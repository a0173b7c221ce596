package ants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishStoresCopy(t *testing.T) {
	r := NewPathRegistry()
	cells := []Coordinate{C(2, 2), C(2, 1)}
	id := r.Publish(cells)
	cells[1] = C(9, 9)

	got, ok := r.Cells(id)
	require.True(t, ok)
	assert.Equal(t, []Coordinate{C(2, 2), C(2, 1)}, got)

	got[0] = C(7, 7)
	again, _ := r.Cells(id)
	assert.Equal(t, C(2, 2), again[0], "Cells must hand out copies")
}

func TestIdenticalRoutesAreDistinct(t *testing.T) {
	r := NewPathRegistry()
	route := []Coordinate{C(1, 1), C(1, 2)}
	a := r.Publish(route)
	b := r.Publish(route)
	require.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())

	assert.True(t, r.Remove(a))
	assert.False(t, r.Contains(a))
	assert.True(t, r.Contains(b))
	assert.Equal(t, []PathID{b}, r.IDs())

	assert.False(t, r.Remove(a), "removing twice is a no-op")
	assert.False(t, r.Remove(PathID(999)))
	assert.Equal(t, 1, r.Len())
}

func TestAdjacentPathsOrderAndIndex(t *testing.T) {
	r := NewPathRegistry()
	first := r.Publish([]Coordinate{C(2, 2), C(2, 1)})
	second := r.Publish([]Coordinate{C(2, 2), C(3, 3), C(4, 2)})

	got := r.AdjacentPaths(C(3, 1))
	want := []PathMatch{
		{ID: first, Index: 1},  // (2,1)
		{ID: first, Index: 0},  // (2,2)
		{ID: second, Index: 0}, // (2,2)
		{ID: second, Index: 2}, // (4,2)
	}
	assert.Equal(t, want, got)
}

func TestAdjacentPathsExcludesCentre(t *testing.T) {
	r := NewPathRegistry()
	r.Publish([]Coordinate{C(5, 5)})
	assert.Empty(t, r.AdjacentPaths(C(5, 5)))
	assert.Len(t, r.AdjacentPaths(C(6, 6)), 1)
	assert.Empty(t, r.AdjacentPaths(C(7, 7)))
}

func TestSnapshotIsDeep(t *testing.T) {
	r := NewPathRegistry()
	r.Publish([]Coordinate{C(0, 0), C(1, 1)})
	snap := r.Snapshot()
	snap[0][0] = C(4, 4)
	assert.Equal(t, [][]Coordinate{{C(0, 0), C(1, 1)}}, r.Snapshot())
}

func TestClearKeepsIDsMonotonic(t *testing.T) {
	r := NewPathRegistry()
	old := r.Publish([]Coordinate{C(0, 0)})
	r.Clear()
	assert.Zero(t, r.Len())
	fresh := r.Publish([]Coordinate{C(0, 0)})
	assert.Greater(t, fresh, old)
	assert.False(t, r.Contains(old))
}
