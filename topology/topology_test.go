package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmisabella/mazer/topology"
)

// TestNeighbors_Symmetric checks for every family and every cell of a 7×5
// board that each neighbor relation is mirrored by the opposite direction.
func TestNeighbors_Symmetric(t *testing.T) {
	const w, h = 7, 5
	for _, fam := range topology.Families {
		topo, err := topology.ForFamily(fam)
		require.NoError(t, err)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := topology.Coord{X: x, Y: y}
				for _, n := range topo.Neighbors(c, w, h) {
					back := topo.Neighbors(n.At, w, h)
					found := false
					for _, b := range back {
						if b.At == c {
							found = true
							assert.Equal(t, n.Dir.Opposite(), b.Dir, "%s %v→%v", fam, c, n.At)
						}
					}
					assert.True(t, found, "%s: %v lists %v but not vice versa", fam, c, n.At)
				}
			}
		}
	}
}

// TestNeighbors_Counts verifies interior cells have the family's full degree
// and corners lose their out-of-range neighbors.
func TestNeighbors_Counts(t *testing.T) {
	cases := []struct {
		fam      topology.Family
		interior topology.Coord
		degree   int
	}{
		{topology.Orthogonal, topology.Coord{X: 2, Y: 2}, 4},
		{topology.Sigma, topology.Coord{X: 2, Y: 2}, 6},
		{topology.Sigma, topology.Coord{X: 3, Y: 2}, 6},
		{topology.Delta, topology.Coord{X: 2, Y: 2}, 3},
		{topology.Delta, topology.Coord{X: 3, Y: 2}, 3},
	}
	for _, tc := range cases {
		topo, err := topology.ForFamily(tc.fam)
		require.NoError(t, err)
		assert.Len(t, topo.Neighbors(tc.interior, 6, 6), tc.degree, "%s %v", tc.fam, tc.interior)
	}

	sq, _ := topology.ForFamily(topology.Orthogonal)
	corner := sq.Neighbors(topology.Coord{}, 3, 3)
	require.Len(t, corner, 2)
	assert.Equal(t, topology.East, corner[0].Dir)
	assert.Equal(t, topology.South, corner[1].Dir)
}

// TestDelta_Orientation checks the Up/Down checkerboard and that it is
// propagated to neighbors.
func TestDelta_Orientation(t *testing.T) {
	topo, _ := topology.ForFamily(topology.Delta)
	assert.Equal(t, topology.Up, topo.OrientationAt(topology.Coord{X: 0, Y: 0}))
	assert.Equal(t, topology.Down, topo.OrientationAt(topology.Coord{X: 1, Y: 0}))
	assert.Equal(t, topology.Down, topo.OrientationAt(topology.Coord{X: 0, Y: 1}))

	for _, n := range topo.Neighbors(topology.Coord{X: 2, Y: 2}, 5, 5) {
		assert.Equal(t, topology.Down, n.Orientation, "neighbor %v of an Up cell", n.At)
	}
}

// TestParseFamily covers names, aliases and the unknown case.
func TestParseFamily(t *testing.T) {
	for in, want := range map[string]topology.Family{
		"Orthogonal": topology.Orthogonal,
		"square":     topology.Orthogonal,
		"Sigma":      topology.Sigma,
		"hex":        topology.Sigma,
		" delta ":    topology.Delta,
	} {
		got, err := topology.ParseFamily(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := topology.ParseFamily("Polar")
	assert.ErrorIs(t, err, topology.ErrUnknownFamily)

	_, err = topology.ForFamily(topology.Family(42))
	assert.ErrorIs(t, err, topology.ErrUnknownFamily)
}

// TestDirectionNames round-trips every direction identifier.
func TestDirectionNames(t *testing.T) {
	for d := topology.North; d <= topology.Northwest; d++ {
		got, ok := topology.ParseDirection(d.String())
		require.True(t, ok, d.String())
		assert.Equal(t, d, got)
	}
	_, ok := topology.ParseDirection("Up")
	assert.False(t, ok)
}
