package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmisabella/mazer/grid"
	"github.com/jmisabella/mazer/topology"
)

// corridor links a 3×2 grid as (0,0)-(1,0)-(2,0)-(2,1)-(1,1)-(0,1) and
// starts the player at (0,0).
func corridor(t *testing.T) *grid.Grid {
	t.Helper()
	g := square(t, 3, 2)
	path := []topology.Coord{xy(0, 0), xy(1, 0), xy(2, 0), xy(2, 1), xy(1, 1), xy(0, 1)}
	for i := 1; i < len(path); i++ {
		require.NoError(t, g.Link(path[i-1], path[i]))
	}
	require.NoError(t, g.SetStart(xy(0, 0)))
	require.NoError(t, g.SetGoal(xy(0, 1)))
	return g
}

func countFlags(g *grid.Grid) (active, visited, seen int) {
	for _, c := range g.Cells() {
		if c.IsActive {
			active++
		}
		if c.IsVisited {
			visited++
		}
		if c.HasBeenVisited {
			seen++
		}
	}
	return active, visited, seen
}

// TestMove_StartsAtStart places the only active cell on start.
func TestMove_StartsAtStart(t *testing.T) {
	g := corridor(t)
	at, ok := g.Active()
	require.True(t, ok)
	assert.Equal(t, xy(0, 0), at)

	active, visited, seen := countFlags(g)
	assert.Equal(t, 1, active)
	assert.Equal(t, 1, visited)
	assert.Equal(t, 1, seen)
	assert.Equal(t, []topology.Coord{xy(0, 0)}, g.Trail())
}

// TestMove_Blocked leaves every flag unchanged when a wall is in the way.
func TestMove_Blocked(t *testing.T) {
	g := corridor(t)
	for _, d := range []topology.Direction{topology.North, topology.South, topology.West, topology.Northeast} {
		at, err := g.Move(d)
		assert.ErrorIs(t, err, grid.ErrBlockedMove, "%s", d)
		assert.Equal(t, xy(0, 0), at)
	}
	active, visited, seen := countFlags(g)
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{active, visited, seen})
	at, _ := g.Active()
	assert.Equal(t, xy(0, 0), at)
}

// TestMove_Valid moves the active cell and grows both visit sets.
func TestMove_Valid(t *testing.T) {
	g := corridor(t)
	at, err := g.Move(topology.East)
	require.NoError(t, err)
	assert.Equal(t, xy(1, 0), at)

	active, visited, seen := countFlags(g)
	assert.Equal(t, 1, active)
	assert.Equal(t, 2, visited)
	assert.Equal(t, 2, seen)
	c, _ := g.Cell(xy(1, 0))
	assert.True(t, c.IsActive)
	c, _ = g.Cell(xy(0, 0))
	assert.False(t, c.IsActive)
	assert.True(t, c.IsVisited)
}

// TestMove_Backtrack shortens the trail but keeps the history.
func TestMove_Backtrack(t *testing.T) {
	g := corridor(t)
	for _, d := range []topology.Direction{topology.East, topology.East, topology.South} {
		_, err := g.Move(d)
		require.NoError(t, err)
	}
	_, err := g.Move(topology.North)
	require.NoError(t, err)

	assert.Equal(t, []topology.Coord{xy(0, 0), xy(1, 0), xy(2, 0)}, g.Trail())
	_, visited, seen := countFlags(g)
	assert.Equal(t, 3, visited)
	assert.Equal(t, 4, seen)
	c, _ := g.Cell(xy(2, 1))
	assert.False(t, c.IsVisited)
	assert.True(t, c.HasBeenVisited)
}

// TestMove_Loop cuts the trail when a braided loop returns to a trail cell.
func TestMove_Loop(t *testing.T) {
	g := corridor(t)
	require.NoError(t, g.Link(xy(0, 0), xy(0, 1)))
	for _, d := range []topology.Direction{topology.East, topology.East, topology.South, topology.West, topology.West} {
		_, err := g.Move(d)
		require.NoError(t, err)
	}
	_, err := g.Move(topology.North)
	require.NoError(t, err)
	assert.Equal(t, []topology.Coord{xy(0, 0)}, g.Trail())
	_, visited, seen := countFlags(g)
	assert.Equal(t, 1, visited)
	assert.Equal(t, 6, seen)
}

// TestMove_NoStart requires a start cell.
func TestMove_NoStart(t *testing.T) {
	g := square(t, 2, 2)
	_, ok := g.Active()
	assert.False(t, ok)
	_, err := g.Move(topology.East)
	assert.ErrorIs(t, err, grid.ErrValidation)
}

// TestSetStart_ResetsNavigation discards the previous trail.
func TestSetStart_ResetsNavigation(t *testing.T) {
	g := corridor(t)
	_, err := g.Move(topology.East)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(xy(2, 0)))

	at, _ := g.Active()
	assert.Equal(t, xy(2, 0), at)
	active, visited, seen := countFlags(g)
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{active, visited, seen})
}

func masks(g *grid.Grid) (visited, seen []bool) {
	for _, c := range g.Cells() {
		visited = append(visited, c.IsVisited)
		seen = append(seen, c.HasBeenVisited)
	}
	return visited, seen
}

// TestRestoreNavigation rebuilds the trail from flags, including across a loop.
func TestRestoreNavigation(t *testing.T) {
	g := corridor(t)
	require.NoError(t, g.Link(xy(0, 0), xy(0, 1)))
	for _, d := range []topology.Direction{topology.East, topology.East, topology.South, topology.West} {
		_, err := g.Move(d)
		require.NoError(t, err)
	}
	visited, seen := masks(g)
	at, _ := g.Active()

	h := corridor(t)
	require.NoError(t, h.Link(xy(0, 0), xy(0, 1)))
	require.NoError(t, h.RestoreNavigation(at, visited, seen))
	assert.Equal(t, g.Trail(), h.Trail())
	assert.Equal(t, g.Cells(), h.Cells())

	_, err := h.Move(topology.West)
	require.NoError(t, err)
	assert.Len(t, h.Trail(), 6)
	_, err = h.Move(topology.North)
	require.NoError(t, err)
	assert.Equal(t, []topology.Coord{xy(0, 0)}, h.Trail())
}

// TestRestoreNavigation_Invalid rejects flags that no trail explains.
func TestRestoreNavigation_Invalid(t *testing.T) {
	g := corridor(t)
	visited, seen := masks(g)

	assert.ErrorIs(t, g.RestoreNavigation(xy(2, 0), visited, seen), grid.ErrValidation)
	assert.ErrorIs(t, g.RestoreNavigation(xy(0, 0), visited[:2], seen), grid.ErrValidation)
	assert.ErrorIs(t, g.RestoreNavigation(xy(9, 9), visited, seen), grid.ErrInvalidCoordinate)

	gap := append([]bool(nil), visited...)
	gap[2] = true // (2,0) without (1,0)
	seenAll := []bool{true, true, true, true, true, true}
	assert.ErrorIs(t, g.RestoreNavigation(xy(2, 0), gap, seenAll), grid.ErrValidation)

	onlyStart := []bool{true, false, false, false, false, false}
	assert.ErrorIs(t, g.RestoreNavigation(xy(0, 0), visited, make([]bool, 6)), grid.ErrValidation)
	assert.NoError(t, g.RestoreNavigation(xy(0, 0), visited, onlyStart))
}
