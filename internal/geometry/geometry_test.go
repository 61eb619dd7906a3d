package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbj42/hidoku/internal/core"
)

func TestNeighboursOrthogonalCorner(t *testing.T) {
	ns := Neighbours(4, 4, false, 0, 0)
	require.ElementsMatch(t, []core.Location{{X: 1, Y: 0}, {X: 0, Y: 1}}, ns)
}

func TestNeighboursDiagonalCenter(t *testing.T) {
	ns := Neighbours(4, 4, true, 1, 1)
	require.Len(t, ns, 8)
}

func TestNeighboursExcept(t *testing.T) {
	ns := NeighboursExcept(4, 4, false, 1, 1, core.Location{X: 1, Y: 0})
	require.ElementsMatch(t, []core.Location{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}}, ns)
}

func TestDistance(t *testing.T) {
	a := core.Location{X: 0, Y: 0}
	b := core.Location{X: 3, Y: 2}
	require.Equal(t, 5, Distance(a, b, false))
	require.Equal(t, 3, Distance(a, b, true))
}

func TestAreNeighbours(t *testing.T) {
	require.True(t, AreNeighbours(core.Location{X: 0, Y: 0}, core.Location{X: 1, Y: 0}, false))
	require.False(t, AreNeighbours(core.Location{X: 0, Y: 0}, core.Location{X: 1, Y: 1}, false))
	require.True(t, AreNeighbours(core.Location{X: 0, Y: 0}, core.Location{X: 1, Y: 1}, true))
}
