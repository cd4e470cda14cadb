package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-delve/gamemap"
)

func TestDistanceFieldManhattanOnOpenMap(t *testing.T) {
	m := openMap(11, 11)
	start := m.Index(5, 5)

	dist := distanceField(m, start)

	assert.Equal(t, 0, dist[start])
	assert.Equal(t, 1, dist[m.Index(5, 4)])
	assert.Equal(t, 8, dist[m.Index(1, 1)])
	// The border wall is never entered.
	assert.Equal(t, unreachable, dist[m.Index(0, 5)])
}

func TestDistanceFieldRoutesAroundWalls(t *testing.T) {
	m := openMap(11, 11)
	// Wall off column 5 except for a gap at the bottom row.
	for y := 1; y < m.Height-2; y++ {
		m.Tiles[m.Index(5, y)] = gamemap.TileWall
	}

	dist := distanceField(m, m.Index(1, 1))

	// Straight-line distance to (9,1) would be 8; the detour through
	// the gap at (5,9) forces 4+8+4+8 = 24 steps.
	assert.Equal(t, 24, dist[m.Index(9, 1)])
}

func TestDistanceFieldUnreachablePocket(t *testing.T) {
	m := openMap(11, 11)
	for y := 1; y < m.Height-1; y++ {
		m.Tiles[m.Index(5, y)] = gamemap.TileWall
	}

	dist := distanceField(m, m.Index(1, 1))

	assert.Equal(t, unreachable, dist[m.Index(9, 1)])
	assert.GreaterOrEqual(t, dist[m.Index(4, 9)], 0)
}

func TestDistanceFieldBlockedStart(t *testing.T) {
	m := openMap(7, 7)
	dist := distanceField(m, m.Index(0, 0))

	for _, d := range dist {
		assert.Equal(t, unreachable, d)
	}
}

func TestMostDistantReachable(t *testing.T) {
	m := openMap(11, 11)
	start := m.Index(1, 1)

	far := MostDistantReachable(m, start)
	fx, fy := m.Coords(far)

	// The opposite corner is maximally distant.
	assert.Equal(t, 9, fx)
	assert.Equal(t, 9, fy)
}

func TestMostDistantReachableDegenerate(t *testing.T) {
	// One open tile: nothing is reachable beyond the start, which is
	// returned as its own exit.
	m := gamemap.New(1, 7, 7)
	start := m.Index(3, 3)
	m.Tiles[start] = gamemap.TileFloor

	assert.Equal(t, start, MostDistantReachable(m, start))
}
