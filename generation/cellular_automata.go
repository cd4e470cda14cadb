package generation

import (
	"ebiten-delve/config"
	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// CellularAutomataBuilder drafts organic cave layouts: a noisy random fill
// smoothed by repeated neighbour-count passes.
type CellularAutomataBuilder struct {
	// Passes is the number of smoothing iterations to run.
	Passes int
}

// NewCellularAutomataBuilder creates the builder with the standard pass count.
func NewCellularAutomataBuilder() *CellularAutomataBuilder {
	return &CellularAutomataBuilder{Passes: config.CellularAutomataPasses}
}

// BuildInitial randomizes the map interior (45% floor) and then applies
// the smoothing rule: a tile becomes a wall when more than four of its
// eight neighbours are walls, or when none are. The zero-neighbour rule
// kills isolated floor singletons; the majority rule erodes thin walls.
func (b *CellularAutomataBuilder) BuildInitial(rng dice.Roller, build *BuilderMap) error {
	m := build.Map

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			idx := m.Index(x, y)
			if rng.RollDice(1, 100) > 45 {
				m.Tiles[idx] = gamemap.TileWall
			} else {
				m.Tiles[idx] = gamemap.TileFloor
			}
		}
	}
	build.TakeSnapshot()

	for pass := 0; pass < b.Passes; pass++ {
		next := make([]gamemap.TileType, len(m.Tiles))
		copy(next, m.Tiles)

		for y := 1; y < m.Height-1; y++ {
			for x := 1; x < m.Width-1; x++ {
				idx := m.Index(x, y)
				neighbours := wallNeighbours(m, idx)
				if neighbours > 4 || neighbours == 0 {
					next[idx] = gamemap.TileWall
				} else {
					next[idx] = gamemap.TileFloor
				}
			}
		}

		m.Tiles = next
		build.TakeSnapshot()
	}
	return nil
}

// wallNeighbours counts walls among the eight neighbours of an interior tile.
func wallNeighbours(m *gamemap.Map, idx int) int {
	count := 0
	for _, offset := range [8]int{
		-1, 1,
		-m.Width, m.Width,
		-m.Width - 1, -m.Width + 1,
		m.Width - 1, m.Width + 1,
	} {
		if m.Tiles[idx+offset] == gamemap.TileWall {
			count++
		}
	}
	return count
}
