package generation

import (
	"ebiten-delve/gamemap"
)

// fixedRoller pins every die to a single face so a generator's branches
// can be forced deterministically.
type fixedRoller struct {
	face int
}

func (f fixedRoller) RollDice(n, die int) int {
	return f.face * n
}

func (f fixedRoller) Range(min, max int) int {
	return min
}

// openMap builds a map whose interior is all floor inside a one-tile
// wall border.
func openMap(width, height int) *gamemap.Map {
	m := gamemap.New(1, width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			m.Tiles[m.Index(x, y)] = gamemap.TileFloor
		}
	}
	return m
}
