package generation

import (
	"errors"

	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// DoglegCorridors connects successive room centers with L-shaped
// corridors, alternating the elbow direction at random.
type DoglegCorridors struct{}

// NewDoglegCorridors creates the meta builder.
func NewDoglegCorridors() *DoglegCorridors {
	return &DoglegCorridors{}
}

// Transform carves a corridor from each room to the one accepted before
// it. Requires a room list from an earlier stage.
func (c *DoglegCorridors) Transform(rng dice.Roller, build *BuilderMap) error {
	if build.Rooms == nil {
		return errors.New("corridor carving requires a chain that placed rooms")
	}

	m := build.Map
	for i := 1; i < len(build.Rooms); i++ {
		prevX, prevY := build.Rooms[i-1].Center()
		curX, curY := build.Rooms[i].Center()

		if rng.Range(0, 2) == 1 {
			carveHorizontal(m, prevX, curX, prevY)
			carveVertical(m, prevY, curY, curX)
		} else {
			carveVertical(m, prevY, curY, prevX)
			carveHorizontal(m, prevX, curX, curY)
		}
		build.TakeSnapshot()
	}
	return nil
}

func carveHorizontal(m *gamemap.Map, x1, x2, y int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) {
			m.Tiles[m.Index(x, y)] = gamemap.TileFloor
		}
	}
}

func carveVertical(m *gamemap.Map, y1, y2, x int) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) {
			m.Tiles[m.Index(x, y)] = gamemap.TileFloor
		}
	}
}
