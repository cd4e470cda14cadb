package generation

import (
	"errors"

	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// AreaStartingPosition picks a starting tile for cave-style maps: start
// at the center and walk left until an open tile turns up, falling back
// to a whole-map scan. Leaves an already-chosen start alone.
type AreaStartingPosition struct{}

// NewAreaStartingPosition creates the meta builder.
func NewAreaStartingPosition() *AreaStartingPosition {
	return &AreaStartingPosition{}
}

// Transform sets build.StartingPosition unless an earlier stage did.
func (s *AreaStartingPosition) Transform(rng dice.Roller, build *BuilderMap) error {
	if build.StartingPosition != nil {
		return nil
	}

	m := build.Map
	y := m.Height / 2
	for x := m.Width / 2; x >= 0; x-- {
		if !m.BlocksMovement(m.Index(x, y)) {
			build.StartingPosition = &gamemap.Position{X: x, Y: y}
			build.TakeSnapshot()
			return nil
		}
	}

	// Nothing on the center row's left half; take the first open tile.
	for idx := range m.Tiles {
		if !m.BlocksMovement(idx) {
			x, y := m.Coords(idx)
			build.StartingPosition = &gamemap.Position{X: x, Y: y}
			build.TakeSnapshot()
			return nil
		}
	}
	return errors.New("starting position requires at least one walkable tile")
}

// RoomBasedStartingPosition starts the player in the center of the first
// accepted room.
type RoomBasedStartingPosition struct{}

// NewRoomBasedStartingPosition creates the meta builder.
func NewRoomBasedStartingPosition() *RoomBasedStartingPosition {
	return &RoomBasedStartingPosition{}
}

// Transform sets the start from the first room. Requires a room list.
func (s *RoomBasedStartingPosition) Transform(rng dice.Roller, build *BuilderMap) error {
	if build.StartingPosition != nil {
		return nil
	}
	if len(build.Rooms) == 0 {
		return errors.New("room based starting position requires a chain that placed rooms")
	}

	x, y := build.Rooms[0].Center()
	build.StartingPosition = &gamemap.Position{X: x, Y: y}
	build.TakeSnapshot()
	return nil
}
