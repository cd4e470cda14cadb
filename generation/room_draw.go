package generation

import (
	"errors"

	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// RoomDrawer rasterizes room rectangles into floor tiles. Rooms are
// rejected on touch when proposed, so accepted rooms always keep at least
// one wall tile between their interiors.
type RoomDrawer struct{}

// NewRoomDrawer creates the meta builder.
func NewRoomDrawer() *RoomDrawer {
	return &RoomDrawer{}
}

// Transform writes floor into every room interior. Running without a room
// list is a chain composition error.
func (d *RoomDrawer) Transform(rng dice.Roller, build *BuilderMap) error {
	if build.Rooms == nil {
		return errors.New("room drawing requires a chain that placed rooms")
	}

	m := build.Map
	for _, room := range build.Rooms {
		for y := room.Y1 + 1; y <= room.Y2; y++ {
			for x := room.X1 + 1; x <= room.X2; x++ {
				if m.InBounds(x, y) {
					m.Tiles[m.Index(x, y)] = gamemap.TileFloor
				}
			}
		}
		build.TakeSnapshot()
	}
	return nil
}
