package generation

import (
	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// SimpleRoomsBuilder proposes non-overlapping rectangular rooms by
// rejection sampling. It only produces room geometry; rasterizing tiles
// and carving corridors are meta builders' jobs.
type SimpleRoomsBuilder struct {
	MaxRooms int
	MinSize  int
	MaxSize  int
}

// NewSimpleRoomsBuilder creates the builder with the standard budget.
func NewSimpleRoomsBuilder() *SimpleRoomsBuilder {
	return &SimpleRoomsBuilder{MaxRooms: 30, MinSize: 6, MaxSize: 10}
}

// BuildInitial fills the rooms list. Each attempt proposes a random rect
// and rejects it if it touches an accepted one, so the attempt budget is
// the room count ceiling, not a promise.
func (b *SimpleRoomsBuilder) BuildInitial(rng dice.Roller, build *BuilderMap) error {
	m := build.Map
	rooms := make([]gamemap.Rect, 0, b.MaxRooms)

	for i := 0; i < b.MaxRooms; i++ {
		w := rng.Range(b.MinSize, b.MaxSize+1)
		h := rng.Range(b.MinSize, b.MaxSize+1)
		if m.Width-w-2 < 1 || m.Height-h-2 < 1 {
			continue
		}
		x := rng.Range(1, m.Width-w-1)
		y := rng.Range(1, m.Height-h-1)

		proposed := gamemap.NewRect(x, y, w, h)
		overlaps := false
		for _, room := range rooms {
			if proposed.Intersects(room) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rooms = append(rooms, proposed)
		}
	}

	build.Rooms = rooms
	build.TakeSnapshot()
	return nil
}
