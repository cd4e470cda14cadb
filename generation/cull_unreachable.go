package generation

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// CullUnreachable walls off every floor tile with no path to the starting
// position, so generators built from noise never leave isolated pockets.
type CullUnreachable struct{}

// NewCullUnreachable creates the meta builder.
func NewCullUnreachable() *CullUnreachable {
	return &CullUnreachable{}
}

// Transform converts unreachable floor tiles to wall. Requires a starting
// position from an earlier stage.
func (c *CullUnreachable) Transform(rng dice.Roller, build *BuilderMap) error {
	if build.StartingPosition == nil {
		return errors.New("culling unreachable tiles requires a starting position")
	}

	m := build.Map
	startIdx := m.Index(build.StartingPosition.X, build.StartingPosition.Y)
	dist := distanceField(m, startIdx)

	culled := mapset.New[int]()
	for idx, d := range dist {
		if d == unreachable && !m.BlocksMovement(idx) {
			culled.Put(idx)
		}
	}
	culled.Each(func(idx int) {
		m.Tiles[idx] = gamemap.TileWall
	})

	if culled.Size() > 0 {
		build.TakeSnapshot()
	}
	return nil
}
