package generation

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// DistantExit places the stairs down on the reachable tile farthest from
// the starting position, measured in graph distance.
type DistantExit struct{}

// NewDistantExit creates the meta builder.
func NewDistantExit() *DistantExit {
	return &DistantExit{}
}

// Transform converts the most distant reachable tile to stairs. A map
// that already has stairs (a hand-authored template, say) is left alone.
// Requires a starting position.
func (e *DistantExit) Transform(rng dice.Roller, build *BuilderMap) error {
	m := build.Map
	for _, tile := range m.Tiles {
		if tile == gamemap.TileDownStairs {
			return nil
		}
	}

	if build.StartingPosition == nil {
		return errors.New("exit placement requires a starting position")
	}

	startIdx := m.Index(build.StartingPosition.X, build.StartingPosition.Y)
	exitIdx := MostDistantReachable(m, startIdx)
	if exitIdx == startIdx {
		log.WithField("depth", m.Depth).Warn("degenerate map: stairs share the starting tile")
	}

	m.Tiles[exitIdx] = gamemap.TileDownStairs
	build.TakeSnapshot()
	return nil
}
