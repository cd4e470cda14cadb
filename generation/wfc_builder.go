package generation

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"ebiten-delve/config"
	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// Restart budget for wave function collapse attempts. Contradictions are
// normal and recovered internally; burning the whole budget means the
// learned pattern set cannot tile the map and the chain is misassembled.
const wfcMaxAttempts = 1000

// WaveformCollapseBuilder learns adjacency patterns from the map built by
// earlier stages and reconstructs a new map of the same dimensions that
// locally resembles the source at the pattern scale.
type WaveformCollapseBuilder struct {
	ChunkSize int
}

// NewWaveformCollapseBuilder creates the meta builder.
func NewWaveformCollapseBuilder(chunkSize int) *WaveformCollapseBuilder {
	if chunkSize <= 0 {
		chunkSize = config.WFCChunkSize
	}
	return &WaveformCollapseBuilder{ChunkSize: chunkSize}
}

// Transform replaces the working map with a collapsed reconstruction.
// Each solve attempt runs to completion or to a contradiction; a
// contradiction throws the whole attempt away and starts over rather
// than backtracking. Stage outputs tied to the old tile layout
// (starting position, rooms, spawns, regions) are invalidated.
func (w *WaveformCollapseBuilder) Transform(rng dice.Roller, build *BuilderMap) error {
	m := build.Map
	if w.ChunkSize > m.Width || w.ChunkSize > m.Height {
		return fmt.Errorf("wave function collapse needs a source of at least %dx%d tiles", w.ChunkSize, w.ChunkSize)
	}

	// Train on the source without its stairs; the exit is placed fresh
	// by a later stage.
	source := m.Clone()
	for i, t := range source.Tiles {
		if t == gamemap.TileDownStairs {
			source.Tiles[i] = gamemap.TileFloor
		}
	}

	chunks := buildChunks(source, w.ChunkSize, true)
	if len(chunks) == 0 {
		return errors.New("wave function collapse extracted no patterns")
	}

	for attempt := 1; ; attempt++ {
		if attempt > wfcMaxAttempts {
			return fmt.Errorf("wave function collapse gave up after %d attempts", wfcMaxAttempts)
		}

		build.Map = gamemap.New(m.Depth, m.Width, m.Height)
		solver := NewSolver(chunks, w.ChunkSize, build.Map)
		for !solver.Iteration(build.Map, rng) {
			build.TakeSnapshot()
		}
		build.TakeSnapshot()

		if solver.Possible {
			break
		}
		log.WithField("attempt", attempt).Debug("wave function collapse contradiction, restarting")
	}

	build.StartingPosition = nil
	build.Rooms = nil
	build.SpawnList = nil
	build.SpawnRegions = nil
	return nil
}
