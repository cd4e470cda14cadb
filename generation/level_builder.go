package generation

import (
	"ebiten-delve/config"
	"ebiten-delve/data"
	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
	"ebiten-delve/spawners"
)

// LevelBuilder assembles a randomly chosen builder chain for the given
// depth. Whatever shape the chain takes, it always ends with an exit
// placed far from the start and Voronoi spawn regions for population.
func LevelBuilder(depth, width, height int, rng dice.Roller) *BuilderChain {
	chain := NewBuilderChain(depth, width, height)

	switch rng.RollDice(1, 5) {
	case 1:
		chain.StartWith(NewSimpleRoomsBuilder())
		chain.With(NewRoomDrawer())
		chain.With(NewDoglegCorridors())
		chain.With(NewRoomBasedStartingPosition())
	case 2:
		chain.StartWith(NewPrefabBuilder(data.TrapHall))
		chain.With(NewAreaStartingPosition())
		chain.With(NewCullUnreachable())
	case 3:
		chain.StartWith(NewNoiseCaveBuilder())
		chain.With(NewAreaStartingPosition())
		chain.With(NewCullUnreachable())
	default:
		chain.StartWith(NewCellularAutomataBuilder())
		// Deep levels occasionally remix the caves through wave
		// function collapse for stranger layouts.
		if depth > 1 && rng.RollDice(1, 3) == 1 {
			chain.With(NewWaveformCollapseBuilder(config.WFCChunkSize))
		}
		chain.With(NewAreaStartingPosition())
		chain.With(NewCullUnreachable())
	}

	chain.With(NewDistantExit())
	chain.With(NewVoronoiSpawning())
	return chain
}

// GenerateLevel runs a full chain for the given depth and returns the
// finished map along with the stage outputs a caller needs to place the
// player and its entities.
func GenerateLevel(depth int, rng dice.Roller) (*gamemap.Map, gamemap.Position, []SpawnEntry, []*gamemap.Map, error) {
	chain := LevelBuilder(depth, config.MapWidth, config.MapHeight, rng)
	if err := chain.BuildMap(rng); err != nil {
		return nil, gamemap.Position{}, nil, nil, err
	}
	build := &chain.BuildData
	return build.Map, *build.StartingPosition, build.SpawnList, build.History, nil
}

// PopulateLevel spawns region and template entities onto a built chain.
func PopulateLevel(chain *BuilderChain, rng dice.Roller, factory spawners.EntityFactory) error {
	return chain.SpawnEntities(rng, factory)
}
