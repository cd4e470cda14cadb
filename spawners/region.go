package spawners

import (
	log "github.com/sirupsen/logrus"

	"ebiten-delve/dice"
)

// Cap on the number of monsters rolled per spawn region.
const maxRegionSpawns = 4

// SpawnRegion rolls a depth-scaled number of entities from the table and
// asks the factory to place each on a distinct tile of the region. Tags
// the factory does not recognize are logged and skipped.
func SpawnRegion(rng dice.Roller, factory EntityFactory, table *RandomTable, region []int, depth int) {
	if len(region) == 0 {
		return
	}

	num := rng.RollDice(1, maxRegionSpawns+3) + (depth - 1) - 3
	if num > len(region) {
		num = len(region)
	}
	if num <= 0 {
		return
	}

	// Pick distinct tiles before rolling tags so a rejected tag does not
	// shift later placements.
	taken := make(map[int]bool, num)
	var tiles []int
	for len(tiles) < num {
		idx := region[rng.Range(0, len(region))]
		if taken[idx] {
			continue
		}
		taken[idx] = true
		tiles = append(tiles, idx)
	}

	for _, idx := range tiles {
		tag := table.Roll(rng)
		if tag == "" {
			continue
		}
		if _, ok := factory.SpawnNamedEntity(tag, AtTile(idx)); !ok {
			log.WithField("tag", tag).Warn("entity factory rejected spawn tag")
		}
	}
}
