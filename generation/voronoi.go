package generation

import (
	"ebiten-delve/config"
	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// voronoiRegions partitions the map's floor tiles into nearest-seed
// buckets. Seeds are scattered over floor tiles; every floor tile joins
// the region of its nearest seed by squared euclidean distance, ties to
// the earliest seed. Regions that end up empty are omitted.
func voronoiRegions(m *gamemap.Map, seedCount int, rng dice.Roller) map[int][]int {
	var floors []int
	for idx, tile := range m.Tiles {
		if tile == gamemap.TileFloor {
			floors = append(floors, idx)
		}
	}
	regions := make(map[int][]int)
	if len(floors) == 0 || seedCount <= 0 {
		return regions
	}

	seeds := make([]int, seedCount)
	for i := range seeds {
		seeds[i] = floors[rng.Range(0, len(floors))]
	}

	for _, idx := range floors {
		x, y := m.Coords(idx)
		best := 0
		bestDist := -1
		for i, seed := range seeds {
			sx, sy := m.Coords(seed)
			dx, dy := x-sx, y-sy
			d := dx*dx + dy*dy
			if bestDist == -1 || d < bestDist {
				best = i
				bestDist = d
			}
		}
		regions[best] = append(regions[best], idx)
	}
	return regions
}

// VoronoiSpawning partitions final floor tiles into spawn regions so the
// entity-spawning phase gets spatially balanced buckets. It stores the
// mapping; it does not create entities.
type VoronoiSpawning struct {
	SeedCount int
}

// NewVoronoiSpawning creates the meta builder with the standard seed count.
func NewVoronoiSpawning() *VoronoiSpawning {
	return &VoronoiSpawning{SeedCount: config.VoronoiSeedCount}
}

// Transform fills build.SpawnRegions.
func (v *VoronoiSpawning) Transform(rng dice.Roller, build *BuilderMap) error {
	build.SpawnRegions = voronoiRegions(build.Map, v.SeedCount, rng)
	return nil
}
