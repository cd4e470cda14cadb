package generation

import (
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"ebiten-delve/config"
	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
	"ebiten-delve/spawners"
)

// SpawnEntry pins an entity tag to a tile index. Order is generation
// order, not spatial order.
type SpawnEntry struct {
	Idx int
	Tag string
}

// BuilderMap is the shared build context threaded through a pipeline run.
// One chain owns it exclusively for the run's duration.
type BuilderMap struct {
	Map              *gamemap.Map
	StartingPosition *gamemap.Position
	Rooms            []gamemap.Rect
	SpawnList        []SpawnEntry
	SpawnRegions     map[int][]int
	History          []*gamemap.Map
}

// TakeSnapshot appends a deep copy of the working map to the history with
// every tile revealed, so the visualizer can show the whole grid. A no-op
// when the visualizer is disabled.
func (b *BuilderMap) TakeSnapshot() {
	if !config.ShowMapgenVisualizer {
		return
	}
	snapshot := b.Map.Clone()
	for i := range snapshot.Revealed {
		snapshot.Revealed[i] = true
	}
	b.History = append(b.History, snapshot)
}

// InitialMapBuilder produces a first-draft map from nothing.
type InitialMapBuilder interface {
	BuildInitial(rng dice.Roller, build *BuilderMap) error
}

// MetaMapBuilder mutates an already-drafted build context in place. A meta
// builder validates the preconditions it needs from earlier stages and
// returns an error rather than producing a malformed map.
type MetaMapBuilder interface {
	Transform(rng dice.Roller, build *BuilderMap) error
}

type chainState int

const (
	stateConfigured chainState = iota
	stateBuilt
	stateSpawned
)

// BuilderChain composes one initial builder and an ordered list of meta
// builders over a single build context.
type BuilderChain struct {
	starter  InitialMapBuilder
	builders []MetaMapBuilder
	state    chainState

	BuildData BuilderMap
}

// NewBuilderChain creates an empty chain for the given depth and map size.
func NewBuilderChain(depth, width, height int) *BuilderChain {
	return &BuilderChain{
		BuildData: BuilderMap{
			Map: gamemap.New(depth, width, height),
		},
	}
}

// StartWith sets the chain's initial builder. A chain has exactly one;
// setting a second is a composition bug, not a runtime condition.
func (c *BuilderChain) StartWith(starter InitialMapBuilder) {
	if c.starter != nil {
		panic("builder chain already has a starting builder")
	}
	c.starter = starter
}

// With appends a meta builder to the chain.
func (c *BuilderChain) With(meta MetaMapBuilder) {
	c.builders = append(c.builders, meta)
}

// BuildMap runs the initial builder and then each meta builder once, in
// order, short-circuiting on the first failure. No partial results are
// exposed: on error the chain stays unusable for spawning.
func (c *BuilderChain) BuildMap(rng dice.Roller) error {
	if c.state != stateConfigured {
		return errors.New("builder chain has already been built")
	}
	if c.starter == nil {
		return errors.New("builder chain has no starting builder")
	}

	if err := c.starter.BuildInitial(rng, &c.BuildData); err != nil {
		return fmt.Errorf("initial builder: %w", err)
	}
	for i, meta := range c.builders {
		if err := meta.Transform(rng, &c.BuildData); err != nil {
			return fmt.Errorf("meta builder %d: %w", i, err)
		}
	}

	c.state = stateBuilt
	return nil
}

// SpawnEntities hands the finished spawn list and region mapping to the
// entity factory, one call per entry. Only valid once the map is built;
// may be called again to re-spawn the same map.
func (c *BuilderChain) SpawnEntities(rng dice.Roller, factory spawners.EntityFactory) error {
	if c.state == stateConfigured {
		return errors.New("spawn entities requires a built map")
	}

	for _, entry := range c.BuildData.SpawnList {
		if _, ok := factory.SpawnNamedEntity(entry.Tag, spawners.AtTile(entry.Idx)); !ok {
			log.WithField("tag", entry.Tag).Warn("entity factory rejected spawn tag")
		}
	}

	table := spawners.DepthTable(c.BuildData.Map.Depth)
	for _, id := range sortedRegionIDs(c.BuildData.SpawnRegions) {
		spawners.SpawnRegion(rng, factory, table, c.BuildData.SpawnRegions[id], c.BuildData.Map.Depth)
	}

	c.state = stateSpawned
	return nil
}

// sortedRegionIDs keeps region spawning order stable across runs; map
// iteration order would break seed reproducibility.
func sortedRegionIDs(regions map[int][]int) []int {
	ids := make([]int, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
