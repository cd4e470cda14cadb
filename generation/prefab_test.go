package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-delve/data"
	"ebiten-delve/gamemap"
)

func TestPrefabBuilderStampsTrapHall(t *testing.T) {
	build := &BuilderMap{Map: gamemap.New(1, 80, 43)}
	require.NoError(t, NewPrefabBuilder(data.TrapHall).BuildInitial(fixedRoller{}, build))

	m := build.Map
	require.NotNil(t, build.StartingPosition)
	assert.Equal(t, gamemap.Position{X: 1, Y: 1}, *build.StartingPosition)
	assert.Equal(t, gamemap.TileFloor, m.Tiles[m.Index(1, 1)])
	assert.Equal(t, gamemap.TileDownStairs, m.Tiles[m.Index(17, 8)])

	// Template border and everything outside it stay wall.
	assert.Equal(t, gamemap.TileWall, m.Tiles[m.Index(0, 0)])
	assert.Equal(t, gamemap.TileWall, m.Tiles[m.Index(19, 9)])
	assert.Equal(t, gamemap.TileWall, m.Tiles[m.Index(25, 5)])
	assert.Equal(t, gamemap.TileWall, m.Tiles[m.Index(10, 30)])
}

func TestPrefabBuilderCollectsSpawnEntries(t *testing.T) {
	build := &BuilderMap{Map: gamemap.New(1, 80, 43)}
	require.NoError(t, NewPrefabBuilder(data.TrapHall).BuildInitial(fixedRoller{}, build))

	tags := make(map[string]int)
	for _, entry := range build.SpawnList {
		tags[entry.Tag]++
		// Spawn tiles are walkable.
		assert.Equal(t, gamemap.TileFloor, build.Map.Tiles[entry.Idx])
	}
	assert.Equal(t, map[string]int{
		"Goblin":        1,
		"Orc":           1,
		"Bear Trap":     1,
		"Rations":       1,
		"Health Potion": 1,
	}, tags)
}

func TestPrefabBuilderRejectsOversizedTemplate(t *testing.T) {
	tpl := data.LevelTemplate{Name: "huge", Width: 100, Height: 5, Glyphs: "\n#"}
	build := &BuilderMap{Map: gamemap.New(1, 80, 43)}
	assert.Error(t, NewPrefabBuilder(tpl).BuildInitial(fixedRoller{}, build))
}

func TestPrefabBuilderRejectsRowMismatch(t *testing.T) {
	tpl := data.LevelTemplate{
		Name:   "short",
		Width:  3,
		Height: 3,
		Glyphs: "\n###\n###",
	}
	build := &BuilderMap{Map: gamemap.New(1, 20, 20)}
	assert.Error(t, NewPrefabBuilder(tpl).BuildInitial(fixedRoller{}, build))
}

func TestPrefabBuilderRejectsRaggedRow(t *testing.T) {
	tpl := data.LevelTemplate{
		Name:   "ragged",
		Width:  3,
		Height: 2,
		Glyphs: "\n###\n##",
	}
	build := &BuilderMap{Map: gamemap.New(1, 20, 20)}
	assert.Error(t, NewPrefabBuilder(tpl).BuildInitial(fixedRoller{}, build))
}

func TestPrefabBuilderSkipsUnknownGlyphs(t *testing.T) {
	tpl := data.LevelTemplate{
		Name:   "odd",
		Width:  3,
		Height: 2,
		Glyphs: "\n#Z#\n###",
	}
	build := &BuilderMap{Map: gamemap.New(1, 20, 20)}
	require.NoError(t, NewPrefabBuilder(tpl).BuildInitial(fixedRoller{}, build))

	// The unknown glyph leaves its tile as it was.
	assert.Equal(t, gamemap.TileWall, build.Map.Tiles[build.Map.Index(1, 0)])
	assert.Empty(t, build.SpawnList)
}

func TestPrefabChainEndToEnd(t *testing.T) {
	chain := NewBuilderChain(1, 80, 43)
	chain.StartWith(NewPrefabBuilder(data.TrapHall))
	chain.With(NewAreaStartingPosition())
	chain.With(NewCullUnreachable())
	chain.With(NewDistantExit())

	require.NoError(t, chain.BuildMap(fixedRoller{}))

	// The template's own stairs survive; no second exit is added.
	m := chain.BuildData.Map
	stairs := 0
	for _, tile := range m.Tiles {
		if tile == gamemap.TileDownStairs {
			stairs++
		}
	}
	assert.Equal(t, 1, stairs)
	assert.Equal(t, gamemap.Position{X: 1, Y: 1}, *chain.BuildData.StartingPosition)
}
