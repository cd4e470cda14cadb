package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

func TestNoiseCaveDeterministic(t *testing.T) {
	build1 := &BuilderMap{Map: gamemap.New(1, 60, 40)}
	build2 := &BuilderMap{Map: gamemap.New(1, 60, 40)}

	builder := NewNoiseCaveBuilder()
	require.NoError(t, builder.BuildInitial(dice.New(8), build1))
	require.NoError(t, builder.BuildInitial(dice.New(8), build2))

	assert.Equal(t, build1.Map.Tiles, build2.Map.Tiles)
}

func TestNoiseCaveKeepsBorderWalled(t *testing.T) {
	build := &BuilderMap{Map: gamemap.New(1, 60, 40)}
	require.NoError(t, NewNoiseCaveBuilder().BuildInitial(dice.New(8), build))

	m := build.Map
	for x := 0; x < m.Width; x++ {
		assert.Equal(t, gamemap.TileWall, m.Tiles[m.Index(x, 0)])
		assert.Equal(t, gamemap.TileWall, m.Tiles[m.Index(x, m.Height-1)])
	}
	for y := 0; y < m.Height; y++ {
		assert.Equal(t, gamemap.TileWall, m.Tiles[m.Index(0, y)])
		assert.Equal(t, gamemap.TileWall, m.Tiles[m.Index(m.Width-1, y)])
	}
}

func TestNoiseCaveOpensSomething(t *testing.T) {
	build := &BuilderMap{Map: gamemap.New(1, 80, 43)}
	require.NoError(t, NewNoiseCaveBuilder().BuildInitial(dice.New(8), build))

	floors := 0
	for _, tile := range build.Map.Tiles {
		if tile == gamemap.TileFloor {
			floors++
		}
	}
	assert.Greater(t, floors, 0)
}

func TestThresholdExtremes(t *testing.T) {
	// A threshold above the noise ceiling opens nothing.
	sealed := &NoiseCaveBuilder{Octaves: 3, Scale: 10, Threshold: 2.0}
	build := &BuilderMap{Map: gamemap.New(1, 30, 30)}
	require.NoError(t, sealed.BuildInitial(dice.New(8), build))
	for _, tile := range build.Map.Tiles {
		assert.Equal(t, gamemap.TileWall, tile)
	}

	// A threshold below the floor opens the whole interior.
	open := &NoiseCaveBuilder{Octaves: 3, Scale: 10, Threshold: -2.0}
	build = &BuilderMap{Map: gamemap.New(1, 30, 30)}
	require.NoError(t, open.BuildInitial(dice.New(8), build))
	m := build.Map
	assert.Equal(t, gamemap.TileFloor, m.Tiles[m.Index(15, 15)])
}
