package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-delve/config"
	"ebiten-delve/gamemap"
)

// One snapshot is held on screen for config.SnapshotIntervalMS.
const ticksPerSnapshot = config.SnapshotIntervalMS * ebiten.DefaultTPS / 1000

var (
	wallColor   = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	floorColor  = color.RGBA{R: 170, G: 160, B: 140, A: 255}
	stairsColor = color.RGBA{R: 220, G: 200, B: 60, A: 255}
	startColor  = color.RGBA{R: 80, G: 200, B: 120, A: 255}
)

// MapgenViewer plays back the snapshot history of a builder chain so the
// stages can be watched shaping the level. Space skips to the finished
// map, R restarts the playback.
type MapgenViewer struct {
	history []*gamemap.Map
	start   *gamemap.Position
	frame   int
	ticks   int
	tile    *ebiten.Image
}

// NewMapgenViewer creates a viewer over a chain's snapshot history.
func NewMapgenViewer(history []*gamemap.Map, start *gamemap.Position) *MapgenViewer {
	tile := ebiten.NewImage(1, 1)
	tile.Fill(color.White)
	return &MapgenViewer{history: history, start: start, tile: tile}
}

// Update advances the playback clock and handles the skip/replay keys.
func (v *MapgenViewer) Update() error {
	if len(v.history) == 0 {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.frame = len(v.history) - 1
		v.ticks = 0
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.frame = 0
		v.ticks = 0
		return nil
	}

	v.ticks++
	if v.ticks >= ticksPerSnapshot && v.frame < len(v.history)-1 {
		v.frame++
		v.ticks = 0
	}
	return nil
}

// Draw renders the current snapshot, one colored cell per tile.
func (v *MapgenViewer) Draw(screen *ebiten.Image) {
	if len(v.history) == 0 {
		ebitenutil.DebugPrint(screen, "no snapshots recorded")
		return
	}

	m := v.history[v.frame]
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := wallColor
			switch m.Tiles[m.Index(x, y)] {
			case gamemap.TileFloor:
				c = floorColor
			case gamemap.TileDownStairs:
				c = stairsColor
			}
			v.drawCell(screen, x, y, c)
		}
	}

	// The start marker only means something on the finished map.
	if v.start != nil && v.frame == len(v.history)-1 {
		v.drawCell(screen, v.start.X, v.start.Y, startColor)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("snapshot %d/%d   [space] skip   [r] replay",
		v.frame+1, len(v.history)))
}

func (v *MapgenViewer) drawCell(screen *ebiten.Image, x, y int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.TileSize, config.TileSize)
	op.GeoM.Translate(float64(x*config.TileSize), float64(y*config.TileSize))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(v.tile, op)
}

// Layout reports the fixed logical screen size.
func (v *MapgenViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetWindowSize()
}
