package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"ebiten-delve/config"
	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
	"ebiten-delve/generation"
	"ebiten-delve/spawners"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the generation run")
	depth := flag.Int("depth", 1, "dungeon depth to generate for")
	dump := flag.Bool("dump", false, "print the generated level as text and exit")
	verbose := flag.Bool("verbose", false, "log builder internals")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.WithFields(log.Fields{"seed": *seed, "depth": *depth}).Info("generating level")

	if *dump {
		// No snapshots needed for a text dump.
		config.ShowMapgenVisualizer = false
	}

	rng := dice.New(*seed)
	chain := generation.LevelBuilder(*depth, config.MapWidth, config.MapHeight, rng)
	if err := chain.BuildMap(rng); err != nil {
		log.WithError(err).Fatal("level generation failed")
	}

	factory := newRecordingFactory()
	if err := generation.PopulateLevel(chain, rng, factory); err != nil {
		log.WithError(err).Fatal("entity spawning failed")
	}

	if *dump {
		fmt.Print(renderText(&chain.BuildData, factory))
		return
	}

	viewer := NewMapgenViewer(chain.BuildData.History, chain.BuildData.StartingPosition)
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Delve - Mapgen Viewer")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}

// recordingFactory is the entity factory for the standalone generator:
// it hands out IDs and remembers tile placements so the text dump can
// show them. Carried and equipped placements have nowhere to render and
// are only counted.
type recordingFactory struct {
	nextID     spawners.EntityID
	tilesSpawn map[int]string
}

func newRecordingFactory() *recordingFactory {
	return &recordingFactory{nextID: 1, tilesSpawn: make(map[int]string)}
}

func (f *recordingFactory) SpawnNamedEntity(tag string, placement spawners.Placement) (spawners.EntityID, bool) {
	id := f.nextID
	f.nextID++
	if placement.Kind == spawners.PlaceAtTile {
		f.tilesSpawn[placement.TileIndex] = tag
	}
	log.WithFields(log.Fields{"tag": tag, "id": id}).Debug("spawned entity")
	return id, true
}

// renderText draws the finished map as one character per tile, with
// spawned entities shown by the first letter of their tag and the
// starting position as @.
func renderText(build *generation.BuilderMap, factory *recordingFactory) string {
	m := build.Map
	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			glyph := byte('#')
			switch m.Tiles[idx] {
			case gamemap.TileFloor:
				glyph = '.'
			case gamemap.TileDownStairs:
				glyph = '>'
			}
			if tag, ok := factory.tilesSpawn[idx]; ok && len(tag) > 0 {
				glyph = strings.ToLower(tag[:1])[0]
			}
			if build.StartingPosition != nil && build.StartingPosition.X == x && build.StartingPosition.Y == y {
				glyph = '@'
			}
			sb.WriteByte(glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
