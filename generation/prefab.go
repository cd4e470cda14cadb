package generation

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"ebiten-delve/data"
	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// PrefabBuilder stamps a hand-authored glyph template into the top-left
// of the map; everything outside the template stays wall.
type PrefabBuilder struct {
	template data.LevelTemplate
}

// NewPrefabBuilder creates the builder for one template.
func NewPrefabBuilder(tpl data.LevelTemplate) *PrefabBuilder {
	return &PrefabBuilder{template: tpl}
}

// BuildInitial parses the template one glyph per tile. A template that
// does not match its declared size, or does not fit the map, is a
// configuration error. Unrecognized glyphs are logged and skipped.
func (p *PrefabBuilder) BuildInitial(rng dice.Roller, build *BuilderMap) error {
	m := build.Map
	tpl := p.template

	if tpl.Width > m.Width || tpl.Height > m.Height {
		return fmt.Errorf("template %q is %dx%d but the map is only %dx%d",
			tpl.Name, tpl.Width, tpl.Height, m.Width, m.Height)
	}

	lines := strings.Split(strings.Trim(tpl.Glyphs, "\n"), "\n")
	if len(lines) != tpl.Height {
		return fmt.Errorf("template %q declares %d rows but has %d", tpl.Name, tpl.Height, len(lines))
	}

	for y, line := range lines {
		if len(line) != tpl.Width {
			return fmt.Errorf("template %q row %d is %d glyphs wide, want %d", tpl.Name, y, len(line), tpl.Width)
		}
		for x, glyph := range line {
			idx := m.Index(x, y)
			switch glyph {
			case ' ':
				m.Tiles[idx] = gamemap.TileFloor
			case '#':
				m.Tiles[idx] = gamemap.TileWall
			case '@':
				m.Tiles[idx] = gamemap.TileFloor
				build.StartingPosition = &gamemap.Position{X: x, Y: y}
			case '>':
				m.Tiles[idx] = gamemap.TileDownStairs
			case 'g':
				m.Tiles[idx] = gamemap.TileFloor
				build.SpawnList = append(build.SpawnList, SpawnEntry{Idx: idx, Tag: "Goblin"})
			case 'o':
				m.Tiles[idx] = gamemap.TileFloor
				build.SpawnList = append(build.SpawnList, SpawnEntry{Idx: idx, Tag: "Orc"})
			case '^':
				m.Tiles[idx] = gamemap.TileFloor
				build.SpawnList = append(build.SpawnList, SpawnEntry{Idx: idx, Tag: "Bear Trap"})
			case '%':
				m.Tiles[idx] = gamemap.TileFloor
				build.SpawnList = append(build.SpawnList, SpawnEntry{Idx: idx, Tag: "Rations"})
			case '!':
				m.Tiles[idx] = gamemap.TileFloor
				build.SpawnList = append(build.SpawnList, SpawnEntry{Idx: idx, Tag: "Health Potion"})
			default:
				log.WithFields(log.Fields{
					"template": tpl.Name,
					"glyph":    string(glyph),
				}).Warn("unknown glyph in level template")
			}
		}
	}

	build.TakeSnapshot()
	return nil
}
