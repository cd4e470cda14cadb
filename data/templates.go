package data

// LevelTemplate is a hand-authored level layout, one character per tile.
// Glyph table: space=floor, #=wall, @=player start, >=stairs down; any
// other recognized glyph is floor plus a named entity spawn at that tile.
type LevelTemplate struct {
	Name   string
	Width  int
	Height int
	Glyphs string
}

// TrapHall is a small two-chamber set piece with a baited treasure room.
var TrapHall = LevelTemplate{
	Name:   "trap_hall",
	Width:  20,
	Height: 10,
	Glyphs: `
####################
#@       #     %   #
#        #         #
#   g    #    o    #
#                  #
#        #         #
# !      #   ^     #
#        #         #
#        #       > #
####################`,
}

// Templates indexes every authored template by name.
var Templates = map[string]LevelTemplate{
	TrapHall.Name: TrapHall,
}

// TemplateByName looks up an authored template.
func TemplateByName(name string) (LevelTemplate, bool) {
	tpl, ok := Templates[name]
	return tpl, ok
}
