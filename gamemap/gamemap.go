package gamemap

// TileType identifies what occupies a single map cell.
type TileType int

// Tile types
const (
	TileWall TileType = iota
	TileFloor
	TileDownStairs
)

// Position is a tile coordinate on the map.
type Position struct {
	X int
	Y int
}

// Map stores the level grid. Width and Height are fixed at creation;
// Tiles is row-major with index = y*Width + x. Revealed and Visible carry
// per-tile fog-of-war state for the game systems; generation allocates
// them but never populates them.
type Map struct {
	Width    int
	Height   int
	Depth    int
	Tiles    []TileType
	Revealed []bool
	Visible  []bool
}

// New creates an all-wall map of the given dimensions for the given
// dungeon depth.
func New(depth, width, height int) *Map {
	return &Map{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Tiles:    make([]TileType, width*height),
		Revealed: make([]bool, width*height),
		Visible:  make([]bool, width*height),
	}
}

// Index converts a coordinate to a tile index. Callers are responsible
// for bounds-checking in hot loops; use InBounds first where the
// coordinate is not already known to be valid.
func (m *Map) Index(x, y int) int {
	return y*m.Width + x
}

// Coords converts a tile index back to its x, y coordinate.
func (m *Map) Coords(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// InBounds reports whether the coordinate lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// BlocksMovement reports whether the tile at idx cannot be walked on.
func (m *Map) BlocksMovement(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// IsOpaque reports whether the tile at idx blocks sight.
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// Clone returns a deep copy. Snapshot history relies on clones never
// aliasing the live map's backing arrays.
func (m *Map) Clone() *Map {
	c := &Map{
		Width:    m.Width,
		Height:   m.Height,
		Depth:    m.Depth,
		Tiles:    make([]TileType, len(m.Tiles)),
		Revealed: make([]bool, len(m.Revealed)),
		Visible:  make([]bool, len(m.Visible)),
	}
	copy(c.Tiles, m.Tiles)
	copy(c.Revealed, m.Revealed)
	copy(c.Visible, m.Visible)
	return c
}
