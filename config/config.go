package config

// Map and generation tuning constants
const (
	// Tile size in pixels for the visualizer
	TileSize = 16

	// Level dimensions in tiles
	MapWidth  = 80
	MapHeight = 43

	// Number of smoothing passes the cellular automata generator runs
	CellularAutomataPasses = 15

	// Side length of a wave function collapse pattern chunk
	WFCChunkSize = 8

	// Number of seed points scattered for voronoi spawn regions
	VoronoiSeedCount = 24

	// Milliseconds each generation snapshot is shown in the visualizer
	SnapshotIntervalMS = 200
)

// ShowMapgenVisualizer controls whether builders record snapshot history.
// Turning it off skips the per-stage map copies entirely.
var ShowMapgenVisualizer = true

// GetWindowSize returns the recommended visualizer window size in pixels
func GetWindowSize() (width, height int) {
	return MapWidth * TileSize, MapHeight * TileSize
}
