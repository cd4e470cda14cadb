package generation

import "ebiten-delve/gamemap"

// Cardinal directions for pattern compatibility lists.
const (
	dirNorth = 0
	dirSouth = 1
	dirWest  = 2
	dirEast  = 3
)

// MapChunk is one deduplicated NxN tile pattern learned from a source
// map: the pattern itself, the pattern indices compatible as neighbours
// in each direction, and how often the pattern (or one of its variants)
// occurred, used as a stochastic weight. Chunks are immutable once built.
type MapChunk struct {
	Pattern        []gamemap.TileType
	CompatibleWith [4][]int
	Count          int
}

// buildChunks extracts every chunkSize window of the source map (plus
// rotation and mirror variants when requested), deduplicates them into
// weighted chunks, and derives the directional compatibility lists.
func buildChunks(m *gamemap.Map, chunkSize int, includeVariants bool) []*MapChunk {
	patterns := extractPatterns(m, chunkSize, includeVariants)
	chunks := dedupePatterns(patterns)
	buildConstraints(chunks, chunkSize)
	return chunks
}

// extractPatterns slides the window one tile at a time over every
// position where it fully fits.
func extractPatterns(m *gamemap.Map, chunkSize int, includeVariants bool) [][]gamemap.TileType {
	var patterns [][]gamemap.TileType
	for y := 0; y+chunkSize <= m.Height; y++ {
		for x := 0; x+chunkSize <= m.Width; x++ {
			base := make([]gamemap.TileType, 0, chunkSize*chunkSize)
			for cy := 0; cy < chunkSize; cy++ {
				for cx := 0; cx < chunkSize; cx++ {
					base = append(base, m.Tiles[m.Index(x+cx, y+cy)])
				}
			}

			if !includeVariants {
				patterns = append(patterns, base)
				continue
			}
			// The 8 rotation/mirror variants of the window.
			for _, p := range [2][]gamemap.TileType{base, mirrorPattern(base, chunkSize)} {
				patterns = append(patterns, p)
				for i := 0; i < 3; i++ {
					p = rotatePattern(p, chunkSize)
					patterns = append(patterns, p)
				}
			}
		}
	}
	return patterns
}

// rotatePattern returns the pattern rotated 90 degrees clockwise.
func rotatePattern(p []gamemap.TileType, n int) []gamemap.TileType {
	out := make([]gamemap.TileType, len(p))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x*n+(n-1-y)] = p[y*n+x]
		}
	}
	return out
}

// mirrorPattern returns the pattern flipped horizontally.
func mirrorPattern(p []gamemap.TileType, n int) []gamemap.TileType {
	out := make([]gamemap.TileType, len(p))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y*n+(n-1-x)] = p[y*n+x]
		}
	}
	return out
}

// patternKey flattens a pattern for deduplication.
func patternKey(p []gamemap.TileType) string {
	key := make([]byte, len(p))
	for i, t := range p {
		key[i] = byte(t)
	}
	return string(key)
}

// dedupePatterns folds identical patterns together, keeping occurrence
// counts. Chunk order follows first occurrence, which keeps runs with
// the same seed identical.
func dedupePatterns(patterns [][]gamemap.TileType) []*MapChunk {
	var chunks []*MapChunk
	seen := make(map[string]*MapChunk)
	for _, p := range patterns {
		key := patternKey(p)
		if chunk, ok := seen[key]; ok {
			chunk.Count++
			continue
		}
		chunk := &MapChunk{Pattern: p, Count: 1}
		seen[key] = chunk
		chunks = append(chunks, chunk)
	}
	return chunks
}

// buildConstraints fills each chunk's compatibility lists. Chunk b may
// sit in direction dir of chunk a when a's edge facing dir matches b's
// opposite edge tile for tile.
func buildConstraints(chunks []*MapChunk, chunkSize int) {
	for ai, a := range chunks {
		for bi, b := range chunks {
			if edgesMatch(a.Pattern, b.Pattern, chunkSize, dirNorth) {
				chunks[ai].CompatibleWith[dirNorth] = append(chunks[ai].CompatibleWith[dirNorth], bi)
			}
			if edgesMatch(a.Pattern, b.Pattern, chunkSize, dirSouth) {
				chunks[ai].CompatibleWith[dirSouth] = append(chunks[ai].CompatibleWith[dirSouth], bi)
			}
			if edgesMatch(a.Pattern, b.Pattern, chunkSize, dirWest) {
				chunks[ai].CompatibleWith[dirWest] = append(chunks[ai].CompatibleWith[dirWest], bi)
			}
			if edgesMatch(a.Pattern, b.Pattern, chunkSize, dirEast) {
				chunks[ai].CompatibleWith[dirEast] = append(chunks[ai].CompatibleWith[dirEast], bi)
			}
		}
	}
}

// edgesMatch tests the shared border between a and a would-be neighbour
// b in direction dir of a.
func edgesMatch(a, b []gamemap.TileType, n, dir int) bool {
	for i := 0; i < n; i++ {
		var av, bv gamemap.TileType
		switch dir {
		case dirNorth:
			av, bv = a[i], b[(n-1)*n+i]
		case dirSouth:
			av, bv = a[(n-1)*n+i], b[i]
		case dirWest:
			av, bv = a[i*n], b[i*n+n-1]
		case dirEast:
			av, bv = a[i*n+n-1], b[i*n]
		}
		if av != bv {
			return false
		}
	}
	return true
}
