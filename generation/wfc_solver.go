package generation

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// Solver runs one wave function collapse attempt over a chunk-resolution
// grid. Each cell holds the set of chunk indices still possible there; a
// cell with one possibility is collapsed, a cell with none is a
// contradiction that kills the whole attempt.
type Solver struct {
	chunks    []*MapChunk
	chunkSize int
	chunksX   int
	chunksY   int
	possible  []mapset.Set[int]
	collapsed []bool
	remaining int

	// Possible flips to false when the attempt hits a contradiction;
	// distinct from Iteration's "done" return.
	Possible bool
}

// NewSolver initializes an attempt where every cell may still become any
// chunk.
func NewSolver(chunks []*MapChunk, chunkSize int, m *gamemap.Map) *Solver {
	chunksX := m.Width / chunkSize
	chunksY := m.Height / chunkSize
	cells := chunksX * chunksY

	possible := make([]mapset.Set[int], cells)
	for i := range possible {
		set := mapset.New[int]()
		for c := range chunks {
			set.Put(c)
		}
		possible[i] = set
	}

	return &Solver{
		chunks:    chunks,
		chunkSize: chunkSize,
		chunksX:   chunksX,
		chunksY:   chunksY,
		possible:  possible,
		collapsed: make([]bool, cells),
		remaining: cells,
		Possible:  true,
	}
}

// Iteration resolves one cell (or detects one contradiction) and reports
// whether the attempt is finished. Callers snapshot the map between
// calls for visualization. After it returns true, check Possible to tell
// success from a dead attempt.
func (s *Solver) Iteration(m *gamemap.Map, rng dice.Roller) bool {
	if !s.Possible || s.remaining == 0 {
		return true
	}

	// Lowest-entropy uncollapsed cell; ties fall to scan order.
	cell := -1
	options := len(s.chunks) + 1
	for i := range s.possible {
		if s.collapsed[i] {
			continue
		}
		if n := s.possible[i].Size(); n < options {
			cell = i
			options = n
		}
	}

	if options == 0 {
		s.Possible = false
		return true
	}

	choices := sortedSetKeys(s.possible[cell])
	chosen := choices[0]
	if len(choices) > 1 {
		chosen = s.weightedChoice(choices, rng)
		replacement := mapset.New[int]()
		replacement.Put(chosen)
		s.possible[cell] = replacement
	}

	s.collapseCell(m, cell, chosen)
	s.propagate(cell)

	return !s.Possible || s.remaining == 0
}

// weightedChoice picks a chunk index weighted by source occurrence count.
func (s *Solver) weightedChoice(choices []int, rng dice.Roller) int {
	total := 0
	for _, c := range choices {
		total += s.chunks[c].Count
	}
	roll := rng.Range(0, total)
	for _, c := range choices {
		roll -= s.chunks[c].Count
		if roll < 0 {
			return c
		}
	}
	return choices[len(choices)-1]
}

// collapseCell fixes a cell's chunk and renders it into the output map.
func (s *Solver) collapseCell(m *gamemap.Map, cell, chunk int) {
	s.collapsed[cell] = true
	s.remaining--

	ox := (cell % s.chunksX) * s.chunkSize
	oy := (cell / s.chunksX) * s.chunkSize
	pattern := s.chunks[chunk].Pattern
	for cy := 0; cy < s.chunkSize; cy++ {
		for cx := 0; cx < s.chunkSize; cx++ {
			m.Tiles[m.Index(ox+cx, oy+cy)] = pattern[cy*s.chunkSize+cx]
		}
	}
}

// propagate intersects neighbour possibility sets with the compatibility
// lists of the changed cell, cascading until nothing changes. Emptying
// any set is a contradiction.
func (s *Solver) propagate(from int) {
	stack := []int{from}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cx := cell % s.chunksX
		cy := cell / s.chunksX
		for dir, d := range [4][2]int{
			dirNorth: {0, -1},
			dirSouth: {0, 1},
			dirWest:  {-1, 0},
			dirEast:  {1, 0},
		} {
			nx, ny := cx+d[0], cy+d[1]
			if nx < 0 || nx >= s.chunksX || ny < 0 || ny >= s.chunksY {
				continue
			}
			neighbour := ny*s.chunksX + nx

			allowed := mapset.New[int]()
			s.possible[cell].Each(func(p int) {
				for _, q := range s.chunks[p].CompatibleWith[dir] {
					allowed.Put(q)
				}
			})

			var drop []int
			s.possible[neighbour].Each(func(q int) {
				if !allowed.Has(q) {
					drop = append(drop, q)
				}
			})
			if len(drop) == 0 {
				continue
			}
			for _, q := range drop {
				s.possible[neighbour].Remove(q)
			}
			if s.possible[neighbour].Size() == 0 {
				s.Possible = false
				return
			}
			if !s.collapsed[neighbour] {
				stack = append(stack, neighbour)
			}
		}
	}
}

// sortedSetKeys drains a set in ascending order so rolls with the same
// seed stay reproducible regardless of map iteration order.
func sortedSetKeys(set mapset.Set[int]) []int {
	keys := make([]int, 0, set.Size())
	set.Each(func(k int) {
		keys = append(keys, k)
	})
	sort.Ints(keys)
	return keys
}
