package generation

import "ebiten-delve/gamemap"

// unreachable marks tiles with no finite graph distance from the start.
const unreachable = -1

// distanceField computes a 4-connected breadth-first distance field over
// walkable tiles, seeded from startIdx. Walls are never traversed.
func distanceField(m *gamemap.Map, startIdx int) []int {
	dist := make([]int, len(m.Tiles))
	for i := range dist {
		dist[i] = unreachable
	}
	if m.BlocksMovement(startIdx) {
		return dist
	}

	dist[startIdx] = 0
	queue := []int{startIdx}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		cx, cy := m.Coords(current)
		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := cx+d[0], cy+d[1]
			if !m.InBounds(nx, ny) {
				continue
			}
			next := m.Index(nx, ny)
			if m.BlocksMovement(next) || dist[next] != unreachable {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// MostDistantReachable returns the walkable tile with the greatest finite
// graph distance from startIdx. Ties fall to scan order, which is an
// implementation detail. A map with nothing reachable beyond the start
// returns the start itself.
func MostDistantReachable(m *gamemap.Map, startIdx int) int {
	dist := distanceField(m, startIdx)

	best := startIdx
	bestDist := 0
	for idx, d := range dist {
		if d > bestDist {
			best = idx
			bestDist = d
		}
	}
	return best
}
