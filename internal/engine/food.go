package engine

import (
	"math/rand"

	"github.com/dkoval/gridsnake/internal/core"
)

// maxSpawnAttempts bounds rejection sampling on sparse grids.
const maxSpawnAttempts = 100

// SpawnFood picks a cell not occupied by the snake body or an obstacle.
//
// Rejection sampling degrades badly as occupancy approaches 100%, so the
// strategy switches on occupancy: below half full, up to maxSpawnAttempts
// uniform draws; at half full or denser, exhaustive enumeration of the free
// cells with a single uniform choice among them. When occupancy meets or
// exceeds the grid size no valid cell exists and the first non-snake cell in
// row-major order is used, or (0,0) if the snake covers everything.
func SpawnFood(rng *rand.Rand, w, h int, body []core.Point, obstacles map[core.Point]struct{}) core.Point {
	total := w * h
	occupied := len(body) + len(obstacles)

	if occupied >= total {
		return fallbackPosition(w, h, body)
	}

	snakeCells := make(map[core.Point]struct{}, len(body))
	for _, seg := range body {
		snakeCells[seg] = struct{}{}
	}

	if occupied*2 < total {
		if p, ok := randomSpawn(rng, w, h, snakeCells, obstacles); ok {
			return p
		}
		// Attempt budget exhausted; fall through to the exhaustive scan.
	}

	if p, ok := systematicSpawn(rng, w, h, snakeCells, obstacles); ok {
		return p
	}
	return fallbackPosition(w, h, body)
}

// randomSpawn draws uniformly random cells, returning the first free one.
func randomSpawn(rng *rand.Rand, w, h int, snake, obstacles map[core.Point]struct{}) (core.Point, bool) {
	for i := 0; i < maxSpawnAttempts; i++ {
		p := core.Point{X: rng.Intn(w), Y: rng.Intn(h)}
		if _, onSnake := snake[p]; onSnake {
			continue
		}
		if _, onObstacle := obstacles[p]; onObstacle {
			continue
		}
		return p, true
	}
	return core.Point{}, false
}

// systematicSpawn enumerates every free cell and picks one uniformly.
func systematicSpawn(rng *rand.Rand, w, h int, snake, obstacles map[core.Point]struct{}) (core.Point, bool) {
	var free []core.Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := core.Point{X: x, Y: y}
			if _, onSnake := snake[p]; onSnake {
				continue
			}
			if _, onObstacle := obstacles[p]; onObstacle {
				continue
			}
			free = append(free, p)
		}
	}

	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}

// fallbackPosition returns the first cell in row-major order not occupied by
// the snake, ignoring obstacles. If the snake covers the whole grid, (0,0) is
// returned; there is no valid placement in that degenerate case.
func fallbackPosition(w, h int, body []core.Point) core.Point {
	snakeCells := make(map[core.Point]struct{}, len(body))
	for _, seg := range body {
		snakeCells[seg] = struct{}{}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := core.Point{X: x, Y: y}
			if _, onSnake := snakeCells[p]; !onSnake {
				return p
			}
		}
	}
	return core.Point{}
}
