package main

import "math/rand"

// The three placement strategies. Each runs up to maxAttempts independent
// attempts on a fresh width x height grid and returns the best complete
// layout seen, or nil when every attempt failed. A single unplaceable word
// only abandons the current attempt, never the whole run.

// ── Size-probing randomized placement ───────────────────────────────

// generateWithSize throws each word at uniformly random legal anchors, up to
// Config.RandomTriesPerWord throws per word. Best attempt by the linear
// area/squareness score (lower wins).
func (g *Generator) generateWithSize(width, height, maxAttempts int, rng *rand.Rand) *Solution {
	var best *Solution
	bestScore := int(^uint(0) >> 1)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt%100 == 0 {
			g.logf("[standard] attempt %d/%d", attempt+1, maxAttempts)
		}

		grid := NewGrid(width, height)
		var placed []PlacedWord

		hOrder := rng.Perm(len(g.horizontal))
		vOrder := rng.Perm(len(g.vertical))

		success := true
		for _, hIdx := range hOrder {
			if !g.placeRandomly(grid, &placed, g.horizontal[hIdx], Horizontal, rng) {
				success = false
				break
			}
		}
		if success {
			for _, vIdx := range vOrder {
				if !g.placeRandomly(grid, &placed, g.vertical[vIdx], Vertical, rng) {
					success = false
					break
				}
			}
		}
		if !success {
			continue
		}

		if score := scoreSizeProbe(grid); score < bestScore {
			bestScore = score
			best = &Solution{Grid: grid, Words: placed}
			h, w := grid.UsedDimensions()
			g.logf("[solution] standard: area %d (%dx%d), score %d", h*w, h, w, score)
		}
	}
	return best
}

// placeRandomly tries random entry anchors for one word. False means the
// word exhausted its tries (or can never fit) and the attempt is dead.
func (g *Generator) placeRandomly(grid *Grid, placed *[]PlacedWord, word string, dir Direction, rng *rand.Rand) bool {
	n := len([]rune(word))
	rowSpan, colSpan := grid.Height, grid.Width-(n-1)
	if dir == Vertical {
		rowSpan, colSpan = grid.Height-(n-1), grid.Width
	}
	if rowSpan <= 0 || colSpan <= 0 {
		return false
	}
	for try := 0; try < g.cfg.RandomTriesPerWord; try++ {
		row := rng.Intn(rowSpan)
		col := rng.Intn(colSpan)
		if dir == Horizontal {
			col += n - 1
		} else {
			row += n - 1
		}
		if grid.Place(word, row, col, dir) {
			*placed = append(*placed, placedAt(word, row, col, dir))
			return true
		}
	}
	return false
}

// ── Greedy with scored candidates ───────────────────────────────────

// generateOptimized interleaves horizontal and vertical words into one
// shuffled queue (early cross-opportunities), then places each word from its
// top-K candidates: the first few in rank order, the rest at random. Best
// attempt by the greedy score (higher wins).
func (g *Generator) generateOptimized(width, height, maxAttempts int, rng *rand.Rand) *Solution {
	var best *Solution
	bestScore := negInf

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt%50 == 0 {
			g.logf("[optimized] attempt %d/%d", attempt+1, maxAttempts)
		}

		grid := NewGrid(width, height)
		var placed []PlacedWord

		queue := interleaveQueue(rng.Perm(len(g.horizontal)), rng.Perm(len(g.vertical)))

		success := true
		for _, item := range queue {
			word := g.horizontal[item.idx]
			if item.dir == Vertical {
				word = g.vertical[item.idx]
			}

			candidates := g.generateCandidates(grid, word, item.dir)
			ok := false
			tryCount := maxI(minI(len(candidates), g.cfg.GreedyTopK), 1)
			for i := 0; i < tryCount; i++ {
				ci := i
				if i >= g.cfg.GreedyDeterministic && len(candidates) > 0 {
					ci = rng.Intn(len(candidates))
				}
				if ci >= len(candidates) {
					continue
				}
				cand := candidates[ci]
				if grid.Place(word, cand.Row, cand.Col, cand.Direction) {
					placed = append(placed, placedAt(word, cand.Row, cand.Col, cand.Direction))
					ok = true
					break
				}
			}
			if !ok {
				success = false
				break
			}
		}
		if !success {
			continue
		}

		if score := scoreGreedy(grid, placed); score > bestScore {
			bestScore = score
			best = &Solution{Grid: grid, Words: placed}
			h, w := grid.UsedDimensions()
			g.logf("[solution] optimized: area %d (%dx%d), score %.2f", h*w, h, w, score)
		}
	}
	return best
}

type queueItem struct {
	idx int
	dir Direction
}

// interleaveQueue alternates horizontal and vertical word indices so early
// placements of one direction seed crossings for the other.
func interleaveQueue(hOrder, vOrder []int) []queueItem {
	queue := make([]queueItem, 0, len(hOrder)+len(vOrder))
	for i := 0; i < len(hOrder) || i < len(vOrder); i++ {
		if i < len(hOrder) {
			queue = append(queue, queueItem{hOrder[i], Horizontal})
		}
		if i < len(vOrder) {
			queue = append(queue, queueItem{vOrder[i], Vertical})
		}
	}
	return queue
}

// ── Intersection-seeded placement ───────────────────────────────────

// generateIntersectionFirst force-places a few shuffled crossings centered on
// the grid, then fills in the remaining words first-fit from their top
// candidates. Best attempt by the intersection-first score (higher wins).
func (g *Generator) generateIntersectionFirst(width, height, maxAttempts int, rng *rand.Rand) *Solution {
	intersections := g.intersections()
	g.logf("[intersection] %d crossings available", len(intersections))

	var best *Solution
	bestScore := negInf

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt%25 == 0 {
			g.logf("[intersection] attempt %d/%d", attempt+1, maxAttempts)
		}

		grid := NewGrid(width, height)
		var placed []PlacedWord
		usedH := make([]bool, len(g.horizontal))
		usedV := make([]bool, len(g.vertical))

		shuffled := make([]Intersection, len(intersections))
		copy(shuffled, intersections)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		forced := 0
		limit := minI(g.cfg.ForcedIntersections, len(shuffled))
		for _, x := range shuffled[:limit] {
			if usedH[x.HWordIdx] || usedV[x.VWordIdx] {
				continue
			}
			hWord := g.horizontal[x.HWordIdx]
			vWord := g.vertical[x.VWordIdx]

			hRow := height / 2
			hCol := width/2 + x.HCharIdx
			vRow := height/2 + x.VCharIdx
			vCol := width / 2
			if hCol >= width || vRow >= height {
				continue
			}
			if !grid.Place(hWord, hRow, hCol, Horizontal) {
				continue
			}
			hPlaced := placedAt(hWord, hRow, hCol, Horizontal)
			if !grid.Place(vWord, vRow, vCol, Vertical) {
				grid.Remove(hPlaced)
				continue
			}
			placed = append(placed, hPlaced, placedAt(vWord, vRow, vCol, Vertical))
			usedH[x.HWordIdx] = true
			usedV[x.VWordIdx] = true
			forced++
		}

		success := true
		for hIdx, word := range g.horizontal {
			if usedH[hIdx] {
				continue
			}
			if !g.placeFirstFit(grid, &placed, word, Horizontal) {
				success = false
				break
			}
		}
		if success {
			for vIdx, word := range g.vertical {
				if usedV[vIdx] {
					continue
				}
				if !g.placeFirstFit(grid, &placed, word, Vertical) {
					success = false
					break
				}
			}
		}
		if !success {
			continue
		}

		if score := scoreIntersectionFirst(grid, placed, forced); score > bestScore {
			bestScore = score
			best = &Solution{Grid: grid, Words: placed}
			h, w := grid.UsedDimensions()
			g.logf("[solution] intersection: area %d (%dx%d), forced %d, score %.2f",
				h*w, h, w, forced, score)
		}
	}
	return best
}

// placeFirstFit places the word at the first of its top candidates that
// succeeds.
func (g *Generator) placeFirstFit(grid *Grid, placed *[]PlacedWord, word string, dir Direction) bool {
	candidates := g.generateCandidates(grid, word, dir)
	limit := minI(g.cfg.FirstFitTopK, len(candidates))
	for _, cand := range candidates[:limit] {
		if grid.Place(word, cand.Row, cand.Col, cand.Direction) {
			*placed = append(*placed, placedAt(word, cand.Row, cand.Col, cand.Direction))
			return true
		}
	}
	return false
}

const negInf = -1e308

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}
