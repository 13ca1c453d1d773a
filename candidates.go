package main

import (
	"math"
	"sort"
)

// ── Candidate generation ────────────────────────────────────────────

// generateCandidates enumerates every entry anchor where the word legally
// fits on the grid, scores each placement, and returns the top candidates in
// descending score order, capped at Config.CandidateCap to bound the search.
// An empty result means the word cannot fit at all in the current grid.
func (g *Generator) generateCandidates(grid *Grid, word string, dir Direction) []PlacementCandidate {
	n := len([]rune(word))
	var candidates []PlacementCandidate

	if dir == Horizontal {
		for row := 0; row < grid.Height; row++ {
			for col := n - 1; col < grid.Width; col++ {
				if grid.CanPlace(word, row, col, dir) {
					candidates = append(candidates, PlacementCandidate{
						Row:       row,
						Col:       col,
						Direction: dir,
						Score:     g.placementScore(grid, word, row, col, dir),
					})
				}
			}
		}
	} else {
		for row := n - 1; row < grid.Height; row++ {
			for col := 0; col < grid.Width; col++ {
				if grid.CanPlace(word, row, col, dir) {
					candidates = append(candidates, PlacementCandidate{
						Row:       row,
						Col:       col,
						Direction: dir,
						Score:     g.placementScore(grid, word, row, col, dir),
					})
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > g.cfg.CandidateCap {
		candidates = candidates[:g.cfg.CandidateCap]
	}
	return candidates
}

// placementScore rates one legal placement: central anchors score higher,
// every coinciding letter earns a flat bonus, longer words get a small edge,
// and the intersection count is rewarded a second time to push the search
// hard toward crossing placements.
func (g *Generator) placementScore(grid *Grid, word string, row, col int, dir Direction) float64 {
	centerRow := float64(grid.Height) / 2
	centerCol := float64(grid.Width) / 2
	dist := math.Sqrt(math.Pow(float64(row)-centerRow, 2) + math.Pow(float64(col)-centerCol, 2))
	score := 100 - dist

	chars := []rune(word)
	startRow, startCol, _ := grid.span(len(chars), row, col, dir)
	intersectionCount := 0
	for i, ch := range chars {
		r, c := startRow, startCol
		if dir == Horizontal {
			c += i
		} else {
			r += i
		}
		if grid.At(r, c) == ch {
			intersectionCount++
			score += 50
		}
	}

	score += float64(len(chars)) * 2
	score += float64(intersectionCount) * 25
	return score
}
