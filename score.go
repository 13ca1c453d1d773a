package main

// Per-strategy solution scores. The constants differ deliberately: each
// strategy was tuned for a different phase of the search, so these stay
// separate functions rather than one shared formula.

// scoreSizeProbe rates a size-probing attempt; lower is better.
func scoreSizeProbe(grid *Grid) int {
	h, w := grid.UsedDimensions()
	return h*w*10 + absInt(h-w)*3
}

// scoreGreedy rates a greedy-with-candidates attempt; higher is better.
func scoreGreedy(grid *Grid, words []PlacedWord) float64 {
	h, w := grid.UsedDimensions()
	area := float64(h * w)
	squareDiff := float64(absInt(h - w))
	return 1000/area + 100/(1+squareDiff) + float64(countTotalIntersections(grid, words))*10
}

// scoreIntersectionFirst rates an intersection-seeded attempt; higher is
// better. Forced crossings count on top of the measured total.
func scoreIntersectionFirst(grid *Grid, words []PlacedWord, forced int) float64 {
	h, w := grid.UsedDimensions()
	area := float64(h * w)
	squareDiff := float64(absInt(h - w))
	return 2000/area + 200/(1+squareDiff) + float64(forced+countTotalIntersections(grid, words))*25
}

// evaluateSolution is the annealer's global objective: compactness,
// squareness, and intersection density.
func evaluateSolution(grid *Grid, words []PlacedWord) float64 {
	h, w := grid.UsedDimensions()
	area := float64(h * w)
	squareDiff := float64(absInt(h - w))
	return 2000/area + 200/(1+squareDiff) + float64(countTotalIntersections(grid, words))*25
}

// countTotalIntersections sums the per-word crossing counts over the layout.
func countTotalIntersections(grid *Grid, words []PlacedWord) int {
	total := 0
	for _, w := range words {
		total += countWordIntersections(grid, w)
	}
	return total
}

// countWordIntersections counts cells of the word whose row (for vertical
// words) or column (for horizontal words) is shared with some other occupied
// cell, approximating the number of words crossing it.
func countWordIntersections(grid *Grid, p PlacedWord) int {
	count := 0
	n := len([]rune(p.Word))
	if p.Direction == Horizontal {
		for i := 0; i < n; i++ {
			col := p.StartCol + i
			if col >= grid.Width || grid.At(p.StartRow, col) == 0 {
				continue
			}
			for r := 0; r < grid.Height; r++ {
				if r != p.StartRow && grid.At(r, col) != 0 {
					count++
					break
				}
			}
		}
		return count
	}
	for i := 0; i < n; i++ {
		row := p.StartRow + i
		if row >= grid.Height || grid.At(row, p.StartCol) == 0 {
			continue
		}
		for c := 0; c < grid.Width; c++ {
			if c != p.StartCol && grid.At(row, c) != 0 {
				count++
				break
			}
		}
	}
	return count
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
