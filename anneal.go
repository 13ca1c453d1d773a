package main

import (
	"math"
	"math/rand"
)

// ── Simulated annealing ─────────────────────────────────────────────

// anneal runs a fixed-iteration annealing pass over one successful layout.
// Each step removes one random word and re-places it at one of its top
// candidates; worsening moves are accepted with the Metropolis probability
// exp(delta/temperature). The best state ever visited is tracked separately
// from the current (possibly worse) one and returned.
func (g *Generator) anneal(initial *Solution, iterations int, rng *rand.Rand) *Solution {
	current := initial
	best := current.Clone()
	bestScore := evaluateSolution(current.Grid, current.Words)
	temperature := g.cfg.AnnealStartTemp

	g.logf("[anneal] starting %d iterations", iterations)

	for iteration := 0; iteration < iterations; iteration++ {
		if iteration%g.cfg.AnnealCoolEvery == 0 {
			temperature *= g.cfg.AnnealCooling
		}

		next := current.Clone()
		if !g.perturbOneWord(next, rng) {
			continue
		}
		newScore := evaluateSolution(next.Grid, next.Words)
		currentScore := evaluateSolution(current.Grid, current.Words)

		delta := newScore - currentScore
		if delta > 0 || rng.Float64() < math.Exp(delta/temperature) {
			current = next
			if newScore > bestScore {
				bestScore = newScore
				best = current.Clone()
				if iteration%100 == 0 {
					h, w := best.Grid.UsedDimensions()
					g.logf("[anneal] iteration %d: new best area %d (%dx%d), score %.2f",
						iteration, h*w, h, w, newScore)
				}
			}
		}
	}
	return best
}

// perturbOneWord removes one random word and tries its top candidates at the
// new grid state, ignoring intersection hints. When none fit it restores the
// word at its original anchor and reports no change.
func (g *Generator) perturbOneWord(sol *Solution, rng *rand.Rand) bool {
	if len(sol.Words) == 0 {
		return false
	}
	idx := rng.Intn(len(sol.Words))
	removed := sol.Words[idx]
	sol.Grid.Remove(removed)
	sol.Words = append(sol.Words[:idx], sol.Words[idx+1:]...)

	candidates := g.generateCandidates(sol.Grid, removed.Word, removed.Direction)
	limit := minI(g.cfg.FirstFitTopK, len(candidates))
	for _, cand := range candidates[:limit] {
		if sol.Grid.Place(removed.Word, cand.Row, cand.Col, cand.Direction) {
			sol.Words = append(sol.Words, placedAt(removed.Word, cand.Row, cand.Col, cand.Direction))
			return true
		}
	}

	// Nothing better fits; put it back where it was.
	row, col := removed.entryAnchor()
	if sol.Grid.Place(removed.Word, row, col, removed.Direction) {
		sol.Words = append(sol.Words, removed)
	}
	return false
}
