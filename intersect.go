package main

import (
	"math"
	"sort"
)

// ── Intersection enumeration ────────────────────────────────────────

// findAllIntersections enumerates every (horizontal word, vertical word)
// character pair that matches, ranked by descending desirability. The sort is
// stable so a fixed seed yields identical runs.
func (g *Generator) findAllIntersections() []Intersection {
	var intersections []Intersection
	for hIdx, hWord := range g.hRunes {
		for vIdx, vWord := range g.vRunes {
			for hCharIdx, hChar := range hWord {
				for vCharIdx, vChar := range vWord {
					if hChar == vChar {
						intersections = append(intersections, Intersection{
							HWordIdx: hIdx,
							VWordIdx: vIdx,
							HCharIdx: hCharIdx,
							VCharIdx: vCharIdx,
							Char:     hChar,
						})
					}
				}
			}
		}
	}

	sort.SliceStable(intersections, func(i, j int) bool {
		return g.scoreIntersection(intersections[i]) > g.scoreIntersection(intersections[j])
	})
	return intersections
}

// scoreIntersection rates a crossing's static desirability: longer words,
// near-center offsets, and letters that recur across the input all raise it.
func (g *Generator) scoreIntersection(x Intersection) float64 {
	hLen := float64(len(g.hRunes[x.HWordIdx]))
	vLen := float64(len(g.vRunes[x.VWordIdx]))
	score := (hLen + vLen) * 2

	hCenterDist := math.Abs(float64(x.HCharIdx) - hLen/2)
	vCenterDist := math.Abs(float64(x.VCharIdx) - vLen/2)
	score += 20 - (hCenterDist + vCenterDist)

	score += float64(g.letterFreq[x.Char]) * 5
	return score
}

// buildLetterFreq counts every letter's occurrences across both word lists.
func buildLetterFreq(words ...[][]rune) map[rune]int {
	freq := make(map[rune]int)
	for _, list := range words {
		for _, w := range list {
			for _, ch := range w {
				freq[ch]++
			}
		}
	}
	return freq
}
