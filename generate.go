package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"time"
)

// ── Generator ───────────────────────────────────────────────────────

// Generator owns the word lists and runs the escalating placement search.
type Generator struct {
	horizontal []string
	vertical   []string
	hRunes     [][]rune
	vRunes     [][]rune
	letterFreq map[rune]int
	cfg        Config

	cachedIntersections []Intersection
}

// NewGenerator builds a generator over the given lists. Words are sorted by
// length descending so longer words are placed first.
func NewGenerator(lists WordLists, cfg Config) *Generator {
	horizontal := append([]string(nil), lists.Horizontal...)
	vertical := append([]string(nil), lists.Vertical...)
	sort.SliceStable(horizontal, func(i, j int) bool {
		return len([]rune(horizontal[i])) > len([]rune(horizontal[j]))
	})
	sort.SliceStable(vertical, func(i, j int) bool {
		return len([]rune(vertical[i])) > len([]rune(vertical[j]))
	})

	g := &Generator{
		horizontal: horizontal,
		vertical:   vertical,
		hRunes:     toRunes(horizontal),
		vRunes:     toRunes(vertical),
		cfg:        cfg,
	}
	g.letterFreq = buildLetterFreq(g.hRunes, g.vRunes)
	return g
}

func toRunes(words []string) [][]rune {
	out := make([][]rune, len(words))
	for i, w := range words {
		out[i] = []rune(w)
	}
	return out
}

// intersections returns the ranked crossing list, computed once per
// generator.
func (g *Generator) intersections() []Intersection {
	if g.cachedIntersections == nil {
		g.cachedIntersections = g.findAllIntersections()
	}
	return g.cachedIntersections
}

func (g *Generator) logf(format string, args ...any) {
	if !g.cfg.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// ── Grid size estimation ────────────────────────────────────────────

// estimateGridSize sizes the initial grid from the total character count
// with a 15% discount for expected overlap, floored so the longest words and
// the opposite list's cardinality always fit.
func (g *Generator) estimateGridSize() (width, height int) {
	maxHLen, hChars := 0, 0
	for _, w := range g.hRunes {
		hChars += len(w)
		if len(w) > maxHLen {
			maxHLen = len(w)
		}
	}
	maxVLen, vChars := 0, 0
	for _, w := range g.vRunes {
		vChars += len(w)
		if len(w) > maxVLen {
			maxVLen = len(w)
		}
	}

	const overlapFactor = 0.85
	estimatedArea := float64(hChars+vChars) * overlapFactor
	estimatedSide := int(math.Sqrt(estimatedArea))

	minWidth := maxI(maxI(maxHLen, len(g.vertical)), 10)
	minHeight := maxI(maxI(maxVLen, len(g.horizontal)), 10)
	return maxI(estimatedSide, minWidth), maxI(estimatedSide, minHeight)
}

// ── Escalation schedule ─────────────────────────────────────────────

type stage struct {
	strategy   string
	multiplier float64
}

// stageSchedule is consumed in order; the first stage that produces any
// success wins and later stages are never evaluated. A fast first success is
// preferred over a global comparison across stages.
var stageSchedule = []stage{
	{"optimized", 0.6},
	{"intersection-first", 0.7},
	{"optimized", 0.8},
	{"optimized", 1.0},
	{"standard", 1.2},
}

// ── Orchestration ───────────────────────────────────────────────────

// Generate runs the escalation schedule and post-processes the first stage
// success with annealing, compaction, and empty-line trimming. Returns nil
// when every stage exhausted its share of the attempt budget.
func (g *Generator) Generate() *Solution {
	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.logf("[init] horizontal=%d vertical=%d seed=%d", len(g.horizontal), len(g.vertical), seed)

	baseWidth, baseHeight := g.estimateGridSize()
	attemptsPerStage := g.cfg.MaxAttempts / len(stageSchedule)

	for _, st := range stageSchedule {
		width := int(float64(baseWidth) * st.multiplier)
		height := int(float64(baseHeight) * st.multiplier)
		g.logf("[stage] %s %dx%d attempts=%d", st.strategy, width, height, attemptsPerStage)

		var sol *Solution
		switch st.strategy {
		case "intersection-first":
			sol = g.generateIntersectionFirst(width, height, attemptsPerStage, rng)
		case "optimized":
			sol = g.generateOptimized(width, height, attemptsPerStage, rng)
		case "standard":
			sol = g.generateWithSize(width, height, attemptsPerStage, rng)
		}
		if sol == nil {
			continue
		}

		uh, uw := sol.Grid.UsedDimensions()
		originalArea := uh * uw

		sol = g.anneal(sol, g.cfg.AnnealIterations, rng)

		rowOffset, colOffset := sol.Grid.Compact()
		for i := range sol.Words {
			sol.Words[i].StartRow = maxI(sol.Words[i].StartRow-rowOffset, 0)
			sol.Words[i].StartCol = maxI(sol.Words[i].StartCol-colOffset, 0)
		}
		for sol.trimEmpty() {
		}

		uh, uw = sol.Grid.UsedDimensions()
		finalArea := uh * uw
		g.logf("[compact] area %d -> %d (%.1f%% reduction)",
			originalArea, finalArea, 100*(1-float64(finalArea)/float64(originalArea)))
		g.logf("[done] %dx%d", uh, uw)
		return sol
	}
	return nil
}

// trimEmpty strips one round of fully-empty rows and columns and renumbers
// the word anchors past each removed line. Reports whether anything changed.
func (s *Solution) trimEmpty() bool {
	removedRows, removedCols := s.Grid.TrimEmpty()
	if len(removedRows) == 0 && len(removedCols) == 0 {
		return false
	}
	for i := range s.Words {
		s.Words[i].StartRow -= countBelow(removedRows, s.Words[i].StartRow)
		s.Words[i].StartCol -= countBelow(removedCols, s.Words[i].StartCol)
	}
	return true
}

// countBelow counts values in the sorted slice strictly less than v.
func countBelow(sorted []int, v int) int {
	n := 0
	for _, x := range sorted {
		if x < v {
			n++
		}
	}
	return n
}
