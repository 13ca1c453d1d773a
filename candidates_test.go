package main

import "testing"

func TestCandidatesCappedAndSorted(t *testing.T) {
	g := newTestGenerator(WordLists{Horizontal: []string{"A"}, Vertical: nil})
	grid := NewGrid(20, 20)

	cands := g.generateCandidates(grid, "A", Horizontal)
	if len(cands) != g.cfg.CandidateCap {
		t.Fatalf("got %d candidates, want cap %d", len(cands), g.cfg.CandidateCap)
	}
	for i := 1; i < len(cands); i++ {
		if cands[i].Score > cands[i-1].Score {
			t.Fatalf("candidates not sorted at %d", i)
		}
	}
}

func TestCandidatesEmptyWhenWordTooLong(t *testing.T) {
	g := newTestGenerator(WordLists{Horizontal: []string{"UNPLACEABLE"}, Vertical: nil})
	grid := NewGrid(5, 5)
	if cands := g.generateCandidates(grid, "UNPLACEABLE", Horizontal); len(cands) != 0 {
		t.Errorf("got %d candidates for an oversized word, want 0", len(cands))
	}
}

func TestCandidatesPreferIntersections(t *testing.T) {
	g := newTestGenerator(WordLists{Horizontal: []string{"CAT"}, Vertical: []string{"CAR"}})
	grid := NewGrid(11, 11)
	if !grid.Place("CAT", 5, 7, Horizontal) {
		t.Fatal("setup placement failed")
	}

	// The best CAR candidate must cross CAT: crossing bonus (50+25 per
	// shared letter) dominates any center-distance difference on this grid.
	cands := g.generateCandidates(grid, "CAR", Vertical)
	if len(cands) == 0 {
		t.Fatal("no candidates")
	}
	best := cands[0]
	if !grid.Place("CAR", best.Row, best.Col, best.Direction) {
		t.Fatal("best candidate not placeable")
	}
	p := placedAt("CAR", best.Row, best.Col, best.Direction)
	if countWordIntersections(grid, p) == 0 {
		t.Errorf("best candidate at (%d,%d) does not cross CAT", best.Row, best.Col)
	}
}

func TestPlacementScoreIntersectionBonus(t *testing.T) {
	g := newTestGenerator(WordLists{Horizontal: []string{"CAT"}, Vertical: []string{"CAR"}})
	grid := NewGrid(11, 11)
	grid.Place("CAT", 5, 7, Horizontal)

	// CAR vertical ending at row 7, col 5 shares the C at (5,5).
	crossing := g.placementScore(grid, "CAR", 7, 5, Vertical)
	// Same geometry one column over shares nothing.
	if !grid.CanPlace("CAR", 7, 4, Vertical) {
		t.Fatal("reference placement blocked")
	}
	clear := g.placementScore(grid, "CAR", 7, 4, Vertical)

	if crossing <= clear+50 {
		t.Errorf("crossing score %.1f not clearly above non-crossing %.1f", crossing, clear)
	}
}
