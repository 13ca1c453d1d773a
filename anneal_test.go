package main

import (
	"math/rand"
	"testing"
)

// buildLayout places the words onto a fresh grid and fails the test if any
// placement is rejected.
func buildLayout(t *testing.T, width, height int, words []PlacedWord) *Solution {
	t.Helper()
	grid := NewGrid(width, height)
	for _, p := range words {
		row, col := p.entryAnchor()
		if !grid.Place(p.Word, row, col, p.Direction) {
			t.Fatalf("setup: cannot place %s at (%d,%d)", p.Word, p.StartRow, p.StartCol)
		}
	}
	return &Solution{Grid: grid, Words: words}
}

func TestAnnealNeverWorsensBest(t *testing.T) {
	g := newTestGenerator(testLists)
	// A deliberately spread-out layout with room to improve.
	initial := buildLayout(t, 14, 14, []PlacedWord{
		{Word: "STREAM", StartRow: 0, StartCol: 0, Direction: Horizontal},
		{Word: "CAT", StartRow: 13, StartCol: 11, Direction: Horizontal},
		{Word: "MASTER", StartRow: 2, StartCol: 9, Direction: Vertical},
		{Word: "CAR", StartRow: 5, StartCol: 2, Direction: Vertical},
	})
	before := evaluateSolution(initial.Grid, initial.Words)

	result := g.anneal(initial, 100, rand.New(rand.NewSource(7)))
	after := evaluateSolution(result.Grid, result.Words)

	// Elitism: the returned best can never score below the input.
	if after < before {
		t.Errorf("anneal worsened the best score: %.2f -> %.2f", before, after)
	}
}

func TestAnnealKeepsAllWords(t *testing.T) {
	g := newTestGenerator(testLists)
	initial := buildLayout(t, 14, 14, []PlacedWord{
		{Word: "STREAM", StartRow: 0, StartCol: 0, Direction: Horizontal},
		{Word: "CAT", StartRow: 13, StartCol: 11, Direction: Horizontal},
		{Word: "MASTER", StartRow: 2, StartCol: 9, Direction: Vertical},
		{Word: "CAR", StartRow: 5, StartCol: 2, Direction: Vertical},
	})

	result := g.anneal(initial, 100, rand.New(rand.NewSource(7)))

	if len(result.Words) != 4 {
		t.Fatalf("got %d words after annealing, want 4", len(result.Words))
	}
	for _, p := range result.Words {
		if read := result.Grid.ReadWord(p); read != p.Word {
			t.Errorf("word %s unreadable after annealing: %q", p.Word, read)
		}
	}
}

func TestPerturbRestoresWhenNothingFits(t *testing.T) {
	// A single word on a grid of exactly its own size has no alternative
	// anchors beyond the original, so a perturbation either keeps it in
	// place or restores it.
	g := newTestGenerator(WordLists{Horizontal: []string{"CAT"}, Vertical: nil})
	sol := buildLayout(t, 3, 1, []PlacedWord{
		{Word: "CAT", StartRow: 0, StartCol: 0, Direction: Horizontal},
	})
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		g.perturbOneWord(sol, rng)
		if len(sol.Words) != 1 || sol.Grid.ReadWord(sol.Words[0]) != "CAT" {
			t.Fatalf("perturbation lost the word on iteration %d", i)
		}
	}
}
