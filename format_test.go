package main

import (
	"strings"
	"testing"
)

func TestFormatGrid(t *testing.T) {
	g := NewGrid(6, 6)
	g.Place("CAT", 1, 3, Horizontal)
	g.Place("CAR", 3, 1, Vertical)

	want := "C A T\n" +
		"A . .\n" +
		"R . .\n"
	if got := FormatGrid(g); got != want {
		t.Errorf("FormatGrid:\n%s\nwant:\n%s", got, want)
	}
}

func TestGridRows(t *testing.T) {
	g := NewGrid(6, 6)
	g.Place("CAT", 1, 3, Horizontal)
	g.Place("CAR", 3, 1, Vertical)

	rows := GridRows(g)
	want := []string{"CAT", "A..", "R.."}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestFormatSolutionListsWords(t *testing.T) {
	g := NewGrid(5, 5)
	g.Place("CAT", 0, 2, Horizontal)
	sol := &Solution{Grid: g, Words: []PlacedWord{placedAt("CAT", 0, 2, Horizontal)}}

	out := FormatSolution(sol)
	for _, frag := range []string{"1x3", "CAT (horizontal) at (0, 0)", "C A T"} {
		if !strings.Contains(out, frag) {
			t.Errorf("output missing %q:\n%s", frag, out)
		}
	}
}
