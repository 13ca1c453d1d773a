package main

import "testing"

func newTestGenerator(lists WordLists) *Generator {
	return NewGenerator(lists, DefaultConfig())
}

func TestFindAllIntersections(t *testing.T) {
	g := newTestGenerator(WordLists{Horizontal: []string{"CAT"}, Vertical: []string{"CAR"}})
	xs := g.intersections()

	// CAT x CAR share C (0,0) and A (1,1).
	if len(xs) != 2 {
		t.Fatalf("got %d intersections, want 2", len(xs))
	}
	found := map[rune]bool{}
	for _, x := range xs {
		found[x.Char] = true
		if g.hRunes[x.HWordIdx][x.HCharIdx] != x.Char {
			t.Errorf("horizontal offset mismatch for %q", x.Char)
		}
		if g.vRunes[x.VWordIdx][x.VCharIdx] != x.Char {
			t.Errorf("vertical offset mismatch for %q", x.Char)
		}
	}
	if !found['C'] || !found['A'] {
		t.Errorf("intersections %v missing C or A crossing", xs)
	}
}

func TestIntersectionsSortedDescending(t *testing.T) {
	g := newTestGenerator(WordLists{
		Horizontal: []string{"STREAM", "CAT"},
		Vertical:   []string{"MASTER", "TAR"},
	})
	xs := g.intersections()
	if len(xs) == 0 {
		t.Fatal("no intersections found")
	}
	for i := 1; i < len(xs); i++ {
		if g.scoreIntersection(xs[i]) > g.scoreIntersection(xs[i-1]) {
			t.Fatalf("intersections not sorted at %d", i)
		}
	}
}

func TestIntersectionScoreFavorsCenterAndFrequency(t *testing.T) {
	g := newTestGenerator(WordLists{Horizontal: []string{"CAT"}, Vertical: []string{"CAR"}})
	xs := g.intersections()

	// The A crossing sits nearer both word centers than the C crossing and
	// both letters recur twice, so A must rank first.
	if xs[0].Char != 'A' {
		t.Errorf("top intersection is %q, want A", xs[0].Char)
	}
}

func TestNoIntersections(t *testing.T) {
	g := newTestGenerator(WordLists{Horizontal: []string{"LIME"}, Vertical: []string{"ROCK"}})
	if xs := g.intersections(); len(xs) != 0 {
		t.Errorf("got %d intersections for disjoint alphabets, want 0", len(xs))
	}
}

func TestLetterFrequency(t *testing.T) {
	g := newTestGenerator(WordLists{Horizontal: []string{"ABBA"}, Vertical: []string{"BAR"}})
	if got := g.letterFreq['A']; got != 3 {
		t.Errorf("freq(A) = %d, want 3", got)
	}
	if got := g.letterFreq['B']; got != 3 {
		t.Errorf("freq(B) = %d, want 3", got)
	}
	if got := g.letterFreq['Z']; got != 0 {
		t.Errorf("freq(Z) = %d, want 0", got)
	}
}
