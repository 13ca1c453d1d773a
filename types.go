package main

import (
	"encoding/json"
	"fmt"
)

// Direction is the reading direction of a word in the grid. Horizontal words
// read right-to-left, vertical words read bottom-to-top, so the last character
// of a word sits at the highest column (Horizontal) or the lowest row
// (Vertical).
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalJSON encodes the direction as its lowercase name.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a direction from its lowercase name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "horizontal":
		*d = Horizontal
	case "vertical":
		*d = Vertical
	default:
		return fmt.Errorf("unknown direction %q", s)
	}
	return nil
}

// WordLists is the engine input: the words to place in each direction.
type WordLists struct {
	Horizontal []string `json:"horizontal" yaml:"horizontal"`
	Vertical   []string `json:"vertical" yaml:"vertical"`
}

// PlacedWord records where a word ended up in the grid. StartRow/StartCol is
// the top-left corner of the occupied span regardless of reading direction:
// a Horizontal word covers columns StartCol..StartCol+len-1 at StartRow, a
// Vertical word covers rows StartRow..StartRow+len-1 at StartCol.
type PlacedWord struct {
	Word      string    `json:"word"`
	StartRow  int       `json:"startRow"`
	StartCol  int       `json:"startCol"`
	Direction Direction `json:"direction"`
}

// entryAnchor converts the top-left span origin back to the entry anchor
// used by Grid.Place: the rightmost column for Horizontal words, the bottom
// row for Vertical words.
func (p PlacedWord) entryAnchor() (row, col int) {
	n := len([]rune(p.Word))
	if p.Direction == Horizontal {
		return p.StartRow, p.StartCol + n - 1
	}
	return p.StartRow + n - 1, p.StartCol
}

// placedAt builds a PlacedWord from the entry anchor a word was placed at.
func placedAt(word string, row, col int, dir Direction) PlacedWord {
	n := len([]rune(word))
	p := PlacedWord{Word: word, Direction: dir}
	if dir == Horizontal {
		p.StartRow = row
		p.StartCol = col + 1 - n
	} else {
		p.StartRow = row + 1 - n
		p.StartCol = col
	}
	return p
}

// Intersection is a candidate crossing of one horizontal word and one
// vertical word at specific character offsets. Immutable once enumerated.
type Intersection struct {
	HWordIdx int
	VWordIdx int
	HCharIdx int
	VCharIdx int
	Char     rune
}

// PlacementCandidate is a scored anchor proposal for placing one word on the
// current grid state. Row/Col follow the entry-anchor convention of
// Grid.Place. Transient: recomputed on demand, never persisted.
type PlacementCandidate struct {
	Row       int
	Col       int
	Direction Direction
	Score     float64
}

// Solution is a complete layout: the grid plus every placed word.
type Solution struct {
	Grid  *Grid        `json:"-"`
	Words []PlacedWord `json:"words"`
}

// Clone deep-copies the solution so strategies and the annealer can mutate
// their own copy without sharing grid state.
func (s *Solution) Clone() *Solution {
	words := make([]PlacedWord, len(s.Words))
	copy(words, s.Words)
	return &Solution{Grid: s.Grid.Clone(), Words: words}
}
