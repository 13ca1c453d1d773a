package main

// Grid is a fixed-size 2-D cell array. Each cell holds at most one letter
// plus a count of how many placed words cover it, so removing one word of a
// crossing pair leaves the shared letter in place.
type Grid struct {
	Width  int
	Height int
	cells  []rune // row-major, 0 = empty
	refs   []int  // words covering each cell
}

// NewGrid returns a grid of the given dimensions with all cells empty.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]rune, width*height),
		refs:   make([]int, width*height),
	}
}

func (g *Grid) idx(row, col int) int { return row*g.Width + col }

// At returns the letter at (row, col), or 0 for an empty cell.
func (g *Grid) At(row, col int) rune {
	return g.cells[g.idx(row, col)]
}

// Clone deep-copies the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height}
	c.cells = make([]rune, len(g.cells))
	copy(c.cells, g.cells)
	c.refs = make([]int, len(g.refs))
	copy(c.refs, g.refs)
	return c
}

// span resolves the entry anchor (row, col) to the top-left origin of the
// cells a word of length n would occupy, or ok=false when it does not fit.
// Horizontal words end at col (rightmost), vertical words end at row
// (bottom), matching the right-to-left / bottom-to-top entry convention.
func (g *Grid) span(n, row, col int, dir Direction) (startRow, startCol int, ok bool) {
	if n == 0 || row < 0 || col < 0 || row >= g.Height || col >= g.Width {
		return 0, 0, false
	}
	if dir == Horizontal {
		if col+1 < n {
			return 0, 0, false
		}
		return row, col + 1 - n, true
	}
	if row+1 < n {
		return 0, 0, false
	}
	return row + 1 - n, col, true
}

// CanPlace reports whether the word fits at the entry anchor (row, col):
// every cell it would occupy is in bounds and either empty or already holds
// the identical letter. No side effects.
func (g *Grid) CanPlace(word string, row, col int, dir Direction) bool {
	chars := []rune(word)
	startRow, startCol, ok := g.span(len(chars), row, col, dir)
	if !ok {
		return false
	}
	for i, ch := range chars {
		r, c := startRow, startCol
		if dir == Horizontal {
			c += i
		} else {
			r += i
		}
		if existing := g.cells[g.idx(r, c)]; existing != 0 && existing != ch {
			return false
		}
	}
	return true
}

// Place validates via CanPlace and writes the word, incrementing the
// occupancy count of every covered cell. Returns whether it succeeded.
func (g *Grid) Place(word string, row, col int, dir Direction) bool {
	if !g.CanPlace(word, row, col, dir) {
		return false
	}
	chars := []rune(word)
	startRow, startCol, _ := g.span(len(chars), row, col, dir)
	for i, ch := range chars {
		r, c := startRow, startCol
		if dir == Horizontal {
			c += i
		} else {
			r += i
		}
		g.cells[g.idx(r, c)] = ch
		g.refs[g.idx(r, c)]++
	}
	return true
}

// Remove decrements the occupancy count of every cell the word covers and
// clears cells whose count reaches zero. Letters shared with another placed
// word survive.
func (g *Grid) Remove(p PlacedWord) {
	n := len([]rune(p.Word))
	for i := 0; i < n; i++ {
		r, c := p.StartRow, p.StartCol
		if p.Direction == Horizontal {
			c += i
		} else {
			r += i
		}
		if r < 0 || r >= g.Height || c < 0 || c >= g.Width {
			continue
		}
		k := g.idx(r, c)
		if g.refs[k] > 0 {
			g.refs[k]--
		}
		if g.refs[k] == 0 {
			g.cells[k] = 0
		}
	}
}

// ReadWord reads the letters the placed word covers, for round-trip checks.
func (g *Grid) ReadWord(p PlacedWord) string {
	n := len([]rune(p.Word))
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r, c := p.StartRow, p.StartCol
		if p.Direction == Horizontal {
			c += i
		} else {
			r += i
		}
		if r < 0 || r >= g.Height || c < 0 || c >= g.Width {
			return string(out)
		}
		out = append(out, g.At(r, c))
	}
	return string(out)
}

// UsedBounds returns the bounding box of all non-empty cells as
// (minRow, maxRow, minCol, maxCol), or all zeros for an empty grid.
func (g *Grid) UsedBounds() (minRow, maxRow, minCol, maxCol int) {
	minRow, minCol = g.Height, g.Width
	hasContent := false
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.cells[g.idx(r, c)] == 0 {
				continue
			}
			hasContent = true
			if r < minRow {
				minRow = r
			}
			if r > maxRow {
				maxRow = r
			}
			if c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}
	if !hasContent {
		return 0, 0, 0, 0
	}
	return minRow, maxRow, minCol, maxCol
}

// UsedDimensions returns the (height, width) of the used bounding box.
func (g *Grid) UsedDimensions() (height, width int) {
	minRow, maxRow, minCol, maxCol := g.UsedBounds()
	return maxRow - minRow + 1, maxCol - minCol + 1
}

// Compact reallocates the grid to exactly the used bounding box and shifts
// content so the box origin becomes (0, 0). Returns the (rowOffset,
// colOffset) callers must subtract from every PlacedWord anchor.
func (g *Grid) Compact() (rowOffset, colOffset int) {
	minRow, maxRow, minCol, maxCol := g.UsedBounds()
	newHeight := maxRow - minRow + 1
	newWidth := maxCol - minCol + 1
	cells := make([]rune, newWidth*newHeight)
	refs := make([]int, newWidth*newHeight)
	for r := 0; r < newHeight; r++ {
		for c := 0; c < newWidth; c++ {
			cells[r*newWidth+c] = g.cells[g.idx(minRow+r, minCol+c)]
			refs[r*newWidth+c] = g.refs[g.idx(minRow+r, minCol+c)]
		}
	}
	g.cells = cells
	g.refs = refs
	g.Width = newWidth
	g.Height = newHeight
	return minRow, minCol
}

// TrimEmpty strips every fully-empty row and column, including interior
// ones, and returns the removed row and column indices (relative to the grid
// before the call). Callers owning PlacedWord anchors must renumber them;
// see Solution trim in generate.go.
func (g *Grid) TrimEmpty() (removedRows, removedCols []int) {
	for r := 0; r < g.Height; r++ {
		empty := true
		for c := 0; c < g.Width; c++ {
			if g.cells[g.idx(r, c)] != 0 {
				empty = false
				break
			}
		}
		if empty {
			removedRows = append(removedRows, r)
		}
	}
	for c := 0; c < g.Width; c++ {
		empty := true
		for r := 0; r < g.Height; r++ {
			if g.cells[g.idx(r, c)] != 0 {
				empty = false
				break
			}
		}
		if empty {
			removedCols = append(removedCols, c)
		}
	}
	if len(removedRows) == 0 && len(removedCols) == 0 {
		return nil, nil
	}

	keepRow := make([]bool, g.Height)
	for i := range keepRow {
		keepRow[i] = true
	}
	for _, r := range removedRows {
		keepRow[r] = false
	}
	keepCol := make([]bool, g.Width)
	for i := range keepCol {
		keepCol[i] = true
	}
	for _, c := range removedCols {
		keepCol[c] = false
	}

	newHeight := g.Height - len(removedRows)
	newWidth := g.Width - len(removedCols)
	cells := make([]rune, newWidth*newHeight)
	refs := make([]int, newWidth*newHeight)
	nr := 0
	for r := 0; r < g.Height; r++ {
		if !keepRow[r] {
			continue
		}
		nc := 0
		for c := 0; c < g.Width; c++ {
			if !keepCol[c] {
				continue
			}
			cells[nr*newWidth+nc] = g.cells[g.idx(r, c)]
			refs[nr*newWidth+nc] = g.refs[g.idx(r, c)]
			nc++
		}
		nr++
	}
	g.cells = cells
	g.refs = refs
	g.Width = newWidth
	g.Height = newHeight
	return removedRows, removedCols
}
