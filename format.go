package main

import (
	"fmt"
	"strings"
)

// FormatGrid renders the used bounding box of the grid, letters separated by
// spaces and empty cells shown as a dot.
func FormatGrid(grid *Grid) string {
	minRow, maxRow, minCol, maxCol := grid.UsedBounds()

	var sb strings.Builder
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if c > minCol {
				sb.WriteByte(' ')
			}
			if ch := grid.At(r, c); ch != 0 {
				sb.WriteRune(ch)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatSolution renders the final dimensions, the placement list, and the
// grid itself.
func FormatSolution(sol *Solution) string {
	h, w := sol.Grid.UsedDimensions()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Final grid size: %dx%d (area: %d)\n\n", h, w, h*w)
	sb.WriteString("Placed words:\n")
	for _, p := range sol.Words {
		fmt.Fprintf(&sb, "  %s (%s) at (%d, %d)\n", p.Word, p.Direction, p.StartRow, p.StartCol)
	}
	sb.WriteString("\nGrid:\n")
	sb.WriteString(FormatGrid(sol.Grid))
	return sb.String()
}

// GridRows returns the used bounding box as one string per row, empty cells
// as '.', for JSON output.
func GridRows(grid *Grid) []string {
	minRow, maxRow, minCol, maxCol := grid.UsedBounds()
	rows := make([]string, 0, maxRow-minRow+1)
	for r := minRow; r <= maxRow; r++ {
		var sb strings.Builder
		for c := minCol; c <= maxCol; c++ {
			if ch := grid.At(r, c); ch != 0 {
				sb.WriteRune(ch)
			} else {
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}
