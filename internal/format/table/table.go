// Package table lays out rows of cells as aligned text columns.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Separator is written between columns.
const Separator = "  "

// Format returns the rows padded according to the widest entry in each
// column. Rows shorter than the first are padded with empty cells.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatMax(rows, alignments, 0)
}

// FormatMax is Format with every column clipped to at most maxCell display
// cells. A maxCell of zero leaves cells unclipped.
func FormatMax(rows [][]string, alignments []Alignment, maxCell int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	cells := make([][]string, len(rows))
	widths := make([]int, colCount)
	for r, row := range rows {
		cells[r] = make([]string, colCount)
		for c := range cells[r] {
			if c >= len(row) {
				continue
			}
			cell := row[c]
			if maxCell > 0 {
				cell = Clip(cell, maxCell)
			}
			cells[r][c] = cell
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(Separator)
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < len(row)-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

// Clip shortens text to width display cells, marking the cut with an
// ellipsis.
func Clip(text string, width int) string {
	if width <= 0 || cellWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
