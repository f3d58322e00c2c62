package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates an ASCII picture of the grid for debugging and tests.
//
// Format:
//   - header line with cell counts and the win threshold
//   - one line per row, two characters per slot, even rows indented by one
//   - empty slots are '.', occupied slots use the palette glyph
func RenderASCII(g *Grid, p Palette) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Cells: %d | Top: %d | Win at: %d | Pending: %d\n",
		g.Len(), g.TopRowCount(), g.TopRowWinCount(), g.Pending()))

	cfg := g.Config()
	for row := 0; row < cfg.Rows; row++ {
		if row%2 == 0 {
			sb.WriteByte(' ')
		}
		for col := 0; col < cfg.Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			cell, ok := g.Cell(C(col, row))
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(p.Glyph(cell.Color))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
