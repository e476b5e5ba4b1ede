package hunt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ttacon/chalk"
)

// Render prints the belief map of f as a text table, top row first, with the
// ship at the cell its measurement was taken from. color highlights the ship
// and the most likely cells.
func Render(w io.Writer, f Frame, color bool) error {
	g := f.Belief.Grid
	best := map[Pos]bool{}
	for _, p := range f.Belief.Best() {
		best[p] = true
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "(0,%d)\n", g.Height-1)
	for y := g.Height - 1; y >= 0; y-- {
		bw.WriteString("    ")
		for x := 0; x < g.Width; x++ {
			p := Pos{X: x, Y: y}
			bw.WriteString("| ")
			cell := cellText(f.Belief.At(p))
			switch {
			case p.Equal(f.Measured):
				cell = "Ship "
				if color {
					cell = chalk.Cyan.Color(cell)
				}
			case color && best[p]:
				cell = chalk.Green.Color(cell)
			}
			bw.WriteString(cell)
		}
		bw.WriteString("|\n")
	}
	fmt.Fprintf(bw, "(0,0)%s(%d,0)\n", strings.Repeat(" ", 7*g.Width), g.Width-1)
	return bw.Flush()
}

func cellText(v float64) string {
	if v == 0 {
		return " 0%  "
	}
	return fmt.Sprintf("%-5s", fmt.Sprintf("%.1f%%", v*100))
}
