package hunt

// BeliefMap is a read-only copy of the ship's probability map, row-major
// (index y*Width+x).
type BeliefMap struct {
	Grid Grid      `json:"grid"`
	P    []float64 `json:"p"`
}

func (b BeliefMap) At(p Pos) float64 {
	if !b.Grid.Contains(p) {
		return 0
	}
	return b.P[b.Grid.index(p)]
}

func (b BeliefMap) Sum() float64 {
	total := 0.0
	for _, v := range b.P {
		total += v
	}
	return total
}

// Best returns every cell holding the maximum probability, in index order.
// A map with no mass has no best cell.
func (b BeliefMap) Best() []Pos { return bestCells(b.Grid, b.P) }

func uniformBelief(g Grid) []float64 {
	p := make([]float64, g.Cells())
	v := 1 / float64(g.Cells())
	for i := range p {
		p[i] = v
	}
	return p
}

func bestCells(g Grid, p []float64) []Pos {
	var best []Pos
	top := 0.0
	for i, v := range p {
		switch {
		case v > top:
			top = v
			best = append(best[:0], g.pos(i))
		case top != 0 && v == top:
			best = append(best, g.pos(i))
		}
	}
	return best
}
