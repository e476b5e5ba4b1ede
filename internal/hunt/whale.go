package hunt

import "math/rand"

// Whale is the hidden target. It random-walks one 8-connected step per turn.
type Whale struct {
	Pos  Pos
	grid Grid
	rng  *rand.Rand
}

func NewWhale(g Grid, rng *rand.Rand) *Whale {
	return &Whale{
		Pos:  Pos{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)},
		grid: g,
		rng:  rng,
	}
}

// Move redraws an offset until it lands on a different in-bounds cell.
// Terminates for any grid accepted by NewGrid.
func (w *Whale) Move() {
	next := w.Pos
	for next.Equal(w.Pos) || !w.grid.Contains(next) {
		next = w.Pos.Add(Pos{X: w.rng.Intn(3) - 1, Y: w.rng.Intn(3) - 1})
	}
	w.Pos = next
}

func (w *Whale) DistanceTo(p Pos) int { return Dist(w.Pos, p) }

// Found reports whether the ship sits on the whale.
func Found(w *Whale, s *Ship) bool { return w.DistanceTo(s.Pos) == 0 }
