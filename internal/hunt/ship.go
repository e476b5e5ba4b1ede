package hunt

import (
	"math/rand"

	"github.com/pkg/errors"
)

var ErrInvalidMeasurement = errors.New("measurement leaves no reachable cell")

// Ship is the observer. It never sees the whale, only distances to it.
type Ship struct {
	Pos    Pos
	grid   Grid
	rng    *rand.Rand
	belief []float64
}

func NewShip(g Grid, rng *rand.Rand) *Ship {
	return &Ship{
		Pos:    Pos{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)},
		grid:   g,
		rng:    rng,
		belief: uniformBelief(g),
	}
}

// Update folds measurement d into the belief map. Each cell at distance d
// collects the full prior mass of its neighbourhood (itself included) without
// splitting sources by their branching factor; the result is renormalised and
// every other cell drops to zero. A measurement no prior mass can explain
// returns ErrInvalidMeasurement and leaves the map untouched.
func (s *Ship) Update(d int) error {
	next := make([]float64, len(s.belief))
	total := 0.0
	for i := range next {
		c := s.grid.pos(i)
		if Dist(c, s.Pos) != d {
			continue
		}
		mass := 0.0
		for _, o := range offsets {
			if p := c.Add(o); s.grid.Contains(p) {
				mass += s.belief[s.grid.index(p)]
			}
		}
		next[i] = mass
		total += mass
	}
	if total == 0 {
		return errors.Wrapf(ErrInvalidMeasurement, "d=%d from %s", d, s.Pos)
	}
	for i := range next {
		next[i] /= total
	}
	s.belief = next
	return nil
}

// Move steps toward the most likely whale cells. Each neighbour scores, per
// best cell, 2 for landing on it or 1 for getting strictly closer; the ship
// takes a random pick among the top scorers. A ship already certain to be on
// the whale stays put.
func (s *Ship) Move() {
	if s.Certain() {
		return
	}
	best := bestCells(s.grid, s.belief)

	var picks []Pos
	top := -1
	for _, m := range s.grid.Neighbors(s.Pos) {
		points := 0
		for _, b := range best {
			switch to := Dist(m, b); {
			case to == 0:
				points += 2
			case to < Dist(s.Pos, b):
				points++
			}
		}
		switch {
		case points > top:
			top = points
			picks = append(picks[:0], m)
		case points == top:
			picks = append(picks, m)
		}
	}
	s.Pos = picks[s.rng.Intn(len(picks))]
}

func (s *Ship) BeliefSnapshot() BeliefMap {
	p := make([]float64, len(s.belief))
	copy(p, s.belief)
	return BeliefMap{Grid: s.grid, P: p}
}

// Certain reports whether the ship's own cell holds all of the mass.
func (s *Ship) Certain() bool { return s.belief[s.grid.index(s.Pos)] == 1 }
