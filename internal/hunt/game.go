package hunt

import (
	"github.com/pkg/errors"

	"whalehunt/internal/util"
)

// Game owns one whale, one ship and the generator both draw from. It is the
// whole simulation context; callers advance it with Step.
type Game struct {
	Grid  Grid
	Seed  int64
	Whale *Whale
	Ship  *Ship
	last  Frame
}

func NewGame(g Grid, seed int64) *Game {
	rng := util.New(seed)
	w := NewWhale(g, rng)
	s := NewShip(g, rng)
	gm := &Game{Grid: g, Seed: seed, Whale: w, Ship: s}
	gm.last = Frame{
		Measurement: w.DistanceTo(s.Pos),
		Measured:    s.Pos,
		Whale:       w.Pos,
		Ship:        s.Pos,
		Found:       Found(w, s),
		Belief:      s.BeliefSnapshot(),
	}
	return gm
}

func (g *Game) Turn() int   { return g.last.Turn }
func (g *Game) Found() bool { return Found(g.Whale, g.Ship) }

// Snapshot returns the frame of the last completed turn (turn 0 before any).
func (g *Game) Snapshot() Frame { return g.last.clone() }

// Step plays one turn: the whale moves, the ship takes its measurement,
// updates its belief and moves. A found game does not advance, and a turn
// whose measurement the belief cannot explain is rolled back.
func (g *Game) Step() (Frame, error) {
	if g.Found() {
		return g.Snapshot(), nil
	}
	turn := g.last.Turn + 1
	whaleFrom := g.Whale.Pos
	g.Whale.Move()
	from := g.Ship.Pos
	d := g.Whale.DistanceTo(from)
	if err := g.Ship.Update(d); err != nil {
		// Update leaves the belief alone on failure; undo the whale too so
		// the game stays at the last completed turn.
		g.Whale.Pos = whaleFrom
		return Frame{}, errors.Wrapf(err, "turn %d", turn)
	}
	g.Ship.Move()
	g.last = Frame{
		Turn:        turn,
		Measurement: d,
		Measured:    from,
		Whale:       g.Whale.Pos,
		Ship:        g.Ship.Pos,
		Found:       g.Found(),
		Belief:      g.Ship.BeliefSnapshot(),
	}
	return g.Snapshot(), nil
}
