package hunt

import (
	"encoding/json"

	"github.com/google/uuid"
)

type RunOptions struct {
	MaxTurns int // 0 plays until found
	Record   bool
	Emit     func(Event)
	OnFrame  func(Frame)
}

type SimResult struct {
	RunID  string  `json:"run_id"`
	Seed   int64   `json:"seed"`
	Grid   Grid    `json:"grid"`
	Found  bool    `json:"found"`
	Turns  int     `json:"turns"`
	Start  Start   `json:"start"`
	Whale  Pos     `json:"whale"`
	Ship   Pos     `json:"ship"`
	Events []Event `json:"events,omitempty"`
}

type Start struct {
	Whale Pos `json:"whale"`
	Ship  Pos `json:"ship"`
}

// RunSingle steps g until the ship finds the whale or MaxTurns is reached.
func RunSingle(g *Game, opts RunOptions) (SimResult, error) {
	var events []Event
	emit := func(ev Event) {
		if opts.Record {
			events = append(events, ev)
		}
		if opts.Emit != nil {
			opts.Emit(ev)
		}
	}

	res := SimResult{
		RunID: uuid.NewString(),
		Seed:  g.Seed,
		Grid:  g.Grid,
		Start: Start{Whale: g.Whale.Pos, Ship: g.Ship.Pos},
	}
	if opts.OnFrame != nil {
		opts.OnFrame(g.Snapshot())
	}

	for !g.Found() {
		if opts.MaxTurns > 0 && g.Turn() >= opts.MaxTurns {
			emit(Event{Turn: g.Turn(), Type: "TurnLimit", Payload: map[string]any{
				"max_turns": opts.MaxTurns,
			}})
			break
		}
		whaleFrom := g.Whale.Pos
		f, err := g.Step()
		if err != nil {
			res.Events = events
			return res, err
		}
		emit(Event{Turn: f.Turn, Type: "WhaleMove", Payload: map[string]any{
			"from": []int{whaleFrom.X, whaleFrom.Y}, "to": []int{f.Whale.X, f.Whale.Y},
		}})
		emit(Event{Turn: f.Turn, Type: "Measure", Payload: map[string]any{
			"d": f.Measurement, "at": []int{f.Measured.X, f.Measured.Y}, "best": len(f.Belief.Best()),
		}})
		emit(Event{Turn: f.Turn, Type: "ShipMove", Payload: map[string]any{
			"from": []int{f.Measured.X, f.Measured.Y}, "to": []int{f.Ship.X, f.Ship.Y},
		}})
		if opts.OnFrame != nil {
			opts.OnFrame(f)
		}
	}

	res.Found = g.Found()
	res.Turns = g.Turn()
	res.Whale = g.Whale.Pos
	res.Ship = g.Ship.Pos
	if res.Found {
		emit(Event{Turn: res.Turns, Type: "Found", Payload: map[string]any{
			"at": []int{res.Ship.X, res.Ship.Y},
		}})
	}
	res.Events = events
	return res, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
