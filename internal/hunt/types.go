package hunt

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Frame is the state of a game after a turn.
type Frame struct {
	Turn        int       `json:"turn"`
	Measurement int       `json:"measurement"`
	Measured    Pos       `json:"measured_from"` // ship cell the measurement was taken from
	Whale       Pos       `json:"whale"`
	Ship        Pos       `json:"ship"`
	Found       bool      `json:"found"`
	Belief      BeliefMap `json:"belief"`
}

func (f Frame) clone() Frame {
	p := make([]float64, len(f.Belief.P))
	copy(p, f.Belief.P)
	f.Belief.P = p
	return f
}
