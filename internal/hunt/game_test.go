package hunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameIsDeterministic(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	a, b := NewGame(g, 77), NewGame(g, 77)
	for i := 0; i < 50 && !a.Found(); i++ {
		fa, err := a.Step()
		require.NoError(t, err)
		fb, err := b.Step()
		require.NoError(t, err)
		require.True(t, fa.Whale.Equal(fb.Whale) && fa.Ship.Equal(fb.Ship) && fa.Measurement == fb.Measurement,
			"turn %d diverged: %+v vs %+v", fa.Turn, fa, fb)
	}
}

func TestStepAdvancesTurn(t *testing.T) {
	gm := NewGame(Grid{Width: 10, Height: 10}, 5)
	gm.Whale.Pos, gm.Ship.Pos = Pos{0, 0}, Pos{9, 9}

	f, err := gm.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Turn)
	assert.Equal(t, 1, gm.Turn())
	assert.Equal(t, Pos{9, 9}, f.Measured)
	assert.Equal(t, Dist(f.Whale, f.Measured), f.Measurement)
	assert.NotEqual(t, f.Measured, f.Ship, "ship did not move")
}

func TestStepOnFoundGameIsNoop(t *testing.T) {
	gm := NewGame(Grid{Width: 4, Height: 4}, 2)
	gm.Ship.Pos = gm.Whale.Pos
	f, err := gm.Step()
	require.NoError(t, err)
	assert.Equal(t, 0, f.Turn)
	assert.Equal(t, 0, gm.Turn())
}

func TestStepRollsBackUnexplainedMeasurement(t *testing.T) {
	// All mass sits in the far corner. Whatever step the whale takes from
	// (4,4), the ring it lands on is more than one cell away from (9,9).
	gm := NewGame(Grid{Width: 10, Height: 10}, 8)
	gm.Whale.Pos, gm.Ship.Pos = Pos{4, 4}, Pos{0, 0}
	gm.Ship.belief = oneHot(gm.Grid, Pos{9, 9})
	before := gm.Snapshot()

	_, err := gm.Step()
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
	assert.Equal(t, Pos{4, 4}, gm.Whale.Pos, "whale move not undone")
	assert.Equal(t, Pos{0, 0}, gm.Ship.Pos)
	assert.Equal(t, 0, gm.Turn())
	assert.Equal(t, before, gm.Snapshot())
	assert.Equal(t, oneHot(gm.Grid, Pos{9, 9}), gm.Ship.BeliefSnapshot().P)
}

func TestSnapshotIsCopy(t *testing.T) {
	gm := NewGame(Grid{Width: 4, Height: 4}, 2)
	snap := gm.Snapshot()
	snap.Belief.P[0] = 7
	assert.NotEqual(t, 7.0, gm.Snapshot().Belief.P[0], "snapshot shares storage with the game")
}

func TestRunSingleRecordsEvents(t *testing.T) {
	found := 0
	for seed := int64(1); seed <= 20; seed++ {
		gm := NewGame(Grid{Width: 4, Height: 4}, seed)
		frames := 0
		res, err := RunSingle(gm, RunOptions{
			MaxTurns: 2000,
			Record:   true,
			OnFrame:  func(Frame) { frames++ },
		})
		require.NoError(t, err, "seed %d", seed)
		require.NotEmpty(t, res.RunID, "seed %d", seed)
		assert.Equal(t, seed, res.Seed)
		assert.Equal(t, res.Turns+1, frames, "seed %d", seed)

		moves := 0
		for _, ev := range res.Events {
			if ev.Type == "WhaleMove" {
				moves++
			}
		}
		assert.Equal(t, res.Turns, moves, "seed %d: WhaleMove events", seed)

		last := res.Events[len(res.Events)-1].Type
		if res.Found {
			found++
			assert.Equal(t, res.Whale, res.Ship, "seed %d", seed)
			if res.Turns > 0 {
				assert.Equal(t, "Found", last, "seed %d", seed)
			}
		} else {
			assert.Equal(t, 2000, res.Turns, "seed %d", seed)
			assert.Equal(t, "TurnLimit", last, "seed %d", seed)
		}
	}
	assert.NotZero(t, found, "no game on a 4x4 grid found the whale")
}

func TestRunSingleTurnLimit(t *testing.T) {
	gm := NewGame(Grid{Width: 10, Height: 10}, 3)
	gm.Whale.Pos, gm.Ship.Pos = Pos{0, 0}, Pos{9, 9}
	var types []string
	res, err := RunSingle(gm, RunOptions{MaxTurns: 1, Emit: func(ev Event) { types = append(types, ev.Type) }})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Turns)
	assert.Nil(t, res.Events, "events recorded without Record")
	assert.Equal(t, []string{"WhaleMove", "Measure", "ShipMove", "TurnLimit"}, types)
}
