package hunt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistTruncates(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{Pos{0, 0}, Pos{0, 0}, 0},
		{Pos{0, 0}, Pos{1, 1}, 1},
		{Pos{0, 0}, Pos{3, 3}, 4},
		{Pos{5, 5}, Pos{7, 7}, 2},
		{Pos{0, 0}, Pos{3, 4}, 5},
		{Pos{2, 9}, Pos{2, 0}, 9},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Dist(c.a, c.b), "Dist(%v, %v)", c.a, c.b)
		assert.Equal(t, c.want, Dist(c.b, c.a), "Dist(%v, %v) symmetry", c.b, c.a)
	}
}

func TestNewGridRejectsDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{1, 10}, {10, 1}, {0, 0}, {-3, 4}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrDegenerateGrid, "NewGrid(%d, %d)", dims[0], dims[1])
	}
	g, err := NewGrid(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Cells())
}

func TestNeighbors(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	cases := []struct {
		p    Pos
		want int
	}{
		{Pos{0, 0}, 3},
		{Pos{9, 9}, 3},
		{Pos{0, 5}, 5},
		{Pos{5, 5}, 8},
	}
	for _, c := range cases {
		ns := g.Neighbors(c.p)
		assert.Len(t, ns, c.want, "Neighbors(%v)", c.p)
		for _, n := range ns {
			assert.True(t, !n.Equal(c.p) && g.Contains(n) && Dist(n, c.p) == 1,
				"Neighbors(%v) returned bad cell %v", c.p, n)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := Grid{Width: 4, Height: 3}
	for i := 0; i < g.Cells(); i++ {
		assert.Equal(t, i, g.index(g.pos(i)))
	}
}
