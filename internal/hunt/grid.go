package hunt

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var ErrDegenerateGrid = errors.New("grid must be at least 2x2")

type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Pos) Add(o Pos) Pos    { return Pos{p.X + o.X, p.Y + o.Y} }
func (p Pos) String() string   { return fmt.Sprintf("%d,%d", p.X, p.Y) }
func (p Pos) Equal(o Pos) bool { return p.X == o.X && p.Y == o.Y }
func (p Pos) IsZero() bool     { return p.X == 0 && p.Y == 0 }

// Dist is the Euclidean distance truncated toward zero.
func Dist(a, b Pos) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

// offsets in {-1,0,1}², dx-major; the zero offset sits in the middle.
var offsets = [9]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func NewGrid(width, height int) (Grid, error) {
	if width < 2 || height < 2 {
		return Grid{}, errors.Wrapf(ErrDegenerateGrid, "got %dx%d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

func (g Grid) Cells() int { return g.Width * g.Height }

func (g Grid) Contains(p Pos) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g Grid) index(p Pos) int { return p.Y*g.Width + p.X }

func (g Grid) pos(i int) Pos { return Pos{X: i % g.Width, Y: i / g.Width} }

// Neighbors returns the in-bounds 8-connected cells around p, p excluded.
func (g Grid) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 8)
	for _, o := range offsets {
		if o.IsZero() {
			continue
		}
		if q := p.Add(o); g.Contains(q) {
			out = append(out, q)
		}
	}
	return out
}
