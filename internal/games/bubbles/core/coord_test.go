package core_test

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

func TestNeighborsRowParity(t *testing.T) {
	tests := []struct {
		name     string
		at       core.Coord
		expected []core.Coord
	}{
		{
			name: "even row interior",
			at:   core.C(3, 2),
			expected: []core.Coord{
				core.C(3, 1), core.C(4, 1),
				core.C(2, 2), core.C(4, 2),
				core.C(3, 3), core.C(4, 3),
			},
		},
		{
			name: "odd row interior",
			at:   core.C(3, 3),
			expected: []core.Coord{
				core.C(2, 2), core.C(3, 2),
				core.C(2, 3), core.C(4, 3),
				core.C(2, 4), core.C(3, 4),
			},
		},
		{
			name: "top left corner",
			at:   core.C(0, 0),
			expected: []core.Coord{
				core.C(1, 0),
				core.C(0, 1), core.C(1, 1),
			},
		},
		{
			name: "odd row left edge",
			at:   core.C(0, 1),
			expected: []core.Coord{
				core.C(0, 0),
				core.C(1, 1),
				core.C(0, 2),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := core.Neighbors(tc.at, 10, 10)
			if !slices.Equal(got, tc.expected) {
				t.Errorf("Neighbors(%v) = %v, expected %v", tc.at, got, tc.expected)
			}
		})
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	sizes := []struct{ cols, rows int }{{10, 10}, {7, 5}, {1, 4}, {3, 1}}

	for _, sz := range sizes {
		for r := 0; r < sz.rows; r++ {
			for c := 0; c < sz.cols; c++ {
				a := core.C(c, r)
				for _, b := range core.Neighbors(a, sz.cols, sz.rows) {
					if !b.InBounds(sz.cols, sz.rows) {
						t.Fatalf("%dx%d: neighbor %v of %v out of bounds", sz.cols, sz.rows, b, a)
					}
					if !slices.Contains(core.Neighbors(b, sz.cols, sz.rows), a) {
						t.Errorf("%dx%d: %v is a neighbor of %v but not the reverse", sz.cols, sz.rows, b, a)
					}
				}
			}
		}
	}
}

func TestNeighborsMatchLayoutDistance(t *testing.T) {
	cfg := core.DefaultGridConfig()
	l := cfg.Layout()
	iv := l.Interval()

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			a := core.C(c, r)
			for _, b := range core.Neighbors(a, cfg.Cols, cfg.Rows) {
				d := math.Sqrt(l.Center(a).DistSq(l.Center(b)))
				// Same-row neighbors are one interval apart, diagonals slightly more.
				if d < iv-core.Epsilon || d > iv*1.2 {
					t.Errorf("distance %v-%v = %f, expected about %f", a, b, d, iv)
				}
			}
		}
	}
}

func TestLayoutCenter(t *testing.T) {
	l := core.DefaultGridConfig().Layout()

	tests := []struct {
		at   core.Coord
		x, y float64
	}{
		{core.C(0, 0), 1.1 * (-4.5 + 0.25), 0},
		{core.C(0, 1), 1.1 * (-4.5 - 0.25), -1.1},
		{core.C(9, 0), 1.1 * (4.5 + 0.25), 0},
		{core.C(5, 3), 1.1 * (0.5 - 0.25), -3.3},
	}

	for _, tc := range tests {
		got := l.Center(tc.at)
		if !core.Approx(got.X, tc.x) || !core.Approx(got.Y, tc.y) {
			t.Errorf("Center(%v) = %v, expected (%f, %f)", tc.at, got, tc.x, tc.y)
		}
	}
}

func TestLayoutNearestRoundTrip(t *testing.T) {
	cfg := core.DefaultGridConfig()
	cfg.Origin = core.V(3, 12)
	l := cfg.Layout()

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			want := core.C(c, r)
			p := l.Center(want).Add(core.V(0.2, -0.1))
			if got := l.Nearest(p); got != want {
				t.Errorf("Nearest(%v) = %v, expected %v", p, got, want)
			}
		}
	}

	// Far outside the board clamps to an edge slot.
	if got := l.Nearest(core.V(-100, 100)); got != core.C(0, 0) {
		t.Errorf("Nearest(far top left) = %v, expected (0,0)", got)
	}
}
