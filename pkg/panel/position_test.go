package panel

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name   string
		ix, iy int
		offset float64
		want   r2.Vec
	}{
		{"origin cell", 0, 0, 0, r2.Vec{X: 25, Y: 25}},
		{"second column", 1, 0, 0, r2.Vec{X: 65, Y: 25}},
		{"second row", 0, 1, 0, r2.Vec{X: 25, Y: 65}},
		{"far corner", 4, 1, 0, r2.Vec{X: 185, Y: 65}},
		{"offset both axes", 2, 1, -3, r2.Vec{X: 102, Y: 62}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Position(tt.ix, tt.iy, 5, 20, tt.offset)
			if got != tt.want {
				t.Errorf("Position(%d, %d) = %v, want %v", tt.ix, tt.iy, got, tt.want)
			}
		})
	}
}

func TestJitterBound(t *testing.T) {
	if got := JitterBound(16, 3); got != 13 {
		t.Errorf("JitterBound(16, 3) = %g, want 13", got)
	}
	if got := JitterBound(16, 16); got != 0 {
		t.Errorf("JitterBound(16, 16) = %g, want 0", got)
	}
}

func TestJitterRange(t *testing.T) {
	rng := NewRand(3)
	for _, bound := range []float64{1, 2, 4.5, 8, 13} {
		seen := map[float64]bool{}
		for range 2000 {
			j := Jitter(rng, bound)
			if j != math.Trunc(j) {
				t.Fatalf("Jitter(%g) = %g, want an integer", bound, j)
			}
			if j < -bound || j > bound {
				t.Fatalf("Jitter(%g) = %g, outside [-bound, bound]", bound, j)
			}
			seen[j] = true
		}
		if bound == math.Trunc(bound) {
			if seen[bound] {
				t.Errorf("Jitter(%g) reached the excluded upper bound", bound)
			}
			if !seen[-bound] {
				t.Errorf("Jitter(%g) never reached the lower bound", bound)
			}
		}
	}
}

func TestJitterSmallBound(t *testing.T) {
	rng := NewRand(1)
	for _, bound := range []float64{0, 0.5, 0.99, -1, math.NaN()} {
		if got := Jitter(rng, bound); got != 0 {
			t.Errorf("Jitter(%g) = %g, want 0", bound, got)
		}
	}
}

func TestJitterFractionalBound(t *testing.T) {
	rng := NewRand(9)
	seen := make(map[float64]bool)
	for range 2000 {
		got := Jitter(rng, 2.5)
		if got < -2.5 || got > 2.5 || got != math.Trunc(got) {
			t.Fatalf("Jitter(2.5) = %g, want an integer within ±2.5", got)
		}
		seen[got] = true
	}
	for _, want := range []float64{-2, -1, 0, 1, 2} {
		if !seen[want] {
			t.Errorf("Jitter(2.5) never produced %g", want)
		}
	}
}
