package panel

import (
	"testing"

	perrors "github.com/matzehuels/champagne/pkg/errors"
)

func TestSizeGrid(t *testing.T) {
	tests := []struct {
		name                     string
		height, width, border, r float64
		want                     Grid
	}{
		{"defaults", 110, 210, 5, 20, Grid{CountX: 2, CountY: 5}},
		{"exact fit", 100, 100, 0, 25, Grid{CountX: 2, CountY: 2}},
		{"smaller than one pitch", 30, 30, 0, 20, Grid{}},
		{"border eats the panel", 110, 210, 60, 20, Grid{CountX: 0, CountY: 2}},
		{"border larger than half", 50, 50, 40, 5, Grid{}},
		{"fractional radius", 10, 10, 0, 2.5, Grid{CountX: 2, CountY: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SizeGrid(tt.height, tt.width, tt.border, tt.r)
			if err != nil {
				t.Fatalf("SizeGrid() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SizeGrid() = %+v, want %+v", got, tt.want)
			}
			if got.CountX < 0 || got.CountY < 0 {
				t.Errorf("SizeGrid() produced negative counts: %+v", got)
			}
		})
	}
}

func TestSizeGridOverBudget(t *testing.T) {
	tests := []struct {
		name                     string
		height, width, border, r float64
	}{
		{"too many cells", 2000, 2000, 0, 1},
		{"beyond int range", 1e7, 1e7, 0, 0.001},
		{"one huge axis", 1e300, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := SizeGrid(tt.height, tt.width, tt.border, tt.r)
			if !perrors.Is(err, perrors.ErrCodeInvalidInput) {
				t.Errorf("SizeGrid() = %+v, %v; want %s", g, err, perrors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestSizeGridAtBudget(t *testing.T) {
	// 500 × 500 cells of 2 mm pitch.
	g, err := SizeGrid(1000, 1000, 0, 1)
	if err != nil {
		t.Fatalf("SizeGrid() error: %v", err)
	}
	if g.HoleCount() != MaxHoles {
		t.Errorf("HoleCount() = %d, want %d", g.HoleCount(), MaxHoles)
	}
}

func TestGridAccessors(t *testing.T) {
	g := Grid{CountX: 2, CountY: 5}
	if g.HoleCount() != 10 {
		t.Errorf("HoleCount() = %d, want 10", g.HoleCount())
	}
	if g.Columns() != 5 {
		t.Errorf("Columns() = %d, want 5", g.Columns())
	}
	if g.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", g.Rows())
	}
}
