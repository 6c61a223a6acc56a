package astar_test

import (
	"testing"

	"github.com/atlasvia/terrapath/astar"
	"github.com/atlasvia/terrapath/terrain"
)

// benchGrid builds a w×h sand grid with opposite-corner markers and a
// mountain band crossed by one ramp corridor, roughly matching the atlas
// images in structure.
func benchGrid(b *testing.B, w, h int) *terrain.Grid {
	b.Helper()

	cells := make([][]terrain.Category, h)
	for y := range cells {
		row := make([]terrain.Category, w)
		for x := range row {
			row[x] = terrain.Sand
		}
		cells[y] = row
	}
	for y := h/2 - 4; y <= h/2+4; y++ {
		for x := 0; x < w; x++ {
			cells[y][x] = terrain.Mountain
		}
		for x := w / 2; x < w/2+4; x++ {
			cells[y][x] = terrain.Ramp
		}
	}
	cells[2][2] = terrain.Start
	cells[h-3][w-3] = terrain.End

	g, err := terrain.FromCategories(cells)
	if err != nil {
		b.Fatalf("FromCategories error: %v", err)
	}

	return g
}

// BenchmarkFind_200 measures a full search on a 200×200 grid with the
// default lattice step.
func BenchmarkFind_200(b *testing.B) {
	g := benchGrid(b, 200, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := astar.Find(g); err != nil {
			b.Fatalf("Find error: %v", err)
		}
	}
}

// BenchmarkFind_Step1 measures the dense per-pixel lattice, the worst case
// for segment sampling.
func BenchmarkFind_Step1(b *testing.B) {
	g := benchGrid(b, 120, 120)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := astar.Find(g, astar.WithStep(1)); err != nil {
			b.Fatalf("Find error: %v", err)
		}
	}
}
