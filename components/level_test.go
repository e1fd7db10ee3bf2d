package components

import (
	"testing"

	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/shared/leveldata"
	"github.com/solarlune/resolv"
)

func testGrid() *TileGridData {
	g := NewTileGrid("test", 4, 6, 25)
	put := func(row, col int, kind leveldata.TileKind) {
		g.Put(row, col, kind, resolv.NewObject(float64(col)*25, float64(row)*25, 25, 25))
	}
	put(0, 0, leveldata.SolidEndCapA)
	put(1, 2, leveldata.HazardSegmentA)
	put(1, 3, leveldata.SolidSegmentB)
	put(2, 1, leveldata.SolidSegmentA)
	put(3, 5, leveldata.HazardEndCapB)
	return g
}

func TestCellRange(t *testing.T) {
	tests := []struct {
		name           string
		offset         float64
		area           gamemath.Rect
		margin         int
		r0, r1, c0, c1 int
		ok             bool
	}{
		{"single cell", 0, gamemath.Rect{X: 30, Y: 30, W: 10, H: 10}, 0, 1, 1, 1, 1, true},
		{"margin", 0, gamemath.Rect{X: 30, Y: 30, W: 10, H: 10}, 1, 0, 2, 0, 2, true},
		{"clipped at origin", 0, gamemath.Rect{X: -40, Y: -40, W: 50, H: 50}, 1, 0, 1, 0, 1, true},
		{"scrolled down", 25, gamemath.Rect{X: 30, Y: 30, W: 10, H: 10}, 0, 0, 0, 1, 1, true},
		{"scrolled up", -50, gamemath.Rect{X: 30, Y: 30, W: 10, H: 10}, 0, 3, 3, 1, 1, true},
		{"below the grid", 0, gamemath.Rect{X: 30, Y: 500, W: 10, H: 10}, 1, 19, 3, 0, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGrid()
			g.Offset = tt.offset
			r0, r1, c0, c1, ok := g.CellRange(tt.area, tt.margin)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if r0 != tt.r0 || r1 != tt.r1 || c0 != tt.c0 || c1 != tt.c1 {
				t.Fatalf("range = rows %d..%d cols %d..%d, want rows %d..%d cols %d..%d",
					r0, r1, c0, c1, tt.r0, tt.r1, tt.c0, tt.c1)
			}
		})
	}
}

func TestCandidatesSplitAndOrder(t *testing.T) {
	g := testGrid()

	solids, hazards := g.Candidates(gamemath.Rect{X: 0, Y: 0, W: 150, H: 100}, 0, nil, nil)

	wantSolids := [][2]float64{{0, 0}, {75, 25}, {25, 50}}
	if len(solids) != len(wantSolids) {
		t.Fatalf("solids = %d, want %d", len(solids), len(wantSolids))
	}
	for i, w := range wantSolids {
		if solids[i].X != w[0] || solids[i].Y != w[1] {
			t.Fatalf("solid %d at (%v,%v), want (%v,%v)", i, solids[i].X, solids[i].Y, w[0], w[1])
		}
	}
	if len(hazards) != 2 {
		t.Fatalf("hazards = %d, want 2", len(hazards))
	}
	if hazards[0].X != 50 || hazards[1].X != 125 {
		t.Fatalf("hazards out of row-major order: %v, %v", hazards[0].X, hazards[1].X)
	}

	near, _ := g.Candidates(gamemath.Rect{X: 0, Y: 0, W: 10, H: 10}, 0, solids[:0], hazards[:0])
	if len(near) != 1 {
		t.Fatalf("reused buffer should hold only the nearby tile, got %d", len(near))
	}
}

func TestCellOutsideGrid(t *testing.T) {
	g := testGrid()
	if obj, kind := g.Cell(-1, 0); obj != nil || kind != leveldata.Empty {
		t.Fatalf("Cell(-1,0) = %v, %v", obj, kind)
	}
	if _, kind := g.Cell(1, 3); kind != leveldata.SolidSegmentB {
		t.Fatalf("Cell(1,3) kind = %v", kind)
	}
}
