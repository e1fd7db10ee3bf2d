package components

import (
	"math"

	"github.com/automoto/deepdiver/shared/gamemath"
	"github.com/automoto/deepdiver/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TileGridData indexes tile objects by grid cell. Tiles only ever move by the
// shared scroll Offset, so cell (r, c) always sits at (c*TileSize, r*TileSize+Offset).
type TileGridData struct {
	Name       string
	Rows, Cols int
	TileSize   float64
	Offset     float64

	cells []*resolv.Object
	kinds []leveldata.TileKind
}

func NewTileGrid(name string, rows, cols int, tileSize float64) *TileGridData {
	return &TileGridData{
		Name:     name,
		Rows:     rows,
		Cols:     cols,
		TileSize: tileSize,
		cells:    make([]*resolv.Object, rows*cols),
		kinds:    make([]leveldata.TileKind, rows*cols),
	}
}

func (g *TileGridData) inside(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Put registers a tile object at a cell.
func (g *TileGridData) Put(row, col int, kind leveldata.TileKind, obj *resolv.Object) {
	if !g.inside(row, col) {
		return
	}
	g.cells[row*g.Cols+col] = obj
	g.kinds[row*g.Cols+col] = kind
}

// Cell returns the tile at a cell, nil and Empty when there is none.
func (g *TileGridData) Cell(row, col int) (*resolv.Object, leveldata.TileKind) {
	if !g.inside(row, col) {
		return nil, leveldata.Empty
	}
	return g.cells[row*g.Cols+col], g.kinds[row*g.Cols+col]
}

// CellRange returns the inclusive row and column span covered by area, grown by margin cells
// and clipped to the grid. ok is false when the span misses the grid entirely.
func (g *TileGridData) CellRange(area gamemath.Rect, margin int) (r0, r1, c0, c1 int, ok bool) {
	r0 = int(math.Floor((area.Y-g.Offset)/g.TileSize)) - margin
	r1 = int(math.Floor((area.Bottom()-g.Offset)/g.TileSize)) + margin
	c0 = int(math.Floor(area.X/g.TileSize)) - margin
	c1 = int(math.Floor(area.Right()/g.TileSize)) + margin

	r0, c0 = max(r0, 0), max(c0, 0)
	r1, c1 = min(r1, g.Rows-1), min(c1, g.Cols-1)
	return r0, r1, c0, c1, r0 <= r1 && c0 <= c1
}

// Candidates appends the solid and hazard tiles near area to the given slices, in row-major order.
func (g *TileGridData) Candidates(area gamemath.Rect, margin int, solids, hazards []*resolv.Object) ([]*resolv.Object, []*resolv.Object) {
	r0, r1, c0, c1, ok := g.CellRange(area, margin)
	if !ok {
		return solids, hazards
	}
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			i := r*g.Cols + c
			switch {
			case g.kinds[i].IsSolid():
				solids = append(solids, g.cells[i])
			case g.kinds[i].IsHazard():
				hazards = append(hazards, g.cells[i])
			}
		}
	}
	return solids, hazards
}

var TileGrid = donburi.NewComponentType[TileGridData]()
