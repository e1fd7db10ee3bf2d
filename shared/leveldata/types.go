// Package leveldata turns character-grid level descriptions into tile layouts.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import "errors"

// TileKind classifies a grid cell
type TileKind int

const (
	Empty TileKind = iota
	SolidEndCapA
	SolidSegmentA
	SolidSegmentB
	SolidEndCapB
	HazardEndCapA
	HazardSegmentA
	HazardSegmentB
	HazardEndCapB
)

func (k TileKind) IsSolid() bool {
	return k >= SolidEndCapA && k <= SolidEndCapB
}

func (k TileKind) IsHazard() bool {
	return k >= HazardEndCapA && k <= HazardEndCapB
}

func (k TileKind) String() string {
	switch k {
	case SolidEndCapA:
		return "solid-endcap-a"
	case SolidSegmentA:
		return "solid-segment-a"
	case SolidSegmentB:
		return "solid-segment-b"
	case SolidEndCapB:
		return "solid-endcap-b"
	case HazardEndCapA:
		return "hazard-endcap-a"
	case HazardSegmentA:
		return "hazard-segment-a"
	case HazardSegmentB:
		return "hazard-segment-b"
	case HazardEndCapB:
		return "hazard-endcap-b"
	}
	return "empty"
}

// Marker codes denote spawn positions; they never emit a tile.
const (
	PlayerMarker = 'P'
	EnemyMarker  = 'e'
	GoalMarker   = 'D'
	EmptyCode    = '0'
)

var (
	ErrEmptyLevel    = errors.New("level has no rows")
	ErrRaggedRow     = errors.New("level rows differ in width")
	ErrNoPlayerSpawn = errors.New("level has no player spawn")
	ErrBadTileSize   = errors.New("tile size must be positive")
	ErrUnknownLevel  = errors.New("level not found in manifest")
)

// TileSpec is a tile emitted by Build, in pixels at scroll offset zero.
type TileSpec struct {
	Kind     TileKind
	Row, Col int
	X, Y     float64
}

// Spawn is the pixel position of a marker cell.
type Spawn struct {
	Row, Col int
	X, Y     float64
}

// Layout is the static geometry of a level.
type Layout struct {
	Rows, Cols int
	TileSize   float64
	Solids     []TileSpec // row-major grid order
	Hazards    []TileSpec // row-major grid order
	Player     Spawn
	Enemies    []Spawn
	Goals      []Spawn

	kinds []TileKind
}

// KindAt returns the tile kind at a cell, Empty outside the grid.
func (l *Layout) KindAt(row, col int) TileKind {
	if row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
		return Empty
	}
	return l.kinds[row*l.Cols+col]
}

// Width and Height return the grid size in pixels.
func (l *Layout) Width() float64  { return float64(l.Cols) * l.TileSize }
func (l *Layout) Height() float64 { return float64(l.Rows) * l.TileSize }
