package leveldata

import "fmt"

var codeKinds = map[byte]TileKind{
	'1': SolidEndCapA,
	'2': SolidSegmentA,
	'3': SolidSegmentB,
	'4': SolidEndCapB,
	'a': HazardEndCapA,
	'b': HazardSegmentA,
	'c': HazardSegmentB,
	'd': HazardEndCapB,
}

// KindForCode maps a level character to a tile kind. Unknown codes and markers are Empty.
func KindForCode(code byte) TileKind {
	if kind, ok := codeKinds[code]; ok {
		return kind
	}
	return Empty
}

// Build lays out the tiles and spawns described by rows. Row r, column c sits at
// (c*tileSize, r*tileSize). When several player markers are present the last one wins.
func Build(rows []string, tileSize int) (*Layout, error) {
	if tileSize <= 0 {
		return nil, ErrBadTileSize
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrEmptyLevel
	}

	size := float64(tileSize)
	layout := &Layout{
		Rows:     len(rows),
		Cols:     cols,
		TileSize: size,
		kinds:    make([]TileKind, len(rows)*cols),
	}

	hasPlayer := false
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrRaggedRow)
		}
		for c := 0; c < cols; c++ {
			code := row[c]
			x, y := float64(c)*size, float64(r)*size

			switch code {
			case PlayerMarker:
				layout.Player = Spawn{Row: r, Col: c, X: x, Y: y}
				hasPlayer = true
				continue
			case EnemyMarker:
				layout.Enemies = append(layout.Enemies, Spawn{Row: r, Col: c, X: x, Y: y})
				continue
			case GoalMarker:
				layout.Goals = append(layout.Goals, Spawn{Row: r, Col: c, X: x, Y: y})
				continue
			}

			kind := KindForCode(code)
			layout.kinds[r*cols+c] = kind
			spec := TileSpec{Kind: kind, Row: r, Col: c, X: x, Y: y}
			switch {
			case kind.IsSolid():
				layout.Solids = append(layout.Solids, spec)
			case kind.IsHazard():
				layout.Hazards = append(layout.Hazards, spec)
			}
		}
	}

	if !hasPlayer {
		return nil, ErrNoPlayerSpawn
	}

	return layout, nil
}
