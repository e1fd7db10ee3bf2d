package config

import "image"

// SpriteID names a single frame cut from one of the sprite sheets
type SpriteID int

const (
	SpriteNone SpriteID = iota

	SpriteDiverStandRight
	SpriteDiverStandLeft
	SpriteDiverRunRight1
	SpriteDiverRunRight2
	SpriteDiverRunRight3
	SpriteDiverRunLeft1
	SpriteDiverRunLeft2
	SpriteDiverRunLeft3

	SpriteSharkRight1
	SpriteSharkRight2
	SpriteSharkRight3
	SpriteSharkRight4
	SpriteSharkLeft1
	SpriteSharkLeft2
	SpriteSharkLeft3
	SpriteSharkLeft4

	SpriteRockEndCapA
	SpriteRockSegmentA
	SpriteRockSegmentB
	SpriteRockEndCapB
	SpriteHazardEndCapA
	SpriteHazardSegmentA
	SpriteHazardSegmentB
	SpriteHazardEndCapB
)

// Sprite sheet files under assets/images
const (
	SheetDiver  = "diver.png"
	SheetShark  = "shark.png"
	SheetRocks  = "rocks.png"
	SheetHazard = "hazard_rocks.png"
)

// TileSourceSize is the edge of a rock tile in the sheet; tiles are scaled to C.TileSize on draw.
const TileSourceSize = 64

// SpriteDef locates a frame inside a sheet
type SpriteDef struct {
	Sheet string
	Rect  image.Rectangle
}

func frame(sheet string, x, y, w, h int) SpriteDef {
	return SpriteDef{Sheet: sheet, Rect: image.Rect(x, y, x+w, y+h)}
}

// Sprites maps every frame to its sheet rectangle
var Sprites = map[SpriteID]SpriteDef{
	SpriteDiverStandRight: frame(SheetDiver, 41, 3, 14, 27),
	SpriteDiverStandLeft:  frame(SheetDiver, 60, 3, 14, 27),
	SpriteDiverRunRight1:  frame(SheetDiver, 41, 99, 14, 27),
	SpriteDiverRunRight2:  frame(SheetDiver, 22, 131, 14, 27),
	SpriteDiverRunRight3:  frame(SheetDiver, 41, 131, 14, 27),
	SpriteDiverRunLeft1:   frame(SheetDiver, 60, 99, 14, 27),
	SpriteDiverRunLeft2:   frame(SheetDiver, 3, 131, 14, 27),
	SpriteDiverRunLeft3:   frame(SheetDiver, 60, 131, 14, 27),

	SpriteSharkRight1: frame(SheetShark, 155, 28, 104, 34),
	SpriteSharkRight2: frame(SheetShark, 155, 65, 104, 34),
	SpriteSharkRight3: frame(SheetShark, 155, 154, 104, 34),
	SpriteSharkRight4: frame(SheetShark, 155, 195, 104, 34),
	SpriteSharkLeft1:  frame(SheetShark, 8, 28, 104, 32),
	SpriteSharkLeft2:  frame(SheetShark, 8, 65, 104, 37),
	SpriteSharkLeft3:  frame(SheetShark, 8, 154, 104, 37),
	SpriteSharkLeft4:  frame(SheetShark, 8, 195, 104, 37),

	SpriteRockEndCapA:  frame(SheetRocks, 0, 0, TileSourceSize, TileSourceSize),
	SpriteRockSegmentA: frame(SheetRocks, 65, 0, TileSourceSize, TileSourceSize),
	SpriteRockSegmentB: frame(SheetRocks, 65, 64, TileSourceSize, TileSourceSize),
	SpriteRockEndCapB:  frame(SheetRocks, 0, 64, TileSourceSize, TileSourceSize),

	SpriteHazardEndCapA:  frame(SheetHazard, 0, 0, TileSourceSize, TileSourceSize),
	SpriteHazardSegmentA: frame(SheetHazard, 65, 0, TileSourceSize, TileSourceSize),
	SpriteHazardSegmentB: frame(SheetHazard, 65, 64, TileSourceSize, TileSourceSize),
	SpriteHazardEndCapB:  frame(SheetHazard, 0, 64, TileSourceSize, TileSourceSize),
}

// ClipID identifies a looping frame sequence
type ClipID int

const (
	ClipDiverRunRight ClipID = iota
	ClipDiverRunLeft
	ClipSharkRight
	ClipSharkLeft
)

// Clips lists the frames of each clip in playback order
var Clips = map[ClipID][]SpriteID{
	ClipDiverRunRight: {SpriteDiverRunRight1, SpriteDiverRunRight2, SpriteDiverRunRight3},
	ClipDiverRunLeft:  {SpriteDiverRunLeft1, SpriteDiverRunLeft2, SpriteDiverRunLeft3},
	ClipSharkRight:    {SpriteSharkRight1, SpriteSharkRight2, SpriteSharkRight3, SpriteSharkRight4},
	ClipSharkLeft:     {SpriteSharkLeft1, SpriteSharkLeft2, SpriteSharkLeft3, SpriteSharkLeft4},
}

// DiverStand is the idle frame for each facing
var DiverStand = map[float64]SpriteID{
	DirectionRight: SpriteDiverStandRight,
	DirectionLeft:  SpriteDiverStandLeft,
}
