package components

import (
	"github.com/automoto/deepdiver/shared/leveldata"
	"github.com/yohamta/donburi"
)

type TileData struct {
	Kind     leveldata.TileKind
	Row, Col int
}

var Tile = donburi.NewComponentType[TileData]()
