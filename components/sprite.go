package components

import (
	"github.com/automoto/deepdiver/config"
	"github.com/yohamta/donburi"
)

// SpriteData is a static frame drawn scaled to the object's bounds.
type SpriteData struct {
	Frame config.SpriteID
}

var Sprite = donburi.NewComponentType[SpriteData]()
