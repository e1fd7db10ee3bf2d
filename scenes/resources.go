package scenes

import (
	"github.com/automoto/deepdiver/assets"
	"github.com/automoto/deepdiver/shared/leveldata"
	"github.com/automoto/deepdiver/systems"
)

// Resources are loaded once at startup and shared by every scene.
// A nil Sprites draws placeholder rectangles.
type Resources struct {
	Sprites   *assets.Sprites
	LevelName string
	Layout    *leveldata.Layout
	Keyboard  systems.KeyboardState
}
