package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenData animates a full-screen text card (start and game-over screens).
type ScreenData struct {
	Fade        *gween.Tween
	Pulse       *gween.Tween
	Alpha       float32 // fade-in progress, 0..1
	Glow        float32 // prompt brightness
	PulseRising bool
}

var Screen = donburi.NewComponentType[ScreenData]()
