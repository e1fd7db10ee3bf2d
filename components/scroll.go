package components

import "github.com/yohamta/donburi"

// ScrollData is the world scroll applied this tick; positive moves tiles down.
type ScrollData struct {
	Velocity float64
}

var Scroll = donburi.NewComponentType[ScrollData]()
