package components

import "github.com/yohamta/donburi"

// DebugData toggles the collision overlay for the running dive.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
