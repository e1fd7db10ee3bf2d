package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the trigger layer holding the diver, sharks and goal markers.
var Space = donburi.NewComponentType[resolv.Space]()
