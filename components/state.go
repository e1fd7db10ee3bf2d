package components

import (
	"github.com/automoto/deepdiver/config"
	"github.com/yohamta/donburi"
)

// StateData records how the running dive ended, if it has.
type StateData struct {
	Outcome config.Outcome
	Tick    int // tick on which the outcome was decided
}

var State = donburi.NewComponentType[StateData]()
