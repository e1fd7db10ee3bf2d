package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is simulated time since the scene started, advanced once per tick.
type ClockData struct {
	Now   time.Duration
	Ticks int
}

var Clock = donburi.NewComponentType[ClockData]()
