package components

import (
	"github.com/automoto/deepdiver/config"
	"github.com/yohamta/donburi"
)

// GameOverData is the result shown on the game over screen
type GameOverData struct {
	Outcome config.Outcome
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
