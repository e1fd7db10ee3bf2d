package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector // X is the facing, -1 left or 1 right
	Moving    bool
}

var Player = donburi.NewComponentType[PlayerData]()
