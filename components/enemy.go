package components

import (
	"github.com/yohamta/donburi"
)

// EnemyData drives a shark swimming back and forth across the screen.
type EnemyData struct {
	Direction Vector
	Speed     float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
