package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Solid  = donburi.NewTag().SetName("Solid")
	Hazard = donburi.NewTag().SetName("Hazard")
	Goal   = donburi.NewTag().SetName("Goal")
)

// Resolv tags for the trigger space
const (
	ResolvSolid  = "solid"
	ResolvHazard = "hazard"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvGoal   = "goal"
)
