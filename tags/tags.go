package tags

import "github.com/yohamta/donburi"

var (
	Slime = donburi.NewTag().SetName("Slime")
	Match = donburi.NewTag().SetName("Match")
)
