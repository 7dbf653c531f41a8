package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	Gravity      float64
	Friction     float64
	MaxSpeed     float64
	MaxFallSpeed float64
	OnGround     bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
