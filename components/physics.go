package components

import "github.com/yohamta/donburi"

// PhysicsData holds the per-frame displacements applied to a body.
// World space is y-up.
type PhysicsData struct {
	SpeedX    float64 // horizontal displacement this frame, before nudges
	SpeedY    float64 // upward displacement applied this frame by the jump
	JumpSpeed float64
	Gravity   float64
	Rising    bool // jump held continuously since takeoff
}

var Physics = donburi.NewComponentType[PhysicsData]()
