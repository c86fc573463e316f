package systems

import (
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

func (s *Session) UpdateMovement(e *ecs.ECS) {
	input := components.Input.Get(s.Player)
	player := components.Player.Get(s.Player)
	physics := components.Physics.Get(s.Player)
	body := components.Object.Get(s.Player).Object

	moveHorizontally(input, player, physics, body)
}

// moveHorizontally adds the state-driven speed, then the left/right keys'
// fixed delta, which applies in every state.
func moveHorizontally(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, body *resolv.Object) {
	physics.SpeedX = player.HorizontalSpeed()
	body.X += physics.SpeedX

	if input.Action(cfg.ActionMoveLeft).Pressed {
		body.X -= cfg.Player.NudgeSpeed
	}
	if input.Action(cfg.ActionMoveRight).Pressed {
		body.X += cfg.Player.NudgeSpeed
	}
}
