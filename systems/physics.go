package systems

import (
	"github.com/automoto/sunset-runner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics pulls an airborne player down and clamps them at the ground.
// Gravity also applies while a held jump is pushing the player up, so the
// net rise per frame is JumpSpeed - Gravity.
func (s *Session) UpdatePhysics(e *ecs.ECS) {
	player := components.Player.Get(s.Player)
	physics := components.Physics.Get(s.Player)
	body := components.Object.Get(s.Player).Object

	prev := player.State
	applyGravity(player, physics, body)
	if player.State != prev {
		player.PreviousState = prev
		logTransition(player)
	}
}

func applyGravity(player *components.PlayerData, physics *components.PhysicsData, body *resolv.Object) {
	if player.OnGround {
		return
	}
	body.Y -= physics.Gravity
	settleOnGround(player, physics, body)
}
