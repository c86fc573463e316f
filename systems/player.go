package systems

import (
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

func (s *Session) UpdatePlayer(e *ecs.ECS) {
	input := components.Input.Get(s.Player)
	player := components.Player.Get(s.Player)
	physics := components.Physics.Get(s.Player)
	body := components.Object.Get(s.Player).Object

	player.PreviousState = player.State
	updatePlayerState(input, player, physics, body)
	logTransition(player)
}

// updatePlayerState evaluates one frame of the movement state machine.
// Order matters: jump start, held jump, run press, run release, landing.
//
// Running can be entered while airborne and overrides Jumping/Falling; a run
// release mid-air likewise switches to Walking before the player lands.
// Only a jump held since takeoff keeps rising; letting go ends the rise for
// the rest of the jump.
func updatePlayerState(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, body *resolv.Object) {
	jump := input.Action(cfg.ActionJump)
	run := input.Action(cfg.ActionRun)

	physics.SpeedY = 0
	if !jump.Pressed {
		physics.Rising = false
	}

	switch {
	case jump.JustPressed && player.OnGround:
		player.OnGround = false
		player.SetState(cfg.Jumping)
		physics.Rising = true
		rise(player, physics, body)
	case player.State == cfg.Jumping && physics.Rising:
		rise(player, physics, body)
	}

	if run.JustPressed {
		player.SetState(cfg.Running)
	}
	if run.JustReleased {
		player.SetState(cfg.Walking)
	}

	settleOnGround(player, physics, body)
}

// rise applies the jump impulse and ends the rising part of the jump at
// GroundY+JumpHeight.
func rise(player *components.PlayerData, physics *components.PhysicsData, body *resolv.Object) {
	physics.SpeedY = physics.JumpSpeed
	body.Y += physics.SpeedY

	ceiling := cfg.Player.GroundY + cfg.Player.JumpHeight
	if body.Y < ceiling {
		return
	}
	body.Y = ceiling
	physics.Rising = false
	player.SetState(cfg.Falling)
}

// settleOnGround lands an airborne player that reached the ground level.
// It reports whether the player landed this call.
func settleOnGround(player *components.PlayerData, physics *components.PhysicsData, body *resolv.Object) bool {
	if player.OnGround || body.Y > cfg.Player.GroundY {
		return false
	}
	body.Y = cfg.Player.GroundY
	player.OnGround = true
	physics.Rising = false
	player.SetState(cfg.Walking)
	return true
}

func logTransition(player *components.PlayerData) {
	if player.State == player.PreviousState {
		return
	}
	log.Debug("player state",
		"from", player.PreviousState,
		"to", player.State,
		"onGround", player.OnGround,
	)
}
