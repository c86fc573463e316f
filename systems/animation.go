package systems

import (
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation switches the player's frame range to match the state set
// earlier this frame, then advances the frame on the animation timer.
func (s *Session) UpdateAnimation(e *ecs.ECS) {
	player := components.Player.Get(s.Player)
	anim := components.Animation.Get(s.Player)
	if anim.Animation == nil {
		return
	}

	syncAnimation(player, anim)
	anim.Update(s.FrameTime)
}

// syncAnimation applies the state's range. Idle has none and keeps the
// current one.
func syncAnimation(player *components.PlayerData, anim *components.AnimationData) {
	r, ok := cfg.AnimationFor(player.State)
	if !ok {
		return
	}
	anim.SetRange(r, player.State.Airborne())
}
