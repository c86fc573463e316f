package systems

import (
	"github.com/automoto/sunset-runner/components"
	"github.com/automoto/sunset-runner/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centers the camera horizontally on the player. The vertical
// position never changes, so the ground stays at a fixed screen height.
func (s *Session) UpdateCamera(e *ecs.ECS) {
	if !config.Camera.FollowX {
		return
	}
	camera := components.Camera.Get(s.Camera)
	body := components.Object.Get(s.Player)

	camera.Position.X = body.X + body.W/2 + config.Camera.OffsetX
}
