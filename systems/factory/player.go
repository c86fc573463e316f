package factory

import (
	"github.com/automoto/sunset-runner/archetypes"
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing on the ground at StartX. The body
// is the scaled sheet cell.
func CreatePlayer(ecs *ecs.ECS, sheet *ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.FrameWidth) * cfg.Player.Scale
	h := float64(cfg.Player.FrameHeight) * cfg.Player.Scale
	obj := resolv.NewObject(cfg.Player.StartX, cfg.Player.GroundY, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		OnGround:      true,
		State:         cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		JumpSpeed: cfg.Player.JumpSpeed,
		Gravity:   cfg.Player.Gravity,
	})
	components.Input.SetValue(player, components.InputData{})
	components.Animation.Set(player, GenerateAnimation(sheet))

	return player
}
