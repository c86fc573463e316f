package factory

import (
	"github.com/automoto/sunset-runner/archetypes"
	"github.com/automoto/sunset-runner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x},
	})
	components.Scroll.Set(camera, &components.ScrollData{})
	return camera
}

func CreateSettings(ecs *ecs.ECS, debug bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{Debug: debug})
	return settings
}
