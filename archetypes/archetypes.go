package archetypes

import (
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Animation,
		components.Input,
	)
	Background = newArchetype(
		tags.Background,
		components.Background,
		components.Object,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Scroll,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
