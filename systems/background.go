package systems

import (
	"time"

	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// ScrollEventData is published once per frame in parallax mode.
type ScrollEventData struct {
	Velocity math.Vec2 // px per second, scaled per layer by its Speed
	DT       time.Duration
}

var ScrollEvent = events.NewEventType[ScrollEventData]()

// SubscribeScroll registers the layer mover for parallax mode.
func (s *Session) SubscribeScroll(world donburi.World) {
	ScrollEvent.Subscribe(world, s.onScroll)
}

func (s *Session) UpdateBackgrounds(e *ecs.ECS) {
	switch cfg.Background.Mode {
	case cfg.BackgroundTiling:
		s.updateTiling()
	case cfg.BackgroundParallax:
		s.updateParallax(e.World)
	}
}

func (s *Session) updateTiling() {
	camera := components.Camera.Get(s.Camera)
	tiles := s.tiles()

	recycleLeftmost(tiles, camera.Position.X+cfg.Background.RecycleThreshold)

	dx := cfg.Background.TileScrollSpeed * s.FrameTime.Seconds()
	for _, t := range tiles {
		components.Object.Get(t).X += dx
	}
}

// recycleLeftmost moves the leftmost tile behind the others once its right
// edge has passed threshold. Tiles sit edge to edge, so the jump is the
// tile count times the tile width. At most one tile moves per call.
func recycleLeftmost(tiles []*donburi.Entry, threshold float64) bool {
	var leftmost *components.ObjectData
	for _, t := range tiles {
		obj := components.Object.Get(t)
		if leftmost == nil || obj.X < leftmost.X {
			leftmost = obj
		}
	}
	if leftmost == nil || leftmost.Right() > threshold {
		return false
	}
	leftmost.X += float64(len(tiles)) * leftmost.W
	return true
}

func (s *Session) updateParallax(world donburi.World) {
	player := components.Player.Get(s.Player)
	scroll := components.Scroll.Get(s.Camera)

	speed := blendScroll(scroll, scrollSpeedFor(player.State), s.FrameTime)
	ScrollEvent.Publish(world, ScrollEventData{
		Velocity: math.Vec2{X: -speed},
		DT:       s.FrameTime,
	})
	ScrollEvent.ProcessEvents(world)
}

func (s *Session) onScroll(w donburi.World, evt ScrollEventData) {
	for _, e := range s.Backgrounds {
		bg := components.Background.Get(e)
		obj := components.Object.Get(e)
		obj.X += evt.Velocity.X * bg.Speed * evt.DT.Seconds()
	}
}

// scrollSpeedFor picks the base scroll speed from the player's state.
func scrollSpeedFor(state cfg.PlayerState) float64 {
	switch state {
	case cfg.Running:
		return cfg.Background.RunScrollSpeed
	case cfg.Walking, cfg.Jumping, cfg.Falling:
		return cfg.Background.WalkScrollSpeed
	}
	return 0
}

// blendScroll eases the scroll speed toward target over
// cfg.Background.SpeedBlend and returns the speed for this frame.
func blendScroll(scroll *components.ScrollData, target float64, dt time.Duration) float64 {
	if target != scroll.TargetX {
		scroll.TargetX = target
		blend := cfg.Background.SpeedBlend.Seconds()
		if blend <= 0 {
			scroll.VelocityX = target
			scroll.Blend = nil
			return scroll.VelocityX
		}
		scroll.Blend = gween.New(float32(scroll.VelocityX), float32(target), float32(blend), ease.OutQuad)
	}

	if scroll.Blend == nil {
		return scroll.VelocityX
	}

	current, finished := scroll.Blend.Update(float32(dt.Seconds()))
	scroll.VelocityX = float64(current)
	if finished {
		scroll.VelocityX = target
		scroll.Blend = nil
	}
	return scroll.VelocityX
}
