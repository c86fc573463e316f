package systems

import (
	"math"
	"testing"

	"github.com/automoto/sunset-runner/assets"
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLevel() *assets.Level {
	return &assets.Level{
		Name: "test.tmx",
		Layers: []assets.LayerSpec{
			{Name: "sky", ImagePath: "images/sky.png", Width: 320, Height: 240, Speed: 0.1, Scale: 2},
			{Name: "hills", ImagePath: "images/hills.png", Width: 320, Height: 240, Speed: 0.5, Scale: 2},
			{Name: "ground", ImagePath: "images/ground.png", Width: 192, Height: 16, Speed: 1, Scale: 4, Tiling: true},
		},
	}
}

// withMode switches the background driver for the duration of a test.
func withMode(t *testing.T, mode cfg.BackgroundMode) {
	t.Helper()
	prev := cfg.Background
	cfg.Background.Mode = mode
	t.Cleanup(func() { cfg.Background = prev })
}

func newTestSession(t *testing.T) (*ecs.ECS, *Session) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePlayer(e, nil)
	factory.CreateCamera(e, 0)
	factory.CreateSettings(e, false)
	factory.CreateBackgrounds(e, testLevel(), nil)

	s, err := NewSession(e.World)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.SubscribeScroll(e.World)
	return e, s
}

// press starts a new input frame with exactly the given actions held.
func press(s *Session, actions ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	components.Input.Get(s.Player).Push(pressed)
}

// step runs every system after input polling, in pipeline order.
func step(e *ecs.ECS, s *Session) {
	s.UpdatePlayer(e)
	s.UpdatePhysics(e)
	s.UpdateMovement(e)
	s.UpdateAnimation(e)
	s.UpdateBackgrounds(e)
	s.UpdateCamera(e)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
