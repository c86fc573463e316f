package systems

import (
	"errors"
	"testing"

	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestNewSessionCardinality(t *testing.T) {
	withMode(t, cfg.BackgroundParallax)

	tests := []struct {
		name    string
		players int
		cameras int
		want    error
	}{
		{"no player", 0, 1, ErrNoPlayer},
		{"two players", 2, 1, ErrManyPlayers},
		{"no camera", 1, 0, ErrNoCamera},
		{"two cameras", 1, 2, ErrManyCameras},
		{"one of each", 1, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			for i := 0; i < tt.players; i++ {
				factory.CreatePlayer(e, nil)
			}
			for i := 0; i < tt.cameras; i++ {
				factory.CreateCamera(e, 0)
			}
			factory.CreateBackgrounds(e, testLevel(), nil)

			s, err := NewSession(e.World)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewSession error = %v, want %v", err, tt.want)
			}
			if tt.want == nil && (s.Player == nil || s.Camera == nil) {
				t.Fatal("session is missing entity handles")
			}
		})
	}
}

func TestNewSessionNeedsBackgrounds(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePlayer(e, nil)
	factory.CreateCamera(e, 0)

	if _, err := NewSession(e.World); !errors.Is(err, ErrNoBackgrounds) {
		t.Fatalf("error = %v, want ErrNoBackgrounds", err)
	}
}

func TestNewSessionTilingNeedsTwoTiles(t *testing.T) {
	withMode(t, cfg.BackgroundTiling)
	cfg.Background.TileCount = 3

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePlayer(e, nil)
	factory.CreateCamera(e, 0)
	factory.CreateBackgrounds(e, testLevel(), nil)

	if _, err := NewSession(e.World); !errors.Is(err, ErrTilingTileCount) {
		t.Fatalf("error = %v, want ErrTilingTileCount", err)
	}
}

func TestSessionOrdersBackgrounds(t *testing.T) {
	withMode(t, cfg.BackgroundParallax)
	_, s := newTestSession(t)

	want := []string{"sky", "hills", "ground"}
	if len(s.Backgrounds) != len(want) {
		t.Fatalf("got %d backgrounds, want %d", len(s.Backgrounds), len(want))
	}
	for i, entry := range s.Backgrounds {
		if got := components.Background.Get(entry).Layer; got != want[i] {
			t.Errorf("background %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestDebugToggle(t *testing.T) {
	withMode(t, cfg.BackgroundParallax)
	_, s := newTestSession(t)
	input := components.Input.Get(s.Player)

	press(s, cfg.ActionToggleDebug)
	s.applyGlobalActions(input)
	if !s.debugEnabled() {
		t.Fatal("debug overlay not enabled after F1")
	}

	// Holding the key does not toggle again.
	press(s, cfg.ActionToggleDebug)
	s.applyGlobalActions(input)
	if !s.debugEnabled() {
		t.Fatal("debug overlay toggled while key held")
	}

	press(s)
	press(s, cfg.ActionToggleDebug)
	s.applyGlobalActions(input)
	if s.debugEnabled() {
		t.Fatal("debug overlay still enabled after second press")
	}
}
