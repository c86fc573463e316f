package systems

import (
	"testing"
	"time"

	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/yohamta/donburi/features/math"
)

func TestRecycleLeftmostOnce(t *testing.T) {
	withMode(t, cfg.BackgroundTiling)
	_, s := newTestSession(t)

	tiles := s.tiles()
	if len(tiles) != 2 {
		t.Fatalf("got %d tiles, want 2", len(tiles))
	}
	first := components.Object.Get(tiles[0])
	second := components.Object.Get(tiles[1])
	w := first.W
	first.X, second.X = 0, w

	if recycleLeftmost(tiles, w-1) {
		t.Fatal("recycled before the right edge crossed the threshold")
	}
	if first.X != 0 {
		t.Fatalf("first tile moved to %v", first.X)
	}

	if !recycleLeftmost(tiles, w) {
		t.Fatal("did not recycle once the right edge crossed the threshold")
	}
	if first.X != 2*w {
		t.Fatalf("first tile x = %v, want %v", first.X, 2*w)
	}

	if recycleLeftmost(tiles, w) {
		t.Fatal("recycled a second time for the same threshold")
	}
	if first.X != 2*w || second.X != w {
		t.Errorf("tiles at %v and %v, want %v and %v", first.X, second.X, 2*w, w)
	}
}

func TestTilingScrollsAndRecycles(t *testing.T) {
	withMode(t, cfg.BackgroundTiling)
	e, s := newTestSession(t)

	tiles := s.tiles()
	first := components.Object.Get(tiles[0])
	second := components.Object.Get(tiles[1])
	x0, x1 := first.X, second.X

	s.UpdateBackgrounds(e)
	dx := cfg.Background.TileScrollSpeed * s.FrameTime.Seconds()
	if !almostEqual(first.X, x0+dx) || !almostEqual(second.X, x1+dx) {
		t.Fatalf("tiles at %v and %v, want %v and %v", first.X, second.X, x0+dx, x1+dx)
	}

	// Scroll until the first tile has been recycled behind the second.
	for i := 0; i < 2000 && first.X < second.X; i++ {
		s.UpdateBackgrounds(e)
	}
	if first.X < second.X {
		t.Fatal("first tile never recycled")
	}
	if !almostEqual(first.X-second.X, first.W) {
		t.Errorf("tiles are %v apart after recycling, want %v", first.X-second.X, first.W)
	}
}

func TestScrollSpeedFor(t *testing.T) {
	tests := []struct {
		state cfg.PlayerState
		want  float64
	}{
		{cfg.Idle, 0},
		{cfg.Walking, cfg.Background.WalkScrollSpeed},
		{cfg.Jumping, cfg.Background.WalkScrollSpeed},
		{cfg.Falling, cfg.Background.WalkScrollSpeed},
		{cfg.Running, cfg.Background.RunScrollSpeed},
	}
	for _, tt := range tests {
		if got := scrollSpeedFor(tt.state); got != tt.want {
			t.Errorf("scrollSpeedFor(%s) = %v, want %v", tt.state, got, tt.want)
		}
	}
	if cfg.Background.RunScrollSpeed <= cfg.Background.WalkScrollSpeed {
		t.Error("running must scroll faster than walking")
	}
}

func TestBlendScroll(t *testing.T) {
	withMode(t, cfg.BackgroundParallax)
	dt := time.Second / 60

	t.Run("instant without blend", func(t *testing.T) {
		cfg.Background.SpeedBlend = 0
		scroll := &components.ScrollData{}
		if got := blendScroll(scroll, 120, dt); got != 120 {
			t.Errorf("speed = %v, want 120", got)
		}
		if scroll.Blend != nil {
			t.Error("blend left running")
		}
	})

	t.Run("eases to target", func(t *testing.T) {
		cfg.Background.SpeedBlend = 250 * time.Millisecond
		scroll := &components.ScrollData{}

		first := blendScroll(scroll, 240, dt)
		if first <= 0 || first >= 240 {
			t.Fatalf("first blended speed = %v, want between 0 and 240", first)
		}

		for i := 0; i < 30; i++ {
			blendScroll(scroll, 240, dt)
		}
		if scroll.VelocityX != 240 || scroll.Blend != nil {
			t.Errorf("speed = %v blend = %v after blend time, want 240 and no blend", scroll.VelocityX, scroll.Blend)
		}

		// A new target starts from the current speed.
		next := blendScroll(scroll, 120, dt)
		if next >= 240 || next <= 120 {
			t.Errorf("speed = %v, want between 120 and 240", next)
		}
	})
}

func TestParallaxMovesLayersBySpeed(t *testing.T) {
	withMode(t, cfg.BackgroundParallax)
	cfg.Background.SpeedBlend = 0
	e, s := newTestSession(t)
	components.Player.Get(s.Player).State = cfg.Walking

	start := make([]float64, len(s.Backgrounds))
	for i, entry := range s.Backgrounds {
		start[i] = components.Object.Get(entry).X
	}

	s.UpdateBackgrounds(e)

	for i, entry := range s.Backgrounds {
		bg := components.Background.Get(entry)
		want := start[i] - cfg.Background.WalkScrollSpeed*bg.Speed*s.FrameTime.Seconds()
		if got := components.Object.Get(entry).X; !almostEqual(got, want) {
			t.Errorf("%s x = %v, want %v", bg.Layer, got, want)
		}
	}
}

func TestParallaxIdleStaysStill(t *testing.T) {
	withMode(t, cfg.BackgroundParallax)
	cfg.Background.SpeedBlend = 0
	e, s := newTestSession(t)

	for i := 0; i < 10; i++ {
		s.UpdateBackgrounds(e)
	}
	for _, entry := range s.Backgrounds {
		if x := components.Object.Get(entry).X; x != 0 {
			t.Errorf("%s moved to %v while idle", components.Background.Get(entry).Layer, x)
		}
	}
}

func TestScrollEventScalesPerLayer(t *testing.T) {
	withMode(t, cfg.BackgroundParallax)
	e, s := newTestSession(t)

	ScrollEvent.Publish(e.World, ScrollEventData{Velocity: math.Vec2{X: -10}, DT: time.Second})
	ScrollEvent.ProcessEvents(e.World)

	for _, entry := range s.Backgrounds {
		bg := components.Background.Get(entry)
		if got, want := components.Object.Get(entry).X, -10*bg.Speed; !almostEqual(got, want) {
			t.Errorf("%s x = %v, want %v", bg.Layer, got, want)
		}
	}
}

func TestRepeatOffsetsCoverScreen(t *testing.T) {
	tests := []struct {
		offset float64
		want   []float64
	}{
		{0, []float64{0, 100, 200}},
		{-30, []float64{-30, 70, 170, 270}},
		{30, []float64{-70, 30, 130, 230}},
		{-250, []float64{-50, 50, 150, 250}},
	}
	for _, tt := range tests {
		got := repeatOffsets(tt.offset, 100, 300)
		if len(got) != len(tt.want) {
			t.Errorf("repeatOffsets(%v) = %v, want %v", tt.offset, got, tt.want)
			continue
		}
		for i := range got {
			if !almostEqual(got[i], tt.want[i]) {
				t.Errorf("repeatOffsets(%v) = %v, want %v", tt.offset, got, tt.want)
				break
			}
		}
	}
}
