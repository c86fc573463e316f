package systems

import (
	"fmt"

	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based text drawing
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	debugMargin     = 8
	debugLineHeight = 14
	debugHint       = "F1 overlay  arrows/AD nudge  up/W/space jump  shift run"
)

// DrawDebug prints the player's state machine and animation bookkeeping
// while the overlay is enabled (F1).
func (s *Session) DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !s.debugEnabled() || !fonts.Loaded(fonts.Mono) {
		return
	}

	lines := s.debugLines()
	face := fonts.Mono.Get()

	vector.FillRect(screen,
		float32(debugMargin/2), float32(debugMargin/2),
		220, float32(len(lines)*debugLineHeight+debugMargin),
		cfg.Debug.BoxColor, false)

	for i, line := range lines {
		text.Draw(screen, line, face, debugMargin, debugMargin+(i+1)*debugLineHeight, cfg.Debug.TextColor)
	}

	if fonts.Loaded(fonts.MonoSmall) {
		h := screen.Bounds().Dy()
		text.Draw(screen, debugHint, fonts.MonoSmall.Get(), debugMargin, h-debugMargin, cfg.Debug.TextColor)
	}
}

func (s *Session) debugLines() []string {
	player := components.Player.Get(s.Player)
	body := components.Object.Get(s.Player)
	anim := components.Animation.Get(s.Player)
	camera := components.Camera.Get(s.Camera)

	lines := []string{
		fmt.Sprintf("state: %s (%d changes)", player.State, player.Transitions),
		fmt.Sprintf("on ground: %t", player.OnGround),
		fmt.Sprintf("pos: %.1f, %.1f", body.X, body.Y),
		fmt.Sprintf("camera x: %.1f", camera.Position.X),
		fmt.Sprintf("background: %s", cfg.Background.Mode),
	}
	if anim.Animation != nil {
		lines = append(lines,
			fmt.Sprintf("frame: %d [%d,%d]", anim.Frame(), anim.Range.First, anim.Range.Last),
		)
	}
	if cfg.Background.Mode == cfg.BackgroundParallax {
		scroll := components.Scroll.Get(s.Camera)
		lines = append(lines, fmt.Sprintf("scroll: %.1f px/s", scroll.VelocityX))
	}
	return lines
}
