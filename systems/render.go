package systems

import (
	"image/color"
	"math"

	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	playerGroundColor = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	playerAirColor    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

// DrawBackgrounds renders the layers back to front. Tiling layers are world
// tiles placed through the camera; parallax layers repeat across the screen
// from their scroll offset.
func (s *Session) DrawBackgrounds(e *ecs.ECS, screen *ebiten.Image) {
	camera := components.Camera.Get(s.Camera)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	for _, entry := range s.Backgrounds {
		bg := components.Background.Get(entry)
		if bg.Image == nil {
			continue
		}
		o := components.Object.Get(entry)

		if cfg.Background.Mode == cfg.BackgroundTiling {
			x, y := camera.ToScreen(o.X, o.Top(), width, height)
			drawLayerImage(screen, bg, x, y)
			continue
		}

		_, y := camera.ToScreen(0, o.Top(), width, height)
		for _, x := range repeatOffsets(o.X, o.W, float64(width)) {
			drawLayerImage(screen, bg, x, y)
		}
	}
}

// repeatOffsets returns the screen x positions needed to cover a screen of
// width screenW with copies of an image of width w scrolled by offset.
func repeatOffsets(offset, w, screenW float64) []float64 {
	if w <= 0 {
		return nil
	}
	start := math.Mod(offset, w)
	if start > 0 {
		start -= w
	}
	var xs []float64
	for x := start; x < screenW; x += w {
		xs = append(xs, x)
	}
	return xs
}

func drawLayerImage(screen *ebiten.Image, bg *components.BackgroundData, x, y float64) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(bg.Scale, bg.Scale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(bg.Image, drawOp)
}

// DrawPlayer renders the player's current sheet cell at its body rectangle.
func (s *Session) DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	drawAnimated(s.Player, components.Camera.Get(s.Camera), screen)
}

func drawAnimated(entry *donburi.Entry, camera *components.CameraData, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	o := components.Object.Get(entry)
	anim := components.Animation.Get(entry)
	x, y := camera.ToScreen(o.X, o.Top(), width, height)

	img := anim.CurrentImage()
	if img == nil {
		// No sheet loaded: draw the body rectangle instead.
		c := playerGroundColor
		if entry.HasComponent(components.Player) && !components.Player.Get(entry).OnGround {
			c = playerAirColor
		}
		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), c, false)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(o.W/float64(anim.FrameWidth), o.H/float64(anim.FrameHeight))
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}
