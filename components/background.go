package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BackgroundData is one scrolling layer, or one tile of a tiling layer.
// Its rectangle lives in the Object component.
type BackgroundData struct {
	Layer  string
	Order  int     // draw order, back to front
	Speed  float64 // multiplier applied to the scroll velocity
	Scale  float64
	Tiling bool
	Image  *ebiten.Image
}

var Background = donburi.NewComponentType[BackgroundData]()

// ScrollData is the parallax driver state shared by all layers.
type ScrollData struct {
	VelocityX float64      // px per second before the layer multiplier
	TargetX   float64      // velocity the blend is heading for
	Blend     *gween.Tween // nil once the blend finished
}

var Scroll = donburi.NewComponentType[ScrollData]()
