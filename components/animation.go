package components

import (
	"image"

	"github.com/automoto/sunset-runner/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	*animations.Animation
	Sheet        *ebiten.Image
	CachedFrames map[int]*ebiten.Image // sub-images keyed by sheet index
	FrameWidth   int
	FrameHeight  int
	Columns      int
}

// CellRect is the source rectangle of a sheet cell. Cells are numbered
// left-to-right, top-to-bottom.
func (a *AnimationData) CellRect(index int) image.Rectangle {
	cols := a.Columns
	if cols <= 0 {
		cols = 1
	}
	sx := (index % cols) * a.FrameWidth
	sy := (index / cols) * a.FrameHeight
	return image.Rect(sx, sy, sx+a.FrameWidth, sy+a.FrameHeight)
}

// CurrentImage returns the sub-image for the displayed frame, slicing and
// caching it on first use.
func (a *AnimationData) CurrentImage() *ebiten.Image {
	if a.Sheet == nil || a.Animation == nil {
		return nil
	}
	frame := a.Frame()
	if img, ok := a.CachedFrames[frame]; ok {
		return img
	}
	img := a.Sheet.SubImage(a.CellRect(frame)).(*ebiten.Image)
	if a.CachedFrames == nil {
		a.CachedFrames = make(map[int]*ebiten.Image)
	}
	a.CachedFrames[frame] = img
	return img
}

var Animation = donburi.NewComponentType[AnimationData]()
