package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world-space point drawn at the center of the screen.
type CameraData struct {
	Position math.Vec2
}

// ToScreen converts a world-space point to screen pixels for a screen of
// the given size. World y grows upward, screen y grows downward.
func (c *CameraData) ToScreen(x, y float64, width, height int) (float64, float64) {
	sx := x - c.Position.X + float64(width)/2
	sy := float64(height)/2 - (y - c.Position.Y)
	return sx, sy
}

var Camera = donburi.NewComponentType[CameraData]()
