package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Background = donburi.NewTag().SetName("Background")
	Camera     = donburi.NewTag().SetName("Camera")
)

// Resolv tags for body rectangles
const (
	ResolvPlayer     = "Player"
	ResolvBackground = "background"
	ResolvTile       = "tile"
)
