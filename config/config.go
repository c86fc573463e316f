package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	TPS       int
}

// FrameTime is the simulated time of one update tick.
func (c *Config) FrameTime() time.Duration {
	if c.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TPS)
}

// PlayerConfig contains all player-related configuration values.
// World space is y-up: larger Y is higher on screen.
type PlayerConfig struct {
	// Vertical movement
	GroundY    float64 // feet height when standing
	JumpHeight float64 // ceiling above GroundY where a held jump turns into a fall
	JumpSpeed  float64 // upward displacement per frame while the jump is held
	Gravity    float64 // downward displacement per frame while airborne

	// Horizontal movement (per frame)
	WalkSpeed  float64
	RunSpeed   float64
	NudgeSpeed float64 // extra delta from the left/right keys

	// Sprite sheet
	SheetPath       string
	FrameWidth      int
	FrameHeight     int
	SheetColumns    int
	SheetRows       int
	Scale           float64
	AnimationPeriod time.Duration
	StartX          float64
}

// BackgroundMode picks which background driver runs.
type BackgroundMode int

const (
	// BackgroundTiling recycles the leftmost of two tiles behind the other.
	BackgroundTiling BackgroundMode = iota
	// BackgroundParallax scrolls every layer by a state-dependent velocity.
	BackgroundParallax
)

func (m BackgroundMode) String() string {
	switch m {
	case BackgroundTiling:
		return "tiling"
	case BackgroundParallax:
		return "parallax"
	}
	return "unknown"
}

// BackgroundConfig contains background driver configuration
type BackgroundConfig struct {
	Mode      BackgroundMode
	LevelPath string

	// Tiling
	TileCount        int     // tiles spawned per tiling layer
	TileScrollSpeed  float64 // px per second, negative scrolls left
	RecycleThreshold float64 // camera-relative x the leftmost tile's right edge must pass

	// Parallax (px per second before the per-layer multiplier)
	WalkScrollSpeed float64
	RunScrollSpeed  float64
	SpeedBlend      time.Duration // 0 switches speed instantly
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowX bool
	OffsetX float64 // player is kept this far right of the screen center
}

// DebugConfig contains debug overlay and logging defaults
type DebugConfig struct {
	ShowOverlay bool
	LogLevel    string
	TextColor   color.RGBA
	BoxColor    color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Background BackgroundConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:     640,
		Height:    480,
		Title:     "Platformer",
		Resizable: false,
		TPS:       60,
	}

	Player = PlayerConfig{
		GroundY:    -160,
		JumpHeight: 102,
		JumpSpeed:  8,
		Gravity:    2.5,

		WalkSpeed:  2,
		RunSpeed:   4,
		NudgeSpeed: 2,

		SheetPath:       "images/player.png",
		FrameWidth:      16,
		FrameHeight:     16,
		SheetColumns:    5,
		SheetRows:       6,
		Scale:           3,
		AnimationPeriod: 100 * time.Millisecond,
		StartX:          0,
	}

	Background = BackgroundConfig{
		Mode:      BackgroundParallax,
		LevelPath: "levels/sunset.tmx",

		TileCount:        2,
		TileScrollSpeed:  -100,
		RecycleThreshold: -float64(C.Width) / 2,

		// Matches the player's walk/run displacement at 60 TPS so the ground
		// layer (multiplier 1) stays under the player's feet.
		WalkScrollSpeed: 120,
		RunScrollSpeed:  240,
		SpeedBlend:      250 * time.Millisecond,
	}

	Camera = CameraConfig{
		FollowX: true,
		OffsetX: 0,
	}

	Debug = DebugConfig{
		ShowOverlay: false,
		LogLevel:    "info",
		TextColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BoxColor:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}
}
