package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/sunset-runner/assets"
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/systems"
	"github.com/automoto/sunset-runner/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs     *ecs.ECS
	session *systems.Session
	level   *assets.Level
}

// NewPlatformerScene loads the configured level and the player sheet and
// builds the world. Any missing asset is an error.
func NewPlatformerScene() (*PlatformerScene, error) {
	level, err := assets.LoadLevel(cfg.Background.LevelPath)
	if err != nil {
		return nil, err
	}

	images := make(map[string]*ebiten.Image, len(level.Layers))
	for _, layer := range level.Layers {
		img, err := assets.LoadImage(layer.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
		}
		images[layer.ImagePath] = img
	}

	sheet, err := assets.LoadImage(cfg.Player.SheetPath)
	if err != nil {
		return nil, fmt.Errorf("player sheet: %w", err)
	}
	if err := factory.ValidateSheet(sheet.Bounds().Dx(), sheet.Bounds().Dy()); err != nil {
		return nil, fmt.Errorf("player sheet %s: %w", cfg.Player.SheetPath, err)
	}

	return newPlatformerScene(level, images, sheet)
}

func newPlatformerScene(level *assets.Level, images map[string]*ebiten.Image, sheet *ebiten.Image) (*PlatformerScene, error) {
	ps := &PlatformerScene{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		level: level,
	}

	player := factory.CreatePlayer(ps.ecs, sheet)
	body := components.Object.Get(player)
	factory.CreateCamera(ps.ecs, body.X+body.W/2+cfg.Camera.OffsetX)
	factory.CreateSettings(ps.ecs, cfg.Debug.ShowOverlay)
	factory.CreateBackgrounds(ps.ecs, level, images)

	session, err := systems.NewSession(ps.ecs.World)
	if err != nil {
		return nil, fmt.Errorf("build world for %s: %w", level.Name, err)
	}
	ps.session = session
	session.SubscribeScroll(ps.ecs.World)

	for _, system := range session.Pipeline() {
		ps.ecs.AddSystem(system)
	}

	ps.ecs.AddRenderer(cfg.Default, session.DrawBackgrounds)
	ps.ecs.AddRenderer(cfg.Default, session.DrawPlayer)
	ps.ecs.AddRenderer(cfg.Default, session.DrawDebug)

	log.Info("level loaded",
		"level", level.Name,
		"title", level.Title,
		"layers", len(level.Layers),
		"backgrounds", len(session.Backgrounds),
		"mode", cfg.Background.Mode,
	)
	return ps, nil
}

func (ps *PlatformerScene) Update() {
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}
