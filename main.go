package main

import (
	"image"

	"github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/fonts"
	"github.com/automoto/sunset-runner/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	scene, err := scenes.NewPlatformerScene()
	if err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level, err := log.ParseLevel(config.Debug.LogLevel)
	if err != nil {
		log.Warn("unknown log level, using info", "level", config.Debug.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	if config.C.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatal("startup failed", "err", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("game stopped", "err", err)
	}
}
