package scenes

import (
	"testing"

	"github.com/automoto/sunset-runner/assets"
	cfg "github.com/automoto/sunset-runner/config"
)

func TestBuildWorld(t *testing.T) {
	level, err := assets.LoadLevel(cfg.Background.LevelPath)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	tests := []struct {
		mode        cfg.BackgroundMode
		backgrounds int
	}{
		{cfg.BackgroundParallax, len(level.Layers)},
		{cfg.BackgroundTiling, 2},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			prev := cfg.Background.Mode
			cfg.Background.Mode = tt.mode
			defer func() { cfg.Background.Mode = prev }()

			ps, err := newPlatformerScene(level, nil, nil)
			if err != nil {
				t.Fatalf("newPlatformerScene: %v", err)
			}
			if got := len(ps.session.Backgrounds); got != tt.backgrounds {
				t.Errorf("got %d backgrounds, want %d", got, tt.backgrounds)
			}
		})
	}
}

func TestBuildWorldWithoutTilingLayer(t *testing.T) {
	prev := cfg.Background.Mode
	cfg.Background.Mode = cfg.BackgroundTiling
	defer func() { cfg.Background.Mode = prev }()

	level := &assets.Level{
		Name: "flat.tmx",
		Layers: []assets.LayerSpec{
			{Name: "sky", ImagePath: "images/backgrounds/sky.png", Width: 320, Height: 240, Speed: 0.1, Scale: 2},
		},
	}
	if _, err := newPlatformerScene(level, nil, nil); err == nil {
		t.Fatal("expected an error for a tiling level without tiles")
	}
}
