package factory

import (
	"github.com/automoto/sunset-runner/archetypes"
	"github.com/automoto/sunset-runner/assets"
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBackgrounds spawns the level's layers for the configured mode.
// Tiling mode spawns TileCount edge-to-edge tiles for each tiling layer and
// skips the rest. Parallax mode spawns one entity per layer. images is
// keyed by LayerSpec.ImagePath; a missing image leaves the layer undrawn.
func CreateBackgrounds(ecs *ecs.ECS, level *assets.Level, images map[string]*ebiten.Image) []*donburi.Entry {
	var entries []*donburi.Entry
	order := 0

	for _, layer := range level.Layers {
		img := images[layer.ImagePath]
		w := float64(layer.Width) * layer.Scale
		h := float64(layer.Height) * layer.Scale

		if cfg.Background.Mode == cfg.BackgroundTiling {
			if !layer.Tiling {
				continue
			}
			left := -float64(cfg.C.Width) / 2
			for i := 0; i < cfg.Background.TileCount; i++ {
				x := left + float64(i)*w
				entries = append(entries, createBackground(ecs, layer, img, order, x, layerY(layer, h), w, h, tags.ResolvTile))
				order++
			}
			continue
		}

		entries = append(entries, createBackground(ecs, layer, img, order, 0, layerY(layer, h), w, h, tags.ResolvBackground))
		order++
	}
	return entries
}

// layerY puts tiling layers under the player's feet and hangs the rest from
// the top of the screen.
func layerY(layer assets.LayerSpec, h float64) float64 {
	if layer.Tiling {
		return cfg.Player.GroundY - h
	}
	return float64(cfg.C.Height)/2 - h
}

func createBackground(ecs *ecs.ECS, layer assets.LayerSpec, img *ebiten.Image, order int, x, y, w, h float64, tag string) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tag)
	obj.Data = bg
	components.Object.SetValue(bg, components.ObjectData{Object: obj})
	components.Background.SetValue(bg, components.BackgroundData{
		Layer:  layer.Name,
		Order:  order,
		Speed:  layer.Speed,
		Scale:  layer.Scale,
		Tiling: layer.Tiling,
		Image:  img,
	})
	return bg
}
