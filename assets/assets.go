package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ErrNoLayers is returned for a level without any usable image layer.
var ErrNoLayers = errors.New("level has no image layers")

// LayerSpec describes one background layer read from a Tiled image layer.
type LayerSpec struct {
	Name      string
	ImagePath string  // path inside the embedded image FS
	Width     int     // unscaled image width
	Height    int     // unscaled image height
	Speed     float64 // parallax multiplier, "speed" property
	Scale     float64 // "scale" property, defaults to 1
	Tiling    bool    // "tiling" property: drawn as recycled world tiles
}

type Level struct {
	Name   string
	Title  string
	Layers []LayerSpec
}

type LevelLoader struct {
	levels fs.FS
	images fs.FS
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{levels: levelFS, images: imageFS}
}

// LoadLevel reads a .tmx file from the embedded level FS. Image layers are
// returned in draw order (back to front). Every referenced image must exist.
func (l *LevelLoader) LoadLevel(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.levels))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:  levelPath,
		Title: levelMap.Properties.GetString("title"),
	}

	dir := path.Dir(levelPath)
	for _, il := range levelMap.ImageLayers {
		if il.Image == nil || il.Image.Source == "" {
			continue
		}
		layer := LayerSpec{
			Name:      il.Name,
			ImagePath: path.Join(dir, il.Image.Source),
			Width:     il.Image.Width,
			Height:    il.Image.Height,
			Speed:     il.Properties.GetFloat("speed"),
			Scale:     il.Properties.GetFloat("scale"),
			Tiling:    il.Properties.GetBool("tiling"),
		}
		if layer.Scale <= 0 {
			layer.Scale = 1
		}
		if _, err := fs.Stat(l.images, layer.ImagePath); err != nil {
			return nil, fmt.Errorf("level %s layer %q: missing image %s: %w", levelPath, il.Name, layer.ImagePath, err)
		}
		level.Layers = append(level.Layers, layer)
	}

	if len(level.Layers) == 0 {
		return nil, fmt.Errorf("%s: %w", levelPath, ErrNoLayers)
	}
	return level, nil
}

type ImageLoader struct {
	images fs.FS
	cache  map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		images: imageFS,
		cache:  make(map[string]*ebiten.Image),
	}
}

// LoadImage decodes an embedded image, caching it by path.
func (l *ImageLoader) LoadImage(imgPath string) (*ebiten.Image, error) {
	if img, ok := l.cache[imgPath]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.images, imgPath)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", imgPath, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", imgPath, err)
	}

	l.cache[imgPath] = img
	return img, nil
}

var (
	imageLoader = NewImageLoader()
	levelLoader = NewLevelLoader()
)

func LoadImage(imgPath string) (*ebiten.Image, error) {
	return imageLoader.LoadImage(imgPath)
}

func LoadLevel(levelPath string) (*Level, error) {
	return levelLoader.LoadLevel(levelPath)
}
