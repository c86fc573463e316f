package systems

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/automoto/sunset-runner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	ErrNoPlayer        = errors.New("no player entity")
	ErrManyPlayers     = errors.New("more than one player entity")
	ErrNoCamera        = errors.New("no camera entity")
	ErrManyCameras     = errors.New("more than one camera entity")
	ErrNoBackgrounds   = errors.New("no background layers")
	ErrTilingTileCount = errors.New("tiling layer needs exactly two tiles")
)

// Session holds direct handles to the entities the frame pipeline drives.
// It is built once after the world is populated; systems never search the
// world for the player or camera again.
type Session struct {
	Player      *donburi.Entry
	Camera      *donburi.Entry
	Settings    *donburi.Entry
	Backgrounds []*donburi.Entry // back to front
	FrameTime   time.Duration
}

// NewSession resolves the entity handles and fails if the world does not
// contain exactly one player and exactly one camera.
func NewSession(world donburi.World) (*Session, error) {
	player, err := single(world, tags.Player, ErrNoPlayer, ErrManyPlayers)
	if err != nil {
		return nil, err
	}
	camera, err := single(world, tags.Camera, ErrNoCamera, ErrManyCameras)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Player:    player,
		Camera:    camera,
		FrameTime: cfg.C.FrameTime(),
	}

	if settings, ok := components.Settings.First(world); ok {
		s.Settings = settings
	}

	donburi.NewQuery(filter.Contains(tags.Background)).Each(world, func(e *donburi.Entry) {
		s.Backgrounds = append(s.Backgrounds, e)
	})
	if len(s.Backgrounds) == 0 {
		return nil, ErrNoBackgrounds
	}
	sort.SliceStable(s.Backgrounds, func(i, j int) bool {
		return components.Background.Get(s.Backgrounds[i]).Order < components.Background.Get(s.Backgrounds[j]).Order
	})
	if cfg.Background.Mode == cfg.BackgroundTiling {
		if n := len(s.tiles()); n != 2 {
			return nil, fmt.Errorf("%w: got %d", ErrTilingTileCount, n)
		}
	}
	return s, nil
}

func single(world donburi.World, tag donburi.IComponentType, none, many error) (*donburi.Entry, error) {
	query := donburi.NewQuery(filter.Contains(tag))
	switch n := query.Count(world); {
	case n == 0:
		return nil, none
	case n > 1:
		return nil, fmt.Errorf("%w: got %d", many, n)
	}
	entry, _ := query.First(world)
	return entry, nil
}

// Pipeline returns the update systems in the order they must run each frame:
// input, player state, physics, horizontal movement, animation, background,
// camera.
func (s *Session) Pipeline() []ecs.System {
	return []ecs.System{
		s.UpdateInput,
		s.UpdatePlayer,
		s.UpdatePhysics,
		s.UpdateMovement,
		s.UpdateAnimation,
		s.UpdateBackgrounds,
		s.UpdateCamera,
	}
}

func (s *Session) debugEnabled() bool {
	if s.Settings == nil {
		return false
	}
	return components.Settings.Get(s.Settings).Debug
}

// tiles returns the background entries that belong to the tiling layer.
func (s *Session) tiles() []*donburi.Entry {
	var tiles []*donburi.Entry
	for _, e := range s.Backgrounds {
		if components.Background.Get(e).Tiling {
			tiles = append(tiles, e)
		}
	}
	return tiles
}
