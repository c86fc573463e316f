package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/sunset-runner/assets/animations"
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimation builds the player's animation component over sheet.
// A nil sheet is allowed; frames are still selected but nothing is drawn
// from the sheet.
func GenerateAnimation(sheet *ebiten.Image) *components.AnimationData {
	return &components.AnimationData{
		Animation:    animations.NewAnimation(cfg.InitialAnimation, cfg.Player.AnimationPeriod),
		Sheet:        sheet,
		CachedFrames: make(map[int]*ebiten.Image),
		FrameWidth:   cfg.Player.FrameWidth,
		FrameHeight:  cfg.Player.FrameHeight,
		Columns:      cfg.Player.SheetColumns,
	}
}

var ErrSheetSize = errors.New("player sheet does not match the configured grid")

// ValidateSheet checks a sheet of the given pixel size against the configured
// cell grid and makes sure every state's range fits inside the grid.
func ValidateSheet(width, height int) error {
	cols, rows := cfg.Player.SheetColumns, cfg.Player.SheetRows
	wantW, wantH := cols*cfg.Player.FrameWidth, rows*cfg.Player.FrameHeight
	if width != wantW || height != wantH {
		return fmt.Errorf("%w: got %dx%d, want %dx%d (%d columns, %d rows)",
			ErrSheetSize, width, height, wantW, wantH, cols, rows)
	}
	for state, r := range cfg.PlayerAnimations {
		if !r.Valid() || r.Last >= cols*rows {
			return fmt.Errorf("%w: %s range [%d,%d] outside %d cells",
				ErrSheetSize, state, r.First, r.Last, cols*rows)
		}
	}
	return nil
}
