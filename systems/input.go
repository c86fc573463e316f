package systems

import (
	"github.com/automoto/sunset-runner/components"
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the player's input buffer.
// Must run BEFORE UpdatePlayer in the system order.
func (s *Session) UpdateInput(e *ecs.ECS) {
	input := components.Input.Get(s.Player)
	input.Push(pollActions())
	s.applyGlobalActions(input)
}

// applyGlobalActions handles actions that are not player movement.
func (s *Session) applyGlobalActions(input *components.InputData) {
	if s.Settings == nil || !input.Action(cfg.ActionToggleDebug).JustPressed {
		return
	}
	settings := components.Settings.Get(s.Settings)
	settings.Debug = !settings.Debug
	log.Debug("debug overlay toggled", "visible", settings.Debug)
}

func pollActions() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	return pressed
}
