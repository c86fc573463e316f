package components

import (
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the level and edge state of an action for this frame.
func (i *InputData) Action(action cfg.ActionID) ActionState {
	cur, prev := i.Current[action], i.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Push starts a new frame: the current state becomes the previous one and
// pressed replaces the current one.
func (i *InputData) Push(pressed [cfg.ActionCount]bool) {
	i.Previous = i.Current
	i.Current = pressed
}

var Input = donburi.NewComponentType[InputData]()
