package components

import (
	cfg "github.com/automoto/sunset-runner/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	OnGround      bool
	State         cfg.PlayerState
	PreviousState cfg.PlayerState // state at the start of the current frame
	Transitions   int             // number of state changes since spawn
}

// SetState switches state and reports whether it actually changed.
func (p *PlayerData) SetState(state cfg.PlayerState) bool {
	if p.State == state {
		return false
	}
	p.State = state
	p.Transitions++
	return true
}

// HorizontalSpeed is the per-frame displacement driven by the current state.
func (p *PlayerData) HorizontalSpeed() float64 {
	switch p.State {
	case cfg.Walking, cfg.Jumping, cfg.Falling:
		return cfg.Player.WalkSpeed
	case cfg.Running:
		return cfg.Player.RunSpeed
	}
	return 0
}

var Player = donburi.NewComponentType[PlayerData]()
