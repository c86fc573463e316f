package config

import "github.com/automoto/sunset-runner/assets/animations"

// PlayerAnimations maps a player state to its cells on the player sheet
// (5 columns x 6 rows). Idle has no range of its own and keeps whatever
// range was active before it.
var PlayerAnimations = map[PlayerState]animations.Indices{
	Walking: {First: 0, Last: 11},
	Running: {First: 12, Last: 19},
	Jumping: {First: 20, Last: 24},
	Falling: {First: 25, Last: 29},
}

// InitialAnimation is the range shown before the first transition.
var InitialAnimation = PlayerAnimations[Walking]

// AnimationFor returns the range for a state and whether it has one.
func AnimationFor(state PlayerState) (animations.Indices, bool) {
	r, ok := PlayerAnimations[state]
	return r, ok
}
