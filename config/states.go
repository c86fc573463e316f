package config

// PlayerState is the player's movement state.
type PlayerState int

const (
	Idle PlayerState = iota
	Walking
	Running
	Jumping
	Falling
)

var stateNames = map[PlayerState]string{
	Idle:    "idle",
	Walking: "walking",
	Running: "running",
	Jumping: "jumping",
	Falling: "falling",
}

func (s PlayerState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Airborne reports whether the state's animation should stop on its last frame.
func (s PlayerState) Airborne() bool {
	return s == Jumping || s == Falling
}
