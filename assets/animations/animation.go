package animations

import (
	"math"
	"time"
)

// Indices is the inclusive range of sprite sheet cells an animation cycles through.
type Indices struct {
	First int
	Last  int
}

func (i Indices) Valid() bool {
	return i.First >= 0 && i.First <= i.Last
}

func (i Indices) Contains(frame int) bool {
	return frame >= i.First && frame <= i.Last
}

// Len is the distance between the first and last cell, so a single-cell
// range has length 0.
func (i Indices) Len() int {
	return i.Last - i.First
}

// Clamp pulls frame into the range.
func (i Indices) Clamp(frame int) int {
	if frame < i.First {
		return i.First
	}
	if frame > i.Last {
		return i.Last
	}
	return frame
}

// Advance moves one cell forward. Reaching Last wraps back to First unless
// hold is set, in which case the animation stays on Last.
func Advance(frame int, r Indices, hold bool) int {
	if frame >= r.Last {
		if hold {
			return r.Last
		}
		return r.First
	}
	return frame + 1
}

// Remap translates frame from prev into next, keeping its relative position
// inside the range. Frames already inside next are returned untouched.
func Remap(frame int, prev, next Indices) int {
	if next.Contains(frame) {
		return frame
	}
	prevLen := prev.Len()
	if prevLen <= 0 {
		// Nothing to scale from.
		return next.First
	}
	fraction := float64(frame-prev.First) / float64(prevLen)
	mapped := int(math.Round(fraction*float64(next.Len()))) + next.First
	return next.Clamp(mapped)
}

// Timer is a repeating countdown. It resets itself every time it finishes.
type Timer struct {
	Period       time.Duration
	elapsed      time.Duration
	timesHandled int
}

func NewTimer(period time.Duration) *Timer {
	return &Timer{Period: period}
}

// Tick advances the timer by dt and returns how many times it finished.
// A non-positive period never fires.
func (t *Timer) Tick(dt time.Duration) int {
	t.timesHandled = 0
	if t.Period <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	t.timesHandled = int(t.elapsed / t.Period)
	t.elapsed %= t.Period
	return t.timesHandled
}

// JustFinished reports whether the last Tick completed at least one period.
func (t *Timer) JustFinished() bool {
	return t.timesHandled > 0
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

type Animation struct {
	Range  Indices
	Timer  *Timer
	Hold   bool // stay on Range.Last instead of wrapping
	frame  int
	Looped bool
}

func (a *Animation) Update(dt time.Duration) {
	steps := a.Timer.Tick(dt)
	for i := 0; i < steps; i++ {
		next := Advance(a.frame, a.Range, a.Hold)
		if next < a.frame {
			a.Looped = true
		}
		a.frame = next
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame places the animation on a specific cell, clamped into the range.
func (a *Animation) SetFrame(frame int) {
	a.frame = a.Range.Clamp(frame)
}

// SetRange switches to a new frame range, remapping the current frame so it
// stays inside it. Switching to the same range only updates Hold; an
// invalid range is ignored.
func (a *Animation) SetRange(next Indices, hold bool) {
	if !next.Valid() {
		return
	}
	a.Hold = hold
	if next == a.Range {
		return
	}
	a.frame = Remap(a.frame, a.Range, next)
	a.Range = next
	a.Looped = false
}

func NewAnimation(r Indices, period time.Duration) *Animation {
	return &Animation{
		Range: r,
		Timer: NewTimer(period),
		frame: r.First,
	}
}
