package game

import "github.com/gabenesienh/2d-physics-game/geom"

// Button is a logical input button
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonFire
	NumButtons
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonFire:
		return "fire"
	}
	return "unknown"
}

// Input is the state of every button and the pointer for one tick
type Input struct {
	Buttons [NumButtons]bool
	Pointer geom.Vector2 // screen coordinates
}

// Held reports whether b is down
func (in Input) Held(b Button) bool {
	return b < NumButtons && in.Buttons[b]
}

// Pressed reports whether b went down since prev
func (in Input) Pressed(b Button, prev Input) bool {
	return in.Held(b) && !prev.Held(b)
}

// With returns a copy of in with b set to held
func (in Input) With(b Button, held bool) Input {
	if b < NumButtons {
		in.Buttons[b] = held
	}
	return in
}

// InputSource is polled once per tick for the current input
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }
