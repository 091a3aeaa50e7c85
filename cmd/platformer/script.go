package main

import (
	"fmt"

	"github.com/gabenesienh/2d-physics-game/game"
	"github.com/gabenesienh/2d-physics-game/geom"
)

// scriptedInput stands in for a keyboard and mouse. It holds a walk
// direction, taps fire at a fixed interval and keeps the pointer at a fixed
// offset from the player's aim origin.
type scriptedInput struct {
	game      *game.Game
	walk      game.Button
	walking   bool
	fireEvery int
	aim       geom.Vector2
	polls     int
}

func newScriptedInput(g *game.Game, walk string, fireEvery int, aim geom.Vector2) (*scriptedInput, error) {
	s := &scriptedInput{game: g, fireEvery: fireEvery, aim: aim}

	switch walk {
	case "":
	case "left":
		s.walk, s.walking = game.ButtonLeft, true
	case "right":
		s.walk, s.walking = game.ButtonRight, true
	default:
		return nil, fmt.Errorf("unknown walk direction %q", walk)
	}

	// Fire is edge triggered, so it needs a release between presses
	if fireEvery == 1 || fireEvery < 0 {
		return nil, fmt.Errorf("fire interval must be 0 or at least 2, got %d", fireEvery)
	}
	return s, nil
}

func (s *scriptedInput) Poll() game.Input {
	s.polls++

	var in game.Input
	if s.walking {
		in = in.With(s.walk, true)
	}
	if s.fireEvery > 0 && s.polls%s.fireEvery == 0 {
		in = in.With(game.ButtonFire, true)
	}

	in.Pointer = s.aim
	if p, ok := s.game.Player(); ok {
		in.Pointer = p.AimOrigin().Add(s.aim)
	}
	return in
}
