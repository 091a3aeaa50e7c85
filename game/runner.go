package game

import (
	"context"
	"sync"
	"time"
)

// Renderer draws the game after each tick
type Renderer interface {
	Render(g *Game)
}

// RenderFunc adapts a function to Renderer
type RenderFunc func(g *Game)

func (f RenderFunc) Render(g *Game) { f(g) }

// Runner drives a Game at TickRate, feeding it input and rendering each tick
type Runner struct {
	game   *Game
	input  InputSource
	render Renderer

	mu      sync.Mutex
	stopped bool
	stop    chan struct{}
}

// NewRunner creates a runner. render may be nil for headless runs.
func NewRunner(g *Game, input InputSource, render Renderer) *Runner {
	if input == nil {
		input = InputFunc(func() Input { return Input{} })
	}
	return &Runner{
		game:   g,
		input:  input,
		render: render,
		stop:   make(chan struct{}),
	}
}

// Run ticks the game in real time until ctx is done, Stop is called or the
// game fails to start
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			dt := float64(now.Sub(last)) / float64(TickDuration)
			last = now
			if err := r.advance(dt); err != nil {
				return err
			}
		case <-r.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

// RunTicks advances the game n times as fast as possible, each tick counted
// as exactly one frame
func (r *Runner) RunTicks(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := r.advance(1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) advance(dt float64) error {
	if err := r.game.Advance(r.input.Poll(), dt); err != nil {
		return err
	}
	if r.render != nil {
		r.render.Render(r.game)
	}
	return nil
}

// Stop terminates Run, including a Run that has not started yet
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.stopped {
		r.stopped = true
		close(r.stop)
	}
}
