package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabenesienh/2d-physics-game/tiles"
)

func TestRunTicksRendersEveryTick(t *testing.T) {
	g, err := New(testConfig(emptyLevel()))
	require.NoError(t, err)

	polls, renders := 0, 0
	input := InputFunc(func() Input { polls++; return Input{} })
	r := NewRunner(g, input, RenderFunc(func(*Game) { renders++ }))

	require.NoError(t, r.RunTicks(context.Background(), 5))
	assert.Equal(t, 5, polls)
	assert.Equal(t, 5, renders)
	// The first advance launches the game
	assert.Equal(t, uint64(4), g.Tick())
}

func TestRunTicksStopsOnLaunchFailure(t *testing.T) {
	g, err := New(testConfig(nil))
	require.NoError(t, err)

	renders := 0
	r := NewRunner(g, nil, RenderFunc(func(*Game) { renders++ }))
	err = r.RunTicks(context.Background(), 3)
	require.ErrorIs(t, err, tiles.ErrLevelNotFound)
	assert.Zero(t, renders)
}

func TestRunTicksHonoursContext(t *testing.T) {
	g, err := New(testConfig(emptyLevel()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewRunner(g, nil, nil).RunTicks(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, PhaseLaunched, g.Phase())
}

func TestRunStops(t *testing.T) {
	g, err := New(testConfig(emptyLevel()))
	require.NoError(t, err)

	ticked := make(chan struct{}, 1)
	r := NewRunner(g, nil, RenderFunc(func(*Game) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}))

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("runner never ticked")
	}

	r.Stop()
	r.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunReturnsOnContextDone(t *testing.T) {
	g, err := New(testConfig(emptyLevel()))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, NewRunner(g, nil, nil).Run(ctx))
	assert.Equal(t, PhaseStarted, g.Phase())
}
