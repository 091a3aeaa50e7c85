package diag

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(tick uint64, flags Flags) Snapshot {
	return Snapshot{
		Tick:    tick,
		Flags:   flags,
		FPS:     60,
		Level:   "Test",
		Objects: 3,
		Player: &PlayerState{
			X: 480, Y: 320, SpeedX: 3, SpeedY: 0, DirX: 1, DirY: 0,
			Grounded: true, State: "walk",
		},
	}
}

func TestFlags(t *testing.T) {
	f := PerformanceInfo | PlayerInfo
	assert.True(t, f.Has(PlayerInfo))
	assert.False(t, f.Has(LevelInfo))
	assert.False(t, f.Has(0))
	assert.Equal(t, "performance|player", f.String())
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, Flags(0b0000010), PerformanceInfo)
	assert.Equal(t, Flags(0b1000000), SubtickRenders)
	assert.Equal(t, LevelInfo|ShowQuads, ParseFlags([]string{" Level", "quads", "bogus"}))
}

func TestMultiSkipsNil(t *testing.T) {
	var got []uint64
	sink := Multi(nil, SinkFunc(func(s Snapshot) { got = append(got, s.Tick) }), nil)
	sink.Report(Snapshot{Tick: 4})
	assert.Equal(t, []uint64{4}, got)
}

func TestLogSinkGatesFields(t *testing.T) {
	logger, hook := test.NewNullLogger()

	sink := NewLogSink(logger)
	sink.Report(sampleSnapshot(1, LevelInfo))

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Test", entry.Data["lvlname"])
	assert.NotContains(t, entry.Data, "fps")
	assert.NotContains(t, entry.Data, "x")

	sink.Report(sampleSnapshot(2, PerformanceInfo|PlayerInfo))
	entry = hook.LastEntry()
	assert.Equal(t, 60, entry.Data["fps"])
	assert.Equal(t, 480.0, entry.Data["x"])
	assert.Equal(t, "walk", entry.Data["state"])
	assert.NotContains(t, entry.Data, "lvlname")
}

func TestTraceRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := test.NewNullLogger()
	tw := NewTraceWriter(&buf, logger)

	tw.Report(sampleSnapshot(60, PlayerInfo))
	tw.Report(Snapshot{Tick: 120, Flags: LevelInfo, Level: "Test"})
	assert.Equal(t, 2, tw.Written())

	snaps, err := ReadTrace(&buf)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, uint64(60), snaps[0].Tick)
	require.NotNil(t, snaps[0].Player)
	assert.Equal(t, 480.0, snaps[0].Player.X)
	assert.True(t, snaps[0].Player.Grounded)
	assert.Nil(t, snaps[1].Player)
	assert.Equal(t, "Test", snaps[1].Level)
}

func TestRecorderPersistsSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag.db")
	logger, _ := test.NewNullLogger()

	rec, err := OpenRecorder(path, logger)
	require.NoError(t, err)
	runID := rec.RunID()
	assert.NotEmpty(t, runID)

	for i := uint64(1); i <= 3; i++ {
		rec.Report(sampleSnapshot(i*60, PerformanceInfo|LevelInfo|PlayerInfo))
	}
	require.NoError(t, rec.Close())

	reopened, err := OpenRecorder(path, logger)
	require.NoError(t, err)
	defer reopened.Close()
	assert.NotEqual(t, runID, reopened.RunID())

	runs, err := reopened.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, 3, runs[0].Snapshots)
	assert.Equal(t, uint64(180), runs[0].LastTick)
}

func TestRecorderDropsAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag.db")
	logger, hook := test.NewNullLogger()

	rec, err := OpenRecorder(path, logger)
	require.NoError(t, err)
	require.NoError(t, rec.Close())

	rec.Report(sampleSnapshot(60, PlayerInfo))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "recorder closed, dropping snapshot", entry.Message)
	assert.Equal(t, uint64(60), entry.Data["tick"])
}
