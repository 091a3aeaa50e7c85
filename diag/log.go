package diag

import "github.com/sirupsen/logrus"

// LogSink writes snapshots as structured log lines
type LogSink struct {
	log logrus.FieldLogger
}

// NewLogSink creates a sink logging through log
func NewLogSink(log logrus.FieldLogger) *LogSink {
	return &LogSink{log: log.WithField("component", "diagnostics")}
}

// Report implements Sink
func (l *LogSink) Report(s Snapshot) {
	fields := logrus.Fields{"tick": s.Tick, "objects": s.Objects}

	if s.Flags.Has(PerformanceInfo) {
		fields["fps"] = s.FPS
	}
	if s.Flags.Has(LevelInfo) {
		fields["lvlname"] = s.Level
	}
	if s.Flags.Has(PlayerInfo) && s.Player != nil {
		fields["x"] = s.Player.X
		fields["y"] = s.Player.Y
		fields["spdx"] = s.Player.SpeedX
		fields["spdy"] = s.Player.SpeedY
		fields["dirx"] = s.Player.DirX
		fields["diry"] = s.Player.DirY
		fields["grounded"] = s.Player.Grounded
		fields["state"] = s.Player.State
	}

	l.log.WithFields(fields).Info("debug snapshot")
}
