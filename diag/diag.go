// Package diag carries periodic debug snapshots out of the simulation.
package diag

import "strings"

// Flags enables debug features
type Flags uint32

const (
	Configs         Flags = 1 << iota // log effective configuration on launch
	PerformanceInfo                   // report fps
	LevelInfo                         // report the loaded level
	PlayerInfo                        // report player position, speed and direction
	ShowHitboxes                      // renderers draw hitboxes
	ShowQuads                         // renderers draw quadtree nodes
	SubtickRenders                    // render after every spatial index rebuild
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Configs, "configs"},
	{PerformanceInfo, "performance"},
	{LevelInfo, "level"},
	{PlayerInfo, "player"},
	{ShowHitboxes, "hitboxes"},
	{ShowQuads, "quads"},
	{SubtickRenders, "subticks"},
}

// Has reports whether every flag in mask is set
func (f Flags) Has(mask Flags) bool {
	return mask != 0 && f&mask == mask
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseFlags turns a list of flag names into a mask, ignoring unknown names
func ParseFlags(names []string) Flags {
	var f Flags
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		for _, fn := range flagNames {
			if fn.name == n {
				f |= fn.flag
			}
		}
	}
	return f
}

// PlayerState describes the tracked player
type PlayerState struct {
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	SpeedX   float64 `msgpack:"spdx"`
	SpeedY   float64 `msgpack:"spdy"`
	DirX     float64 `msgpack:"dirx"`
	DirY     float64 `msgpack:"diry"`
	Grounded bool    `msgpack:"g"`
	State    string  `msgpack:"st"`
}

// Snapshot is one diagnostics report. Fields not covered by Flags are zero.
type Snapshot struct {
	Tick    uint64       `msgpack:"tick"`
	Flags   Flags        `msgpack:"flags"`
	FPS     int          `msgpack:"fps,omitempty"`
	Level   string       `msgpack:"lvl,omitempty"`
	Objects int          `msgpack:"objs"`
	Player  *PlayerState `msgpack:"plr,omitempty"`
}

// Sink receives snapshots
type Sink interface {
	Report(s Snapshot)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Snapshot)

func (f SinkFunc) Report(s Snapshot) { f(s) }

type multi []Sink

func (m multi) Report(s Snapshot) {
	for _, sink := range m {
		sink.Report(s)
	}
}

// Multi fans snapshots out to every non-nil sink
func Multi(sinks ...Sink) Sink {
	var m multi
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}
