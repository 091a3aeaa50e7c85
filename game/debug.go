package game

import "github.com/gabenesienh/2d-physics-game/diag"

// updateDiagnostics reports a snapshot about once per second of game time
func (g *Game) updateDiagnostics(dt float64) {
	if g.cfg.Debug == 0 || g.cfg.Diagnostics == nil {
		return
	}

	g.debugTimer += dt / TickRate
	if g.debugTimer < 1 {
		return
	}
	g.debugTimer = 0

	g.cfg.Diagnostics.Report(g.Snapshot(dt))
}

// Snapshot describes the current state, limited to what the debug flags ask for
func (g *Game) Snapshot(dt float64) diag.Snapshot {
	flags := g.cfg.Debug
	s := diag.Snapshot{
		Tick:    g.tick,
		Flags:   flags,
		Objects: g.objects.Len(),
	}

	if flags.Has(diag.PerformanceInfo) {
		s.FPS = int(TickRate / clampDT(dt))
	}
	if flags.Has(diag.LevelInfo) && g.level != nil {
		s.Level = g.level.DisplayName
	}
	if flags.Has(diag.PlayerInfo) {
		if p, ok := g.Player(); ok {
			dir := p.Direction()
			s.Player = &diag.PlayerState{
				X:        p.X(),
				Y:        p.Y(),
				SpeedX:   p.SpeedX(),
				SpeedY:   p.SpeedY(),
				DirX:     dir.X,
				DirY:     dir.Y,
				Grounded: p.Grounded(),
				State:    p.State().String(),
			}
		}
	}
	return s
}
