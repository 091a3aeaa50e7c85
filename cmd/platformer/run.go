package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gabenesienh/2d-physics-game/diag"
	"github.com/gabenesienh/2d-physics-game/game"
	"github.com/gabenesienh/2d-physics-game/geom"
	"github.com/gabenesienh/2d-physics-game/internal/logger"
)

type runOptions struct {
	configPath string
	levelsPath string
	level      string
	debug      []string

	ticks    int
	realtime bool

	walk      string
	fireEvery int
	aimX      float64
	aimY      float64

	tracePath  string
	recordPath string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation",
		Long: `Run loads the start level, spawns the player and advances the simulation,
either for a fixed number of ticks as fast as possible or in real time until
interrupted. The player is driven by scripted input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML game configuration file")
	f.StringVar(&opts.levelsPath, "levels", "", "YAML file with extra levels")
	f.StringVar(&opts.level, "level", "", "start level, overrides the configuration")
	f.StringSliceVar(&opts.debug, "debug", nil, "debug flags: configs, performance, level, player, hitboxes, quads, subticks")
	f.IntVar(&opts.ticks, "ticks", 600, "ticks to simulate, ignored with --realtime")
	f.BoolVar(&opts.realtime, "realtime", false, "tick at 60 Hz until interrupted")
	f.StringVar(&opts.walk, "walk", "", "hold a walk button: left or right")
	f.IntVar(&opts.fireEvery, "fire-every", 0, "tap fire every N ticks, 0 to never fire")
	f.Float64Var(&opts.aimX, "aim-x", 100, "pointer offset from the player's aim origin")
	f.Float64Var(&opts.aimY, "aim-y", 0, "pointer offset from the player's aim origin")
	f.StringVar(&opts.tracePath, "trace", "", "write debug snapshots to this msgpack file")
	f.StringVar(&opts.recordPath, "record", "", "record debug snapshots in this SQLite database")
	return cmd
}

func runSimulation(cmd *cobra.Command, opts *runOptions) error {
	log := logger.Component("run")

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(opts.levelsPath)
	if err != nil {
		return err
	}
	cfg.Levels = cat
	if opts.level != "" {
		cfg.StartLevel = opts.level
	}
	cfg.Debug |= diag.ParseFlags(opts.debug)
	cfg.Logger = logger.Component("game")

	if (opts.tracePath != "" || opts.recordPath != "") && cfg.Debug == 0 {
		cfg.Debug = diag.PerformanceInfo | diag.LevelInfo | diag.PlayerInfo
		log.WithField("debug", cfg.Debug.String()).Info("enabling snapshots for output")
	}

	sinks := []diag.Sink{diag.NewLogSink(logger.Component("diag"))}
	if opts.tracePath != "" {
		f, err := os.Create(opts.tracePath)
		if err != nil {
			return fmt.Errorf("failed to create trace: %w", err)
		}
		defer f.Close()
		sinks = append(sinks, diag.NewTraceWriter(f, logger.Log))
	}
	if opts.recordPath != "" {
		rec, err := diag.OpenRecorder(opts.recordPath, logger.Log)
		if err != nil {
			return fmt.Errorf("failed to open recorder: %w", err)
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.WithError(err).Error("failed to close recorder")
			}
		}()
		log.WithField("run_id", rec.RunID()).Info("recording snapshots")
		sinks = append(sinks, rec)
	}
	cfg.Diagnostics = diag.Multi(sinks...)

	if cfg.Debug.Has(diag.SubtickRenders) {
		sub := logger.Component("subtick")
		cfg.OnSubtick = func(g *game.Game) {
			sub.WithFields(logrus.Fields{
				"tick":    g.Tick(),
				"objects": g.ObjectsTree().Len(),
			}).Trace("objects index rebuilt")
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	input, err := newScriptedInput(g, opts.walk, opts.fireEvery, geom.Vec(opts.aimX, opts.aimY))
	if err != nil {
		return err
	}
	runner := game.NewRunner(g, input, newLogRenderer(logger.Component("render"), cfg.Debug))

	if opts.realtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.Info("running in real time, interrupt to stop")
		err = runner.Run(ctx)
	} else {
		err = runner.RunTicks(cmd.Context(), opts.ticks)
	}
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), g)
	return nil
}

func printSummary(w io.Writer, g *game.Game) {
	level := "-"
	if lvl := g.Level(); lvl != nil {
		level = lvl.DisplayName
	}
	fmt.Fprintf(w, "level=%s ticks=%d objects=%d", level, g.Tick(), len(g.Objects()))
	if p, ok := g.Player(); ok {
		fmt.Fprintf(w, " player=(%.2f, %.2f) grounded=%t", p.X(), p.Y(), p.Grounded())
	} else {
		fmt.Fprint(w, " player=dead")
	}
	fmt.Fprintln(w)
}
