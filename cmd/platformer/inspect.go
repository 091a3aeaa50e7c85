package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabenesienh/2d-physics-game/diag"
	"github.com/gabenesienh/2d-physics-game/internal/logger"
)

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE",
		Short: "Print the snapshots in a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open trace: %w", err)
			}
			defer f.Close()

			snaps, err := diag.ReadTrace(f)
			if err != nil {
				return fmt.Errorf("failed to read trace: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, s := range snaps {
				fmt.Fprintf(out, "tick=%d flags=%s objects=%d", s.Tick, s.Flags, s.Objects)
				if s.Flags.Has(diag.PerformanceInfo) {
					fmt.Fprintf(out, " fps=%d", s.FPS)
				}
				if s.Level != "" {
					fmt.Fprintf(out, " level=%q", s.Level)
				}
				if p := s.Player; p != nil {
					fmt.Fprintf(out, " pos=(%.2f, %.2f) spd=(%.2f, %.2f) grounded=%t state=%s",
						p.X, p.Y, p.SpeedX, p.SpeedY, p.Grounded, p.State)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs DATABASE",
		Short: "List the runs recorded in a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err != nil {
				return err
			}
			rec, err := diag.OpenRecorder(args[0], logger.Log)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer rec.Close()

			runs, err := rec.Runs()
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, run := range runs {
				fmt.Fprintf(out, "%s  snapshots=%d last_tick=%d\n", run.RunID, run.Snapshots, run.LastTick)
			}
			return nil
		},
	}
}
