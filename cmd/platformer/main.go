// Package main is the entry point for the headless simulation runner
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabenesienh/2d-physics-game/internal/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "platformer",
		Short: "2D platformer physics simulation",
		Long: `platformer runs the platformer simulation without a window: it loads a level,
drives the player from scripted input and reports debug snapshots.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(cmd.ErrOrStderr())
		},
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newLevelsCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newRunsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
