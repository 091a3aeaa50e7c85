package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLevelsCmd() *cobra.Command {
	var levelsPath string
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the available levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(levelsPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range cat.Names() {
				lvl, err := cat.Load(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s %-20q %3d tiles", name, lvl.DisplayName, len(lvl.Tiles))
				if b, ok := lvl.Bounds(); ok {
					fmt.Fprintf(out, "  [%g,%g .. %g,%g]", b.LeftX(), b.TopY(), b.RightX(), b.BottomY())
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&levelsPath, "levels", "", "YAML file with extra levels")
	return cmd
}
