package main

import (
	"github.com/spf13/cobra"

	"github.com/planbiir/ftracker/internal/tracker"
	"github.com/planbiir/ftracker/internal/training"
)

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc CODE VALUE...",
		Short: "Summarize a single sensor package",
		Long: `Summarize one workout from its activity code and positional values:

  SWM action duration_h weight_kg pool_length_m pool_count
  RUN action duration_h weight_kg
  WLK action duration_h weight_kg height_cm`,
		Example: `  ftracker calc RUN 15000 1 75
  ftracker calc WLK 9000 1 75 180 --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := training.ParseArgs(args[1:])
			if err != nil {
				return err
			}
			return a.run([]tracker.Package{{Code: args[0], Data: data}})
		},
	}
}
