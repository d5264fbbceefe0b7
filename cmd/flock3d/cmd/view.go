package cmd

import (
	"context"

	"github.com/lao-tseu-is-alive/go-flock3d/internal/viewer"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open a window with the 3D flock and its tuning panel",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		ctx := context.Background()
		engine, err := simulation.Start(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer engine.Stop(ctx)
		return viewer.Run(ctx, cfg, engine)
	},
}
