package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-flock3d/internal/termview"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Watch the flock from above in the terminal",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// the actor system logs would tear the screen apart
		engine, err := simulation.Start(ctx, cfg, nil)
		if err != nil {
			return err
		}
		defer engine.Stop(context.Background())

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("failed to initialize screen: %w", err)
		}
		defer screen.Fini()
		return termview.New(screen, cfg, engine).Run(ctx, engine.Snapshots)
	},
}
