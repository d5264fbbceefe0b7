package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Step the flock headless and print statistics",
	RunE:  runHeadless,
}

func init() {
	runCmd.Flags().Int("ticks", 600, "number of steps to simulate")
	runCmd.Flags().Int("report-every", 0, "print statistics every n steps, 0 only at the end")
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ticks, _ := cmd.Flags().GetInt("ticks")
	every, _ := cmd.Flags().GetInt("report-every")
	logger, err := newLogger()
	if err != nil {
		return err
	}

	world, err := simulation.NewWorld(cfg, 0)
	if err != nil {
		return err
	}
	obstacles, err := simulation.NewObstacles(cfg)
	if err != nil {
		return err
	}
	tuning := simulation.TuningFromConfig(cfg)
	query := obstacles.Within(tuning.PerceptionRadius)
	logger.Infof("running %d agents for %d ticks (%s, %d workers, %d obstacles)",
		cfg.NumAgents, ticks, cfg.Neighborhood, cfg.Workers, obstacles.Len())

	out := cmd.OutOrStdout()
	start := time.Now()
	for i := 1; i <= ticks; i++ {
		world.Step(tuning, query)
		if every > 0 && i%every == 0 && i < ticks {
			printStats(out, world.Frame(), flock.Measure(world))
		}
	}
	elapsed := time.Since(start)

	printStats(out, world.Frame(), flock.Measure(world))
	if ticks > 0 {
		color.New(color.FgHiBlack).Fprintf(out, "%d ticks in %v (%.2f ms/tick)\n",
			ticks, elapsed.Round(time.Millisecond), float64(elapsed.Microseconds())/1000/float64(ticks))
	}
	return nil
}

func printStats(w io.Writer, frame uint64, s flock.Stats) {
	label := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %d\n", label("frame"), frame)
	fmt.Fprintf(w, "  %s %d\n", label("agents       "), s.Agents)
	fmt.Fprintf(w, "  %s %.4f\n", label("mean speed   "), s.MeanSpeed)
	fmt.Fprintf(w, "  %s %.3f\n", label("polarization "), s.Polarization)
	fmt.Fprintf(w, "  %s %.2f\n", label("neighbors    "), s.MeanNeighbors)

	speedErr := color.GreenString("%.2e", s.MaxSpeedError)
	if s.MaxSpeedError > 1e-6 {
		speedErr = color.YellowString("%.2e", s.MaxSpeedError)
	}
	fmt.Fprintf(w, "  %s %s\n", label("speed error  "), speedErr)

	outside := color.GreenString("%d", s.OutOfBounds)
	if s.OutOfBounds > 0 {
		outside = color.RedString("%d", s.OutOfBounds)
	}
	fmt.Fprintf(w, "  %s %s\n", label("out of bounds"), outside)
}
