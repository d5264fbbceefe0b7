package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	golog "github.com/tochemey/goakt/v3/log"
)

const envPrefix = "FLOCK3D"

var rootCmd = &cobra.Command{
	Use:   "flock3d",
	Short: "3D flocking simulation",
	Long: `flock3d steers a population of agents through a bounded 3D world with the
classic alignment, cohesion and separation rules plus obstacle avoidance.
Run it headless, in a window, in the terminal or behind a websocket.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "scenario file (json or yaml), defaults are used when empty")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("agents", 0, "number of agents (overrides the scenario)")
	flags.Uint64("seed", 0, "random seed (overrides the scenario)")
	flags.String("neighborhood", "", "neighbor search: linear, grid or rtree (overrides the scenario)")
	flags.Int("workers", 0, "goroutines stepping the flock (overrides the scenario)")
	_ = viper.BindPFlags(flags)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig makes every flag settable as FLOCK3D_<FLAG> in the environment or a .env file.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the scenario and applies the flag and environment overrides.
func loadConfig() (*simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if file := viper.GetString("config"); file != "" {
		loaded, err := simulation.LoadConfig(file)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if viper.IsSet("agents") && viper.GetInt("agents") > 0 {
		cfg.NumAgents = viper.GetInt("agents")
	}
	if viper.IsSet("seed") && viper.GetUint64("seed") > 0 {
		cfg.Seed = viper.GetUint64("seed")
	}
	if n := viper.GetString("neighborhood"); n != "" {
		cfg.Neighborhood = n
	}
	if viper.IsSet("workers") && viper.GetInt("workers") > 0 {
		cfg.Workers = viper.GetInt("workers")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseLevel(s string) (golog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return golog.DebugLevel, nil
	case "info", "":
		return golog.InfoLevel, nil
	case "warn", "warning":
		return golog.WarningLevel, nil
	case "error":
		return golog.ErrorLevel, nil
	}
	return golog.InvalidLevel, fmt.Errorf("unknown log level %q", s)
}

func newLogger() (golog.Logger, error) {
	level, err := parseLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	return golog.New(level, os.Stdout), nil
}
