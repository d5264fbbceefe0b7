package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lao-tseu-is-alive/go-flock3d/internal/vizserver"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the flock and stream its snapshots over a websocket",
	RunE:  serve,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Bool("access-log", true, "write an access log line per request")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := simulation.Start(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer engine.Stop(context.Background())

	opts := []vizserver.Option{vizserver.WithLogger(logger)}
	if accessLog, _ := cmd.Flags().GetBool("access-log"); accessLog {
		opts = append(opts, vizserver.WithAccessLog(os.Stdout))
	}
	return vizserver.NewServer(engine, cfg.TickRate, opts...).Run(ctx, viper.GetString("addr"))
}
