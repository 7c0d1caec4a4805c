package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomypizza/orderdesk/orders/sweep"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the overdue sweeper until interrupted",
	Long: `Keep the store open and run the overdue pass on a fixed interval.
Interval and grace come from configuration:

  sweep.interval   how often to scan (default 1m)
  sweep.grace      how far past due before auto-completing (default 1h)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		sweeper := sweep.New(s,
			sweep.WithInterval(viper.GetDuration("sweep.interval")),
			sweep.WithGrace(viper.GetDuration("sweep.grace")),
			sweep.WithLogger(slog.Default()),
		)
		sweeper.Start()
		defer sweeper.Stop()

		fmt.Fprintln(cmd.OutOrStdout(), "Sweeper running, press Ctrl+C to stop")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		fmt.Fprintln(cmd.OutOrStdout(), "Shutting down")
		return nil
	},
}

func init() {
	viper.SetDefault("sweep.interval", sweep.DefaultInterval)
	viper.SetDefault("sweep.grace", sweep.DefaultGrace)
}
