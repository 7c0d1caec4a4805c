package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/orders/sweep"
)

var sweepGrace time.Duration

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Auto-complete orders past their grace period",
	Long: `Run a single overdue pass: every pending order whose due time lies
more than the grace period in the past is marked completed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		n, err := s.SweepOverdue(sweepGrace)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Swept %d overdue orders\n", n)
		return nil
	},
}

func init() {
	sweepCmd.Flags().DurationVarP(&sweepGrace, "grace", "g", sweep.DefaultGrace, "how long past due before an order is auto-completed")
}
