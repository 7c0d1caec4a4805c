package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/orders/store"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark an order as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		existing, err := s.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "No order with id %d\n", id)
			return nil
		}

		if err := s.Dispatch(&store.CompleteCommand{ID: id}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Completed order %d (%s)\n", id, existing.Name)
		return nil
	},
}
