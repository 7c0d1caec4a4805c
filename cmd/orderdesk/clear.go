package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/orders/store"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all orders (asks for confirmation)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		all, err := s.All()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clear")
			return nil
		}

		req := &store.ClearAllCommand{}
		if err := s.Dispatch(req); err != nil {
			return err
		}

		if !clearForce && !confirmPrompt(cmd, fmt.Sprintf("Delete all %d orders?", len(all))) {
			if err := s.Dispatch(&store.CancelCommand{Token: req.Token}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}

		if err := s.Dispatch(&store.ConfirmCommand{Token: req.Token}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d orders\n", len(all))
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "yes", "y", false, "skip the confirmation prompt")
}
