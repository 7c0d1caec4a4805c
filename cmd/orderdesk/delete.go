package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/orders/store"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order (asks for confirmation)",
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

		req := &store.RequestDeleteCommand{ID: id}
		if err := s.Dispatch(req); err != nil {
			return err
		}

		if !deleteForce && !confirmPrompt(cmd, fmt.Sprintf("Delete order %d (%s)?", id, existing.Name)) {
			if err := s.Dispatch(&store.CancelCommand{Token: req.Token}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}

		if err := s.Dispatch(&store.ConfirmCommand{Token: req.Token}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted order %d\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "yes", "y", false, "skip the confirmation prompt")
}

// confirmPrompt reads a y/N answer from the command's input stream.
func confirmPrompt(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
