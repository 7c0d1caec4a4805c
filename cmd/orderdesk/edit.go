package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/store"
)

var (
	editName        string
	editDescription string
	editDue         string
	editPriority    string
	editLocation    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of an existing order",
	Long: `Change one or more fields of an existing order. Only the flags you
pass are applied; everything else is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		var patch orders.Patch
		if cmd.Flags().Changed("name") {
			patch.Name = &editName
		}
		if cmd.Flags().Changed("desc") {
			patch.Description = &editDescription
		}
		if cmd.Flags().Changed("due") {
			due, err := parseDue(editDue, time.Now())
			if err != nil {
				return err
			}
			patch.Due = &due
		}
		if cmd.Flags().Changed("priority") {
			p := orders.Priority(editPriority)
			patch.Priority = &p
		}
		if cmd.Flags().Changed("location") {
			patch.Location = &editLocation
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if existing, err := s.GetByID(id); err != nil {
			return err
		} else if existing == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "No order with id %d\n", id)
			return nil
		}

		if err := s.Dispatch(&store.EditCommand{ID: id, Patch: patch}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated order %d\n", id)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "order name")
	editCmd.Flags().StringVarP(&editDescription, "desc", "D", "", "order description")
	editCmd.Flags().StringVarP(&editDue, "due", "d", "", "due time")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "priority: low, medium, high")
	editCmd.Flags().StringVarP(&editLocation, "location", "l", "", "delivery location")
}
