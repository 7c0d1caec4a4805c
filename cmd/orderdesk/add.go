package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/store"
)

var (
	addDescription string
	addDue         string
	addPriority    string
	addLocation    string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new order",
	Long: `Add a new order to the collection. The due time is required and must
be in the future; it accepts RFC 3339, "2006-01-02 15:04", or a duration
offset like "45m".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		due, err := parseDue(addDue, time.Now())
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		add := &store.AddCommand{Draft: orders.Draft{
			Name:        args[0],
			Description: addDescription,
			Due:         due,
			Priority:    orders.Priority(addPriority),
			Location:    addLocation,
		}}
		if err := s.Dispatch(add); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %q, due %s\n", args[0], due.Local().Format("Jan 02 15:04"))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "D", "", "order description")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "due time (required)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "priority: low, medium, high")
	addCmd.Flags().StringVarP(&addLocation, "location", "l", "", "delivery location")
	_ = addCmd.MarkFlagRequired("due")
}

// parseDue accepts an absolute RFC 3339 timestamp, a local
// "2006-01-02 15:04" timestamp, or a duration offset from now.
func parseDue(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("due time is required")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local); err == nil {
		return t, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return now.Add(d), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse due time %q", value)
}
