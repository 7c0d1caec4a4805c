package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/cmd/orderdesk/ui"
	"github.com/tomypizza/orderdesk/orders"
)

var (
	listFilter string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the order list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := orders.Filter(listFilter)
		if !filter.Valid() {
			return fmt.Errorf("unknown filter %q (use all, pending or completed)", listFilter)
		}
		sortKey := orders.Sort(listSort)
		if !sortKey.Valid() {
			return fmt.Errorf("unknown sort %q (use due, name or priority)", listSort)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		records, err := s.List(filter, sortKey)
		if err != nil {
			return err
		}

		styles := ui.NewStyles(loadTheme())
		table := ui.NewOrderTable("", records)
		fmt.Fprint(cmd.OutOrStdout(), table.View(styles, time.Now()))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "filter: all, pending, completed")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "due", "sort: due, name, priority")
}
