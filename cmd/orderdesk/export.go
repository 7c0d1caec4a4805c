package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tomypizza/orderdesk/orders"
)

var (
	exportFormat string
	exportFilter string
	exportSort   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the order collection to stdout",
	Long: `Write the current order collection to stdout as JSON or YAML, after
applying the requested filter and sort. Useful for backups and for piping
into other tools.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := orders.Filter(exportFilter)
		if !filter.Valid() {
			return fmt.Errorf("unknown filter %q (want all, pending or completed)", exportFilter)
		}
		sortKey := orders.Sort(exportSort)
		if !sortKey.Valid() {
			return fmt.Errorf("unknown sort %q (want due, name or priority)", exportSort)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		list, err := s.List(filter, sortKey)
		if err != nil {
			return err
		}

		switch exportFormat {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer func() { _ = enc.Close() }()
			return enc.Encode(list)
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", exportFormat)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "o", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportFilter, "filter", "f", string(orders.FilterAll), "filter: all, pending or completed")
	exportCmd.Flags().StringVarP(&exportSort, "sort", "s", string(orders.SortDueAsc), "sort: due, name or priority")
}
