package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/quote"
)

var quoteShowMap bool

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a random quote",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := quote.New().Fetch(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "%q\n    - %s\n", q.Text, q.Author)
		if quoteShowMap {
			fmt.Fprintf(cmd.OutOrStdout(), "\nFind us at: %s\n", quote.MapEmbedURL)
		}
		return nil
	},
}

func init() {
	quoteCmd.Flags().BoolVar(&quoteShowMap, "map", false, "also print the shop map embed URL")
}
