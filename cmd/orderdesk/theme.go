package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the display theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := themePath()
		if err != nil {
			return err
		}
		store := theme.NewStore(path)

		if len(args) == 0 {
			t, err := store.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		}

		t := theme.Theme(args[0])
		if err := store.Save(t); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", t)
		return nil
	},
}
