// orderdesk is the command line host for the order collection manager.
// Every subcommand maps onto a typed store command; the store itself is
// UI-agnostic and shared with the tui host.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
