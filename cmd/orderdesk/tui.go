package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tomypizza/orderdesk/cmd/orderdesk/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and manage orders interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		model := ui.NewModel(s, ui.NewStyles(loadTheme()))
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("terminal UI failed: %w", err)
		}
		return nil
	},
}
