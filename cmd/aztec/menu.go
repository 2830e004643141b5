package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aztec-shuffle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start an interactive session",
	Long: `Start aztec in interactive menu mode, the same session SSH users get.

Pick an order and generate a new diamond, or browse saved runs and play
one back. Leaving the viewer returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change order
  Enter/Space     - Select
  Q               - Quit

Examples:
  aztec menu
  aztec menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	store, err := openStore(false)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	vlog, closeLog := viewLogger()
	defer closeLog()

	return tui.RunSession(store, runtimeConfig(cmd), cfg.Server.MaxOrder, palette(), vlog)
}
