package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aztec-shuffle/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List record formats",
	Long:  `Shows every record format registered with aztec.`,
	RunE:  runFormats,
}

func runFormats(_ *cobra.Command, _ []string) error {
	formats := registry.List()

	if len(formats) == 0 {
		fmt.Println("No formats available.")
		return nil
	}

	fmt.Println("Available formats:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range formats {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Extensions", "Title")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "----------", "-----")

	for _, f := range formats {
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, f.ID, strings.Join(f.Extensions, ","), f.Title)
	}

	fmt.Println()
	fmt.Println("Use 'aztec generate --format <id>' to pick one.")
	return nil
}
