package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available renderers",
	Long:  `Shows every renderer that can be passed to --renderer.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, _ []string) {
	backends := registry.List()
	out := cmd.OutOrStdout()

	if len(backends) == 0 {
		fmt.Fprintln(out, "No renderers available.")
		return
	}

	fmt.Fprintln(out, "Available renderers:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'snake play --renderer <id>' to play.")
}
