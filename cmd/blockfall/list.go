package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode and the shape sets it deals from.`,
	Run: func(cmd *cobra.Command, args []string) {
		printModes(cmd.OutOrStdout(), registry.List())
	},
}

func printModes(w io.Writer, modes []registry.Mode) {
	if len(modes) == 0 {
		fmt.Fprintln(w, "No modes available.")
		return
	}

	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
		maxTitleLen = max(maxTitleLen, len(m.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Sets")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	for _, m := range modes {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, m.ID, maxTitleLen, m.Title, strings.Join(m.SetNames(), ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blockfall play <id>' to play a mode.")
}
