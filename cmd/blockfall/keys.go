package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/input"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/platform/window"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Run: func(cmd *cobra.Command, args []string) {
		printKeys(cmd.OutOrStdout())
	},
}

func printKeys(w io.Writer) {
	fmt.Fprintln(w, "Terminal:")
	for _, group := range tui.DefaultKeyMap().FullHelp() {
		for _, b := range group {
			h := b.Help()
			fmt.Fprintf(w, "  %-8s %s\n", h.Key, h.Desc)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Window:")
	bindings := window.DefaultBindings()
	for _, k := range input.Keys {
		names := make([]string, len(bindings[k]))
		for i, pk := range bindings[k] {
			names[i] = pk.String()
		}
		fmt.Fprintf(w, "  %-12s %s\n", k, strings.Join(names, ", "))
	}
	quit := make([]string, len(window.QuitKeys))
	for i, pk := range window.QuitKeys {
		quit[i] = pk.String()
	}
	fmt.Fprintf(w, "  %-12s %s\n", "quit", strings.Join(quit, ", "))
}
