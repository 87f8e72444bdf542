package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command with all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hintline",
		Short: "Keybinding hint segment for a multiplexer status line",
		Long: "hintline renders a one-line keybinding hint segment for a terminal\n" +
			"multiplexer status bar. The host pushes state as JSONL events; hintline\n" +
			"emits one styled, optionally truncated line per redraw.",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newRenderCmd(),
		newPreviewCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
