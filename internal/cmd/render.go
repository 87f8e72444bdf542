package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hintline/internal/ansitext"
	"hintline/internal/state"
	"hintline/internal/statusline"
	"hintline/internal/style"
)

func newRenderCmd() *cobra.Command {
	var configPath string
	var maxLength int
	var width int
	var plain bool

	cmd := &cobra.Command{
		Use:   "render [snapshot.json]",
		Short: "Render one frame from a state snapshot",
		Long: "render reads a JSON state snapshot from the given file (or stdin)\n" +
			"and prints the rendered status line once. Useful for host-side\n" +
			"debugging and layout scripts.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, km, err := loadSetup(configPath)
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			tracker := &state.Tracker{Keymap: km}
			if err := json.Unmarshal(data, tracker); err != nil {
				return fmt.Errorf("snapshot: %w", err)
			}

			style.SetEnabled(!plain && !cfg.Classic)
			palette := style.ForTheme(cfg.Theme)

			cols := tracker.Cols
			if width > 0 {
				cols = width
			}
			frame := statusline.Render(tracker, palette, cols)

			budget := cfg.MaxLength
			if cmd.Flags().Changed("max-length") {
				budget = maxLength
			}
			output := frame.Part
			if budget > 0 && ansitext.VisibleLength(output) > budget {
				output = ansitext.Truncate(output, cfg.OverflowStr, budget)
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "override the configured truncation budget")
	cmd.Flags().IntVar(&width, "width", 0, "column budget override (0 = use snapshot cols)")
	cmd.Flags().BoolVar(&plain, "plain", false, "render without ANSI styling")
	return cmd
}
