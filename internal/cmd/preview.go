package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hintline/internal/keybind"
	"hintline/internal/state"
	"hintline/internal/statusline"
	"hintline/internal/style"
)

func newPreviewCmd() *cobra.Command {
	var configPath string
	var width int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render fixture states for every mode at the current width",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, km, err := loadSetup(configPath)
			if err != nil {
				return err
			}

			cols := width
			if cols == 0 {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					cols = w
				} else {
					cols = 120
				}
			}

			style.SetEnabled(!cfg.Classic)
			palette := style.ForTheme(cfg.Theme)
			out := cmd.OutOrStdout()

			modes := []keybind.Mode{
				keybind.ModeNormal,
				keybind.ModePane,
				keybind.ModeTab,
				keybind.ModeResize,
				keybind.ModeMove,
				keybind.ModeScroll,
				keybind.ModeSearch,
				keybind.ModeSession,
				keybind.ModeLocked,
			}
			for _, mode := range modes {
				tr := &state.Tracker{Mode: mode, Keymap: km}
				frame := statusline.Render(tr, palette, cols-12)
				fmt.Fprintf(out, "%-11s %s\n", mode, frame.Part)
			}

			fixtures := []struct {
				label   string
				tracker *state.Tracker
			}{
				{"fullscreen", &state.Tracker{Mode: keybind.ModeNormal, Keymap: km,
					Tabs: []state.Tab{{Active: true, FullscreenActive: true, PanesToHide: 2}}}},
				{"floating", &state.Tracker{Mode: keybind.ModeNormal, Keymap: km,
					Tabs: []state.Tab{{Active: true, FloatingPanesVisible: true}}}},
				{"copied", &state.Tracker{Mode: keybind.ModeNormal, Keymap: km,
					CopyDestination: state.CopySystem}},
				{"clip error", &state.Tracker{Mode: keybind.ModeNormal, Keymap: km,
					ClipboardFailure: true}},
			}
			for _, f := range fixtures {
				frame := statusline.Render(f.tracker, palette, cols-12)
				fmt.Fprintf(out, "%-11s %s\n", f.label, frame.Part)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().IntVar(&width, "width", 0, "column budget (default: terminal width)")
	return cmd
}
