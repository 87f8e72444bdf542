package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hintline/internal/ansitext"
	"hintline/internal/config"
	"hintline/internal/renderlog"
	"hintline/internal/state"
	"hintline/internal/statusline"
	"hintline/internal/style"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var logPath string
	var width int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render status-line frames from host events on stdin",
		Long: "run reads the host's JSONL event stream on stdin and writes one\n" +
			"rendered status-line frame to stdout for every event that changes\n" +
			"visible state. The config file is reloaded live when it changes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			cfg, km, err := loadSetup(configPath)
			if err != nil {
				return err
			}

			session := uuid.NewString()
			rl := renderlog.New(logPath != "", logPath, session)
			defer rl.Close()

			// The watcher goroutine swaps the config under the mutex;
			// the render loop takes a snapshot of the truncation and
			// styling settings per frame, so a reload takes effect on
			// the next redraw.
			var mu sync.Mutex
			current := cfg
			if closer, err := config.Watch(configPath, func(updated *config.Config) {
				mu.Lock()
				current = updated
				mu.Unlock()
				rl.ConfigReloaded(configPath)
			}); err == nil {
				defer closer.Close()
			}

			tracker := &state.Tracker{Keymap: km, Cols: width}
			out := cmd.OutOrStdout()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := bytes.TrimSpace(scanner.Bytes())
				if len(line) == 0 {
					continue
				}
				ev, err := state.DecodeEvent(line)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "hintline: skipping event: %v\n", err)
					continue
				}
				redraw := tracker.Apply(ev)
				rl.EventReceived(ev.Type, redraw)
				if !redraw {
					continue
				}

				mu.Lock()
				maxLen, overflow := current.MaxLength, current.OverflowStr
				// Output goes to the host, not a terminal: styling
				// stays on unless the classic rendition is configured.
				style.SetEnabled(!current.Classic)
				palette := style.ForTheme(current.Theme)
				mu.Unlock()

				frame := statusline.Render(tracker, palette, tracker.Cols)
				output := frame.Part
				truncated := false
				if maxLen > 0 && ansitext.VisibleLength(output) > maxLen {
					output = ansitext.Truncate(output, overflow, maxLen)
					truncated = true
				}
				fmt.Fprintln(out, output)
				rl.FrameRendered(ansitext.VisibleLength(output), truncated)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default: $HINTLINE_CONFIG or ~/.config/hintline/config.yaml)")
	cmd.Flags().StringVar(&logPath, "log", "", "append a JSONL render log to this file")
	cmd.Flags().IntVar(&width, "width", 0, "initial column budget until the host sends a resize event (0 = unbounded)")
	return cmd
}
