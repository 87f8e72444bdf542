// Package style builds the SGR-styled segments of the status line.
package style

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// enabled tracks whether ANSI styling is active.
// Defaults to true if stdout is a TTY.
var enabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetEnabled overrides the auto-detected TTY check. The run command
// forces styling on: its output goes to the host, not a terminal.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled returns whether styling is currently active.
func Enabled() bool {
	return enabled
}

// Color is an ANSI-256 palette index.
type Color uint8

func fg(c Color) string { return fmt.Sprintf("\033[38;5;%dm", uint8(c)) }
func bg(c Color) string { return fmt.Sprintf("\033[48;5;%dm", uint8(c)) }

const bold = "\033[1m"

func wrap(codes, s string) string {
	if !enabled || s == "" {
		return s
	}
	return codes + s + "\033[0m"
}

// Palette holds the color roles the status line uses.
type Palette struct {
	TextFg   Color // description text
	TextBg   Color // description background (less saturated)
	RibbonFg Color // key segment text
	RibbonBg Color // key segment background (saturated)
	Orange   Color // emphasis: state indicators
	Green    Color // emphasis: keys in prose, counts
	Red      Color // emphasis: errors
}

// Dark is the default palette for dark terminal backgrounds.
func Dark() Palette {
	return Palette{
		TextFg:   15,
		TextBg:   236,
		RibbonFg: 16,
		RibbonBg: 36,
		Orange:   208,
		Green:    36,
		Red:      160,
	}
}

// Light is the palette for light terminal backgrounds.
func Light() Palette {
	return Palette{
		TextFg:   16,
		TextBg:   253,
		RibbonFg: 231,
		RibbonBg: 29,
		Orange:   166,
		Green:    29,
		Red:      124,
	}
}

// Detect picks a palette from the terminal background, the same way
// the host wrapper probes colors before drawing.
func Detect() Palette {
	output := termenv.NewOutput(os.Stdout)
	if output.HasDarkBackground() {
		return Dark()
	}
	return Light()
}

// ForTheme maps a configured theme name to a palette. Empty or "auto"
// falls back to terminal detection.
func ForTheme(name string) Palette {
	switch name {
	case "dark":
		return Dark()
	case "light":
		return Light()
	default:
		return Detect()
	}
}

// Text renders description text on the less saturated background.
func (p Palette) Text(s string) string { return wrap(fg(p.TextFg)+bg(p.TextBg), s) }

// TextBold is Text in bold.
func (p Palette) TextBold(s string) string { return wrap(fg(p.TextFg)+bg(p.TextBg)+bold, s) }

// Ribbon renders key-segment text on the saturated background.
func (p Palette) Ribbon(s string) string { return wrap(fg(p.RibbonFg)+bg(p.RibbonBg), s) }

// RibbonBold is Ribbon in bold.
func (p Palette) RibbonBold(s string) string { return wrap(fg(p.RibbonFg)+bg(p.RibbonBg)+bold, s) }

// GreenText renders emphasized prose (copy confirmations, key names).
func (p Palette) GreenText(s string) string { return wrap(fg(p.Green), s) }

// GreenBold is GreenText in bold.
func (p Palette) GreenBold(s string) string { return wrap(fg(p.Green)+bold, s) }

// OrangeBold renders state indicators like FULLSCREEN.
func (p Palette) OrangeBold(s string) string { return wrap(fg(p.Orange)+bold, s) }

// RedBold renders error text.
func (p Palette) RedBold(s string) string { return wrap(fg(p.Red)+bold, s) }
