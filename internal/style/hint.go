package style

import (
	"strings"

	"hintline/internal/keybind"
)

// KeyHint renders a group of keys as one saturated segment. Modifiers
// shared by every key are hoisted into a single "Mod + " prefix, and
// well-known directional clusters drop the "|" separator.
func KeyHint(keys []keybind.Key, p Palette) string {
	if len(keys) == 0 {
		return ""
	}

	common := keybind.CommonModifiers(keys)

	display := make([]string, len(keys))
	for i, k := range keys {
		if common == 0 {
			display[i] = k.String()
			continue
		}
		rest := k.Mods &^ common
		if rest == 0 {
			display[i] = k.BareDisplay()
		} else {
			display[i] = rest.String() + " " + k.BareDisplay()
		}
	}

	separator := "|"
	switch strings.Join(display, "") {
	case "HJKL", "hjkl", "←↓↑→", "←→", "↓↑", "[]":
		separator = ""
	}

	var b strings.Builder
	b.WriteString(" ")
	if common != 0 {
		b.WriteString(p.RibbonBold(" " + common.String() + " + "))
	} else {
		b.WriteString(p.Ribbon(" "))
	}
	for i, d := range display {
		if i > 0 && separator != "" {
			b.WriteString(p.Ribbon(separator))
		}
		b.WriteString(p.RibbonBold(d))
	}
	b.WriteString(p.Ribbon(" "))
	return b.String()
}

// Description renders a hint description on the less saturated
// background, padded with single spaces.
func Description(text string, p Palette) string {
	return p.Text(" " + text + " ")
}
