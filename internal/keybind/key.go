package keybind

import (
	"fmt"
	"strings"
)

// Modifier is a bit set of key modifiers.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

func (m Modifier) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if m&ModSuper != 0 {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "-")
}

// Key is a bare key plus held modifiers.
type Key struct {
	Bare string
	Mods Modifier
}

// bareDisplay maps named keys to their compact status-line glyphs.
var bareDisplay = map[string]string{
	"Left":     "←",
	"Right":    "→",
	"Up":       "↑",
	"Down":     "↓",
	"PageUp":   "PgUp",
	"PageDown": "PgDn",
	"Space":    "Space",
	"Enter":    "Enter",
	"Esc":      "Esc",
	"Tab":      "Tab",
}

// BareDisplay returns the display form of the bare key (arrow glyphs
// for arrow keys, the key name otherwise).
func (k Key) BareDisplay() string {
	if d, ok := bareDisplay[k.Bare]; ok {
		return d
	}
	return k.Bare
}

func (k Key) String() string {
	if k.Mods == 0 {
		return k.BareDisplay()
	}
	return k.Mods.String() + " " + k.BareDisplay()
}

// ParseKey parses a "Ctrl+Alt+f" style key description. The last
// '+'-separated field is the bare key; the rest are modifiers.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("empty key")
	}
	fields := strings.Split(s, "+")
	bare := fields[len(fields)-1]
	if bare == "" {
		// A trailing "+" means the bare key is '+' itself, as in "+"
		// or "Ctrl++". Split leaves two empty fields behind it.
		if len(fields) >= 2 && fields[len(fields)-2] == "" {
			bare = "+"
			fields = fields[:len(fields)-1]
		} else {
			return Key{}, fmt.Errorf("key %q has no bare key", s)
		}
	}
	var mods Modifier
	for _, f := range fields[:len(fields)-1] {
		switch strings.ToLower(f) {
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "shift":
			mods |= ModShift
		case "super":
			mods |= ModSuper
		default:
			return Key{}, fmt.Errorf("key %q: unknown modifier %q", s, f)
		}
	}
	return Key{Bare: bare, Mods: mods}, nil
}

// MustKey is ParseKey for fixtures and defaults; panics on bad input.
func MustKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// CommonModifiers returns the modifiers held by every key in keys.
// Returns 0 for an empty slice.
func CommonModifiers(keys []Key) Modifier {
	if len(keys) == 0 {
		return 0
	}
	common := keys[0].Mods
	for _, k := range keys[1:] {
		common &= k.Mods
	}
	return common
}
