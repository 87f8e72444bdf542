// Package ansitext measures and truncates strings that interleave
// visible characters with ANSI SGR escape sequences (ESC '[' ... 'm').
//
// An escape sequence starts at ESC (0x1B) and ends at the first 'm'
// after it; everything between is opaque payload. Characters inside a
// sequence contribute nothing to the visible length. An unterminated
// sequence absorbs the rest of the string.
package ansitext

import "strings"

const esc = '\x1b'

// VisibleLength returns the number of characters in s that would be
// rendered as glyphs, excluding escape-sequence bytes.
func VisibleLength(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		if r == esc {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			n++
		}
	}
	return n
}

// Truncate shortens s so that its visible length does not exceed
// maxVisible, appending marker when shortening occurs. Escape
// sequences are copied whole and never counted against the budget.
//
// If s already fits, it is returned unchanged. If maxVisible is not
// larger than the marker itself (raw character count; the marker is
// assumed free of escapes), the marker alone is returned.
func Truncate(s, marker string, maxVisible int) string {
	if VisibleLength(s) <= maxVisible {
		return s
	}

	markerLen := len([]rune(marker))
	if maxVisible <= markerLen {
		return marker
	}

	target := maxVisible - markerLen
	var b strings.Builder
	b.Grow(len(s))
	visible := 0
	inEscape := false
	for _, r := range s {
		if r == esc {
			inEscape = true
			b.WriteRune(r)
		} else if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		} else {
			if visible >= target {
				break
			}
			b.WriteRune(r)
			visible++
		}
	}
	b.WriteString(marker)
	return b.String()
}

// Strip removes all escape sequences from s, leaving only the visible
// characters.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for _, r := range s {
		if r == esc {
			inEscape = true
		} else if inEscape {
			if r == 'm' {
				inEscape = false
			}
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
