package ansitext

import (
	"strings"
	"testing"
)

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "plain text, no escapes", 22},
		{"empty", "", 0},
		{"styled", "\x1b[1mHello\x1b[0m", 5},
		{"escape only", "\x1b[31m\x1b[0m", 0},
		{"unterminated escape", "abc\x1b[31def", 3},
		{"escape at end", "abc\x1b", 3},
		{"multibyte runes", "\x1b[1m héllo ↑\x1b[0m", 8},
	}
	for _, tt := range tests {
		if got := VisibleLength(tt.in); got != tt.want {
			t.Errorf("%s: VisibleLength(%q) = %d, want %d", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestVisibleLength_IgnoresEscapePayload(t *testing.T) {
	// Same visible characters, different SGR parameters.
	a := "\x1b[1mab\x1b[0mcd"
	b := "\x1b[38;5;208mab\x1b[39mcd"
	if VisibleLength(a) != VisibleLength(b) {
		t.Errorf("VisibleLength(%q) = %d, VisibleLength(%q) = %d; want equal",
			a, VisibleLength(a), b, VisibleLength(b))
	}
}

func TestTruncate_WithinBudget(t *testing.T) {
	if got := Truncate("Hello", "...", 10); got != "Hello" {
		t.Errorf("Truncate within budget = %q, want %q", got, "Hello")
	}
	if got := Truncate("", "...", 0); got != "" {
		t.Errorf("Truncate empty = %q, want empty", got)
	}
	// Exactly at budget is a passthrough too.
	if got := Truncate("Hello", "...", 5); got != "Hello" {
		t.Errorf("Truncate at exact budget = %q, want %q", got, "Hello")
	}
}

func TestTruncate_PreservesEscapes(t *testing.T) {
	got := Truncate("\x1b[1mHello World\x1b[0m", "...", 5)
	want := "\x1b[1mHe..."
	if got != want {
		t.Errorf("Truncate = %q, want %q", got, want)
	}
}

func TestTruncate_MarkerDominatesSmallBudgets(t *testing.T) {
	for _, budget := range []int{0, 1, 2, 3} {
		if got := Truncate("Hello World", "...", budget); got != "..." {
			t.Errorf("Truncate budget %d = %q, want %q", budget, got, "...")
		}
	}
}

func TestTruncate_SuffixLaw(t *testing.T) {
	inputs := []string{
		"Hello World",
		"\x1b[1mHello\x1b[0m World and more",
		"\x1b[38;5;208mlong styled content here\x1b[0m",
	}
	for _, in := range inputs {
		got := Truncate(in, "...", 8)
		if !strings.HasSuffix(got, "...") {
			t.Errorf("Truncate(%q) = %q, want %q suffix", in, got, "...")
		}
	}
}

func TestTruncate_VisibleBudgetHeld(t *testing.T) {
	in := "\x1b[1mHello\x1b[0m World \x1b[32mgreen\x1b[0m tail"
	for budget := 4; budget < VisibleLength(in); budget++ {
		got := Truncate(in, "...", budget)
		if vis := VisibleLength(got); vis > budget {
			t.Errorf("budget %d: visible length of %q = %d", budget, got, vis)
		}
		// Content before the marker never exceeds budget - len(marker).
		content := strings.TrimSuffix(got, "...")
		if vis := VisibleLength(content); vis > budget-3 {
			t.Errorf("budget %d: content visible length = %d, want <= %d", budget, vis, budget-3)
		}
	}
}

func TestTruncate_EscapeAtomicity(t *testing.T) {
	in := "ab\x1b[1mcd\x1b[38;5;22mef\x1b[0mgh"
	for budget := 0; budget <= 10; budget++ {
		got := Truncate(in, "..", budget)
		inEscape := false
		for _, r := range got {
			if r == '\x1b' {
				inEscape = true
			} else if inEscape && r == 'm' {
				inEscape = false
			}
		}
		if inEscape {
			t.Errorf("budget %d: output %q ends inside an escape sequence", budget, got)
		}
	}
}

func TestTruncate_EmptyMarker(t *testing.T) {
	got := Truncate("Hello", "", 3)
	if got != "Hel" {
		t.Errorf("Truncate with empty marker = %q, want %q", got, "Hel")
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"\x1b[1mHello\x1b[0m", "Hello"},
		{"plain", "plain"},
		{"", ""},
		{"a\x1b[38;5;208mb\x1b[0mc", "abc"},
		{"tail\x1b[31", "tail"},
	}
	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripMatchesVisibleLength(t *testing.T) {
	inputs := []string{
		"\x1b[1mHello World\x1b[0m",
		"no escapes at all",
		"\x1b[31munterminated",
		"mixed \x1b[32mgreen\x1b[0m and ↑ arrows",
	}
	for _, in := range inputs {
		if got, want := len([]rune(Strip(in))), VisibleLength(in); got != want {
			t.Errorf("len(Strip(%q)) = %d, VisibleLength = %d", in, got, want)
		}
	}
}
