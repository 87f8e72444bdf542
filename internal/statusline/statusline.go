// Package statusline renders the one-line keybinding hint segment the
// host places in its status bar.
package statusline

import (
	"runtime"
	"strconv"
	"strings"

	"hintline/internal/ansitext"
	"hintline/internal/keybind"
	"hintline/internal/state"
	"hintline/internal/style"
)

// Render produces the status-line segment for the current host state.
// maxLen is the column budget; zero or negative means unbounded.
//
// Transient messages outrank everything: clipboard confirmations, then
// clipboard errors, then fullscreen / floating-pane indicators, and
// only then the current mode's keybinding hints.
func Render(t *state.Tracker, p style.Palette, maxLen int) LinePart {
	if t.CopyDestination != state.CopyNone {
		return textCopiedHint(t.CopyDestination, p)
	}
	if t.ClipboardFailure {
		return systemClipboardError(p)
	}

	if tab := t.ActiveTab(); tab != nil {
		if tab.FullscreenActive {
			switch t.Mode {
			case keybind.ModeNormal:
				return fullscreenPanesToHide(p, tab.PanesToHide)
			case keybind.ModeLocked:
				return LinePart{}
			default:
				if maxLen <= 0 || maxLen > 20 {
					return prefixedKeybindings(t, p, maxLen, " (FULLSCREEN) ", 15)
				}
			}
		}
		if tab.FloatingPanesVisible {
			switch t.Mode {
			case keybind.ModeNormal:
				return floatingPanesVisible(t, p)
			case keybind.ModeLocked:
				return LinePart{}
			default:
				if maxLen <= 0 || maxLen > 25 {
					return prefixedKeybindings(t, p, maxLen, " (FLOATING PANES) ", 20)
				}
			}
		}
	}

	if t.Mode == keybind.ModeLocked && t.BaseModeIsLocked() {
		return LinePart{}
	}
	return modeKeybindings(t, p, maxLen)
}

// prefixedKeybindings renders the mode hints behind a state indicator
// such as "(FULLSCREEN)", reserving reserve columns for the prefix.
// When even the reduced hints do not fit, the indicator stands alone.
func prefixedKeybindings(t *state.Tracker, p style.Palette, maxLen int, prefix string, reserve int) LinePart {
	inner := maxLen
	if inner > 0 {
		inner -= reserve
	}
	hints := modeKeybindings(t, p, inner)
	if hints.Len > 0 {
		part := prefix + strings.TrimLeft(hints.Part, " ")
		return LinePart{Part: part, Len: ansitext.VisibleLength(part)}
	}
	return LinePart{Part: p.OrangeBold(prefix), Len: len([]rune(prefix))}
}

// textCopiedHint confirms where copied text went. macOS has no primary
// selection, so the primary destination reads as the system clipboard
// there.
func textCopiedHint(dest state.CopyDestination, p style.Palette) LinePart {
	var hint string
	switch dest {
	case state.CopyCommand:
		hint = "Text piped to external command"
	case state.CopyPrimary:
		if runtime.GOOS == "darwin" {
			hint = "Text copied to system clipboard"
		} else {
			hint = "Text copied to system primary selection"
		}
	default:
		hint = "Text copied to system clipboard"
	}
	return LinePart{Part: p.GreenText(hint), Len: len(hint)}
}

func systemClipboardError(p style.Palette) LinePart {
	hint := " Error using the system clipboard."
	return LinePart{Part: p.RedBold(hint), Len: len(hint)}
}

// fullscreenPanesToHide is the normal-mode fullscreen indicator:
// " (FULLSCREEN): + N hidden panes".
func fullscreenPanesToHide(p style.Palette, panesToHide int) LinePart {
	panes := strconv.Itoa(panesToHide)
	part := p.TextBold(" (") +
		p.OrangeBold("FULLSCREEN") +
		p.TextBold("): ") +
		p.TextBold("+ ") +
		p.GreenBold(panes) +
		p.TextBold(" hidden panes")
	return LinePart{Part: part, Len: ansitext.VisibleLength(part)}
}

// floatingPanesVisible is the normal-mode floating-panes indicator,
// naming the keys that reach pane mode and toggle floating panes.
func floatingPanesVisible(t *state.Tracker, p style.Palette) LinePart {
	paneModeKey := firstKeyDisplay(keybind.ActionKey(
		t.Keymap[keybind.ModeNormal],
		[]keybind.Action{keybind.SwitchToMode(keybind.ModePane)},
	))
	toggleKey := firstKeyDisplay(keybind.ActionKey(
		t.Keymap[keybind.ModePane],
		[]keybind.Action{{Name: keybind.ActToggleFloating}, keybind.ToNormal},
	))

	part := p.TextBold(" (") +
		p.OrangeBold("FLOATING PANES VISIBLE") +
		p.TextBold("): ") +
		p.TextBold("Press ") +
		p.GreenBold(paneModeKey) +
		p.TextBold(", ") +
		p.TextBold("<") +
		p.GreenBold(toggleKey) +
		p.TextBold("> ") +
		p.TextBold("to hide.")
	return LinePart{Part: part, Len: ansitext.VisibleLength(part)}
}

func firstKeyDisplay(keys []keybind.Key) string {
	if len(keys) == 0 {
		return "?"
	}
	return keys[0].String()
}

// modeKeybindings renders the hint row for the current mode. The row
// is all-or-nothing: when it does not fit the budget it renders empty
// rather than clipped mid-hint.
func modeKeybindings(t *state.Tracker, p style.Palette, maxLen int) LinePart {
	hints := modeHints(t, p)
	if hints == "" {
		return LinePart{}
	}
	part := " " + hints
	length := ansitext.VisibleLength(part)
	if maxLen > 0 && length > maxLen {
		return LinePart{}
	}
	return LinePart{Part: part, Len: length}
}
