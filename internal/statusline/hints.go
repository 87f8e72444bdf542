package statusline

import (
	"strings"

	"hintline/internal/keybind"
	"hintline/internal/state"
	"hintline/internal/style"
)

// hintWriter accumulates key/description hint pairs for one mode.
type hintWriter struct {
	b strings.Builder
	p style.Palette
}

func (w *hintWriter) pair(keys []keybind.Key, label string) {
	if len(keys) == 0 {
		return
	}
	w.b.WriteString(style.KeyHint(keys, w.p))
	w.b.WriteString(style.Description(label, w.p))
}

// selectKeys picks the "back to normal" key for a mode, preferring
// Enter when it is bound, otherwise the first bound key.
func selectKeys(bindings []keybind.Binding) []keybind.Key {
	keys := keybind.ActionKey(bindings, []keybind.Action{keybind.ToNormal})
	enter := keybind.Key{Bare: "Enter"}
	for _, k := range keys {
		if k == enter {
			return []keybind.Key{enter}
		}
	}
	if len(keys) > 0 {
		return keys[:1]
	}
	return nil
}

func act(name string) keybind.Action         { return keybind.Action{Name: name} }
func actArg(name, arg string) keybind.Action { return keybind.Action{Name: name, Arg: arg} }

// modeHints renders the hint pairs for the tracker's current mode.
func modeHints(t *state.Tracker, p style.Palette) string {
	bindings := t.Keymap[t.Mode]
	w := &hintWriter{p: p}

	switch t.Mode {
	case keybind.ModeNormal:
		targets := []struct {
			mode  keybind.Mode
			label string
		}{
			{keybind.ModePane, "pane"},
			{keybind.ModeTab, "tab"},
			{keybind.ModeResize, "resize"},
			{keybind.ModeMove, "move"},
			{keybind.ModeScroll, "scroll"},
			{keybind.ModeSearch, "search"},
			{keybind.ModeSession, "session"},
		}
		for _, target := range targets {
			keys := keybind.ActionKey(bindings, []keybind.Action{keybind.SwitchToMode(target.mode)})
			w.pair(keys, target.label)
		}
		w.pair(keybind.ActionKey(bindings, []keybind.Action{act(keybind.ActQuit)}), "quit")

	case keybind.ModePane:
		paneActions := []struct {
			actions []keybind.Action
			label   string
		}{
			{[]keybind.Action{act(keybind.ActNewPane), keybind.ToNormal}, "new"},
			{[]keybind.Action{act(keybind.ActCloseFocus), keybind.ToNormal}, "close"},
			{[]keybind.Action{act(keybind.ActToggleFullscreen), keybind.ToNormal}, "fullscreen"},
			{[]keybind.Action{act(keybind.ActToggleFloating), keybind.ToNormal}, "floating"},
			{[]keybind.Action{act(keybind.ActToggleEmbed), keybind.ToNormal}, "embed"},
			{[]keybind.Action{actArg(keybind.ActNewPane, "right"), keybind.ToNormal}, "split right"},
			{[]keybind.Action{actArg(keybind.ActNewPane, "down"), keybind.ToNormal}, "split down"},
		}
		for _, pa := range paneActions {
			w.pair(keybind.SingleActionKey(bindings, pa.actions), pa.label)
		}
		w.pair(keybind.SingleActionKey(bindings, []keybind.Action{
			keybind.SwitchToMode(keybind.ModeRenamePane),
			act(keybind.ActPaneNameInput),
		}), "rename")
		w.pair(keybind.ActionKeyGroup(bindings,
			[]keybind.Action{actArg(keybind.ActMoveFocus, "left")},
			[]keybind.Action{actArg(keybind.ActMoveFocus, "down")},
			[]keybind.Action{actArg(keybind.ActMoveFocus, "up")},
			[]keybind.Action{actArg(keybind.ActMoveFocus, "right")},
		), "move")
		w.pair(selectKeys(bindings), "select")

	case keybind.ModeTab:
		tabActions := []struct {
			actions []keybind.Action
			label   string
		}{
			{[]keybind.Action{act(keybind.ActNewTab), keybind.ToNormal}, "new"},
			{[]keybind.Action{act(keybind.ActCloseTab), keybind.ToNormal}, "close"},
			{[]keybind.Action{act(keybind.ActBreakPane), keybind.ToNormal}, "break pane"},
			{[]keybind.Action{act(keybind.ActToggleTabSync), keybind.ToNormal}, "sync"},
		}
		for _, ta := range tabActions {
			w.pair(keybind.SingleActionKey(bindings, ta.actions), ta.label)
		}
		w.pair(keybind.SingleActionKey(bindings, []keybind.Action{
			keybind.SwitchToMode(keybind.ModeRenameTab),
			act(keybind.ActTabNameInput),
		}), "rename")
		w.pair(tabFocusKeys(bindings), "move")
		w.pair(selectKeys(bindings), "select")

	case keybind.ModeResize:
		w.pair(keybind.ActionKeyGroup(bindings,
			[]keybind.Action{actArg(keybind.ActResize, "increase")},
			[]keybind.Action{actArg(keybind.ActResize, "decrease")},
		), "resize")
		w.pair(keybind.ActionKeyGroup(bindings,
			[]keybind.Action{actArg(keybind.ActResize, "increase_left")},
			[]keybind.Action{actArg(keybind.ActResize, "increase_down")},
			[]keybind.Action{actArg(keybind.ActResize, "increase_up")},
			[]keybind.Action{actArg(keybind.ActResize, "increase_right")},
		), "increase")
		w.pair(keybind.ActionKeyGroup(bindings,
			[]keybind.Action{actArg(keybind.ActResize, "decrease_left")},
			[]keybind.Action{actArg(keybind.ActResize, "decrease_down")},
			[]keybind.Action{actArg(keybind.ActResize, "decrease_up")},
			[]keybind.Action{actArg(keybind.ActResize, "decrease_right")},
		), "decrease")
		w.pair(selectKeys(bindings), "select")

	case keybind.ModeMove:
		w.pair(keybind.ActionKeyGroup(bindings,
			[]keybind.Action{actArg(keybind.ActMovePane, "left")},
			[]keybind.Action{actArg(keybind.ActMovePane, "down")},
			[]keybind.Action{actArg(keybind.ActMovePane, "up")},
			[]keybind.Action{actArg(keybind.ActMovePane, "right")},
		), "move")
		w.pair(selectKeys(bindings), "select")

	case keybind.ModeScroll:
		w.pair(keybind.ActionKey(bindings, []keybind.Action{
			keybind.SwitchToMode(keybind.ModeEnterSearch),
			act(keybind.ActSearchInput),
		}), "search")
		scrollHints(w, bindings)
		w.pair(keybind.SingleActionKey(bindings, []keybind.Action{
			act(keybind.ActEditScrollback), keybind.ToNormal,
		}), "edit")
		w.pair(selectKeys(bindings), "select")

	case keybind.ModeSearch:
		w.pair(keybind.ActionKey(bindings, []keybind.Action{
			keybind.SwitchToMode(keybind.ModeEnterSearch),
			act(keybind.ActSearchInput),
		}), "search")
		scrollHints(w, bindings)
		w.pair(keybind.ActionKey(bindings, []keybind.Action{actArg(keybind.ActSearch, "down")}), "down")
		w.pair(keybind.ActionKey(bindings, []keybind.Action{actArg(keybind.ActSearch, "up")}), "up")
		w.pair(selectKeys(bindings), "select")

	case keybind.ModeSession:
		w.pair(keybind.ActionKey(bindings, []keybind.Action{act(keybind.ActDetach)}), "detach")
		w.pair(selectKeys(bindings), "select")

	default:
		// Other modes just show the way back.
		w.pair(keybind.ActionKey(bindings, []keybind.Action{keybind.ToNormal}), "normal")
	}

	return w.b.String()
}

// scrollHints covers the navigation shared by scroll and search modes.
func scrollHints(w *hintWriter, bindings []keybind.Binding) {
	w.pair(keybind.ActionKeyGroup(bindings,
		[]keybind.Action{act(keybind.ActScrollDown)},
		[]keybind.Action{act(keybind.ActScrollUp)},
	), "scroll")
	w.pair(keybind.ActionKeyGroup(bindings,
		[]keybind.Action{act(keybind.ActPageScrollDown)},
		[]keybind.Action{act(keybind.ActPageScrollUp)},
	), "page")
	w.pair(keybind.ActionKeyGroup(bindings,
		[]keybind.Action{act(keybind.ActHalfPageScrollDown)},
		[]keybind.Action{act(keybind.ActHalfPageScrollUp)},
	), "half page")
}

// tabFocusKeys returns the tab navigation keys, collapsing to a bare
// arrow pair when both arrows are bound.
func tabFocusKeys(bindings []keybind.Binding) []keybind.Key {
	keys := keybind.ActionKeyGroup(bindings,
		[]keybind.Action{act(keybind.ActPreviousTab)},
		[]keybind.Action{act(keybind.ActNextTab)},
	)
	var hasLeft, hasRight bool
	for _, k := range keys {
		if k == (keybind.Key{Bare: "Left"}) {
			hasLeft = true
		}
		if k == (keybind.Key{Bare: "Right"}) {
			hasRight = true
		}
	}
	if hasLeft && hasRight {
		return []keybind.Key{{Bare: "Left"}, {Bare: "Right"}}
	}
	return keys
}
