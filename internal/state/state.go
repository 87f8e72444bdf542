// Package state mirrors host-pushed state and decides when the status
// line needs a redraw. It is a plain reducer: one Apply per event,
// returning whether anything visible changed.
package state

import (
	"encoding/json"
	"fmt"
	"slices"

	"hintline/internal/keybind"
)

// CopyDestination identifies where copied text was sent.
type CopyDestination string

const (
	CopyNone    CopyDestination = ""
	CopyCommand CopyDestination = "command"
	CopyPrimary CopyDestination = "primary"
	CopySystem  CopyDestination = "system"
)

// Event types on the host event stream.
const (
	EventModeUpdate       = "mode_update"
	EventTabUpdate        = "tab_update"
	EventCopyToClipboard  = "copy_to_clipboard"
	EventClipboardFailure = "system_clipboard_failure"
	EventInputReceived    = "input_received"
	EventResize           = "resize"
)

// Tab is the slice of host tab state the renderer cares about.
type Tab struct {
	Name                 string `json:"name,omitempty"`
	Active               bool   `json:"active,omitempty"`
	FullscreenActive     bool   `json:"fullscreen_active,omitempty"`
	PanesToHide          int    `json:"panes_to_hide,omitempty"`
	FloatingPanesVisible bool   `json:"floating_panes_visible,omitempty"`
}

// Event is one line of the host's JSONL event stream. Fields beyond
// Type are populated per event type.
type Event struct {
	Type        string `json:"type"`
	Mode        string `json:"mode,omitempty"`
	BaseMode    string `json:"base_mode,omitempty"`
	Tabs        []Tab  `json:"tabs,omitempty"`
	Destination string `json:"destination,omitempty"`
	Cols        int    `json:"cols,omitempty"`
}

// DecodeEvent parses one event line.
func DecodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, err
	}
	switch ev.Type {
	case EventModeUpdate, EventTabUpdate, EventCopyToClipboard,
		EventClipboardFailure, EventInputReceived, EventResize:
		return ev, nil
	case "":
		return Event{}, fmt.Errorf("event missing type")
	default:
		return Event{}, fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// Tracker holds the mirrored host state. The zero value is a tracker
// in normal mode with no tabs. JSON tags let one-shot rendering load a
// full snapshot directly.
type Tracker struct {
	Mode             keybind.Mode    `json:"mode"`
	BaseMode         keybind.Mode    `json:"base_mode"`
	Tabs             []Tab           `json:"tabs,omitempty"`
	CopyDestination  CopyDestination `json:"copy_destination,omitempty"`
	ClipboardFailure bool            `json:"clipboard_failure,omitempty"`
	Cols             int             `json:"cols,omitempty"`

	Keymap keybind.Keymap `json:"-"`
}

// Apply folds one host event into the tracker and reports whether the
// status line needs to be re-rendered.
func (t *Tracker) Apply(ev Event) bool {
	switch ev.Type {
	case EventModeUpdate:
		mode, err := keybind.ParseMode(ev.Mode)
		if err != nil {
			return false
		}
		base := t.BaseMode
		if ev.BaseMode != "" {
			if b, err := keybind.ParseMode(ev.BaseMode); err == nil {
				base = b
			}
		}
		changed := mode != t.Mode || base != t.BaseMode
		t.Mode = mode
		t.BaseMode = base
		return changed

	case EventTabUpdate:
		changed := !slices.Equal(t.Tabs, ev.Tabs)
		// Clone so later mutations of the event's slice cannot alias
		// the mirrored state.
		t.Tabs = slices.Clone(ev.Tabs)
		return changed

	case EventCopyToClipboard:
		dest := CopyDestination(ev.Destination)
		changed := t.CopyDestination == CopyNone || t.CopyDestination != dest
		t.CopyDestination = dest
		return changed

	case EventClipboardFailure:
		t.ClipboardFailure = true
		return true

	case EventInputReceived:
		// Any keystroke clears transient clipboard messages.
		changed := t.CopyDestination != CopyNone || t.ClipboardFailure
		t.CopyDestination = CopyNone
		t.ClipboardFailure = false
		return changed

	case EventResize:
		changed := ev.Cols != t.Cols
		t.Cols = ev.Cols
		return changed
	}
	return false
}

// ActiveTab returns the active tab, or nil when none is marked active.
func (t *Tracker) ActiveTab() *Tab {
	for i := range t.Tabs {
		if t.Tabs[i].Active {
			return &t.Tabs[i]
		}
	}
	return nil
}

// BaseModeIsLocked reports whether the host's base input mode is
// locked, which blanks the hint line while in locked mode.
func (t *Tracker) BaseModeIsLocked() bool {
	return t.BaseMode == keybind.ModeLocked
}
