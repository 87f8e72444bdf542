package keybind

import "fmt"

// Mode is an input mode of the host multiplexer. The set is closed:
// rendering dispatches on the variant, never on raw strings.
type Mode int

const (
	ModeNormal Mode = iota
	ModeLocked
	ModePane
	ModeTab
	ModeResize
	ModeMove
	ModeScroll
	ModeSearch
	ModeSession
	ModeEnterSearch
	ModeRenamePane
	ModeRenameTab
)

var modeNames = map[Mode]string{
	ModeNormal:      "normal",
	ModeLocked:      "locked",
	ModePane:        "pane",
	ModeTab:         "tab",
	ModeResize:      "resize",
	ModeMove:        "move",
	ModeScroll:      "scroll",
	ModeSearch:      "search",
	ModeSession:     "session",
	ModeEnterSearch: "enter_search",
	ModeRenamePane:  "rename_pane",
	ModeRenameTab:   "rename_tab",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a host mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return ModeNormal, fmt.Errorf("unknown input mode %q", s)
}

// MarshalText implements encoding.TextMarshaler so Mode round-trips
// through JSON snapshots and YAML keymaps as its name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
