package keybind

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keymap holds the per-mode bindings exported by the host.
type Keymap map[Mode][]Binding

// keymapFile is the on-disk YAML shape:
//
//	modes:
//	  pane:
//	    - key: Ctrl+n
//	      actions:
//	        - name: new_pane
//	        - name: switch_to_mode
//	          arg: normal
type keymapFile struct {
	Modes map[string][]bindingFile `yaml:"modes"`
}

type bindingFile struct {
	Key     string   `yaml:"key"`
	Actions []Action `yaml:"actions"`
}

// LoadKeymap reads a keymap YAML file.
func LoadKeymap(path string) (Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKeymap(data)
}

// ParseKeymap parses keymap YAML.
func ParseKeymap(data []byte) (Keymap, error) {
	var file keymapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	km := Keymap{}
	for modeName, bindings := range file.Modes {
		mode, err := ParseMode(modeName)
		if err != nil {
			return nil, err
		}
		for _, b := range bindings {
			key, err := ParseKey(b.Key)
			if err != nil {
				return nil, fmt.Errorf("mode %s: %w", modeName, err)
			}
			if len(b.Actions) == 0 {
				return nil, fmt.Errorf("mode %s: key %s has no actions", modeName, b.Key)
			}
			km[mode] = append(km[mode], Binding{Key: key, Actions: b.Actions})
		}
	}
	return km, nil
}

func bind(key string, actions ...Action) Binding {
	return Binding{Key: MustKey(key), Actions: actions}
}

// Default returns a keymap with conventional multiplexer bindings.
// Used when the host exports no keymap, and by preview fixtures.
func Default() Keymap {
	act := func(name string) Action { return Action{Name: name} }
	dir := func(name, d string) Action { return Action{Name: name, Arg: d} }
	return Keymap{
		ModeNormal: {
			bind("Ctrl+p", SwitchToMode(ModePane)),
			bind("Ctrl+t", SwitchToMode(ModeTab)),
			bind("Ctrl+n", SwitchToMode(ModeResize)),
			bind("Ctrl+h", SwitchToMode(ModeMove)),
			bind("Ctrl+s", SwitchToMode(ModeScroll)),
			bind("Ctrl+o", SwitchToMode(ModeSession)),
			bind("Ctrl+g", SwitchToMode(ModeLocked)),
			bind("Ctrl+q", act(ActQuit)),
		},
		ModeLocked: {
			bind("Ctrl+g", ToNormal),
		},
		ModePane: {
			bind("n", act(ActNewPane), ToNormal),
			bind("x", act(ActCloseFocus), ToNormal),
			bind("f", act(ActToggleFullscreen), ToNormal),
			bind("w", act(ActToggleFloating), ToNormal),
			bind("e", act(ActToggleEmbed), ToNormal),
			bind("r", dir(ActNewPane, "right"), ToNormal),
			bind("d", dir(ActNewPane, "down"), ToNormal),
			bind("c", SwitchToMode(ModeRenamePane), act(ActPaneNameInput)),
			bind("h", dir(ActMoveFocus, "left")),
			bind("j", dir(ActMoveFocus, "down")),
			bind("k", dir(ActMoveFocus, "up")),
			bind("l", dir(ActMoveFocus, "right")),
			bind("Enter", ToNormal),
		},
		ModeTab: {
			bind("n", act(ActNewTab), ToNormal),
			bind("x", act(ActCloseTab), ToNormal),
			bind("b", act(ActBreakPane), ToNormal),
			bind("s", act(ActToggleTabSync), ToNormal),
			bind("r", SwitchToMode(ModeRenameTab), act(ActTabNameInput)),
			bind("Left", act(ActPreviousTab)),
			bind("Right", act(ActNextTab)),
			bind("Enter", ToNormal),
		},
		ModeResize: {
			bind("+", dir(ActResize, "increase")),
			bind("-", dir(ActResize, "decrease")),
			bind("h", dir(ActResize, "increase_left")),
			bind("j", dir(ActResize, "increase_down")),
			bind("k", dir(ActResize, "increase_up")),
			bind("l", dir(ActResize, "increase_right")),
			bind("H", dir(ActResize, "decrease_left")),
			bind("J", dir(ActResize, "decrease_down")),
			bind("K", dir(ActResize, "decrease_up")),
			bind("L", dir(ActResize, "decrease_right")),
			bind("Enter", ToNormal),
		},
		ModeMove: {
			bind("h", dir(ActMovePane, "left")),
			bind("j", dir(ActMovePane, "down")),
			bind("k", dir(ActMovePane, "up")),
			bind("l", dir(ActMovePane, "right")),
			bind("Enter", ToNormal),
		},
		ModeScroll: {
			bind("s", SwitchToMode(ModeEnterSearch), act(ActSearchInput)),
			bind("Down", act(ActScrollDown)),
			bind("Up", act(ActScrollUp)),
			bind("PageDown", act(ActPageScrollDown)),
			bind("PageUp", act(ActPageScrollUp)),
			bind("d", act(ActHalfPageScrollDown)),
			bind("u", act(ActHalfPageScrollUp)),
			bind("e", act(ActEditScrollback), ToNormal),
			bind("Enter", ToNormal),
		},
		ModeSearch: {
			bind("s", SwitchToMode(ModeEnterSearch), act(ActSearchInput)),
			bind("Down", act(ActScrollDown)),
			bind("Up", act(ActScrollUp)),
			bind("PageDown", act(ActPageScrollDown)),
			bind("PageUp", act(ActPageScrollUp)),
			bind("d", act(ActHalfPageScrollDown)),
			bind("u", act(ActHalfPageScrollUp)),
			bind("n", dir(ActSearch, "down")),
			bind("p", dir(ActSearch, "up")),
			bind("Enter", ToNormal),
		},
		ModeSession: {
			bind("d", act(ActDetach)),
			bind("Enter", ToNormal),
		},
	}
}
