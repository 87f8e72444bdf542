package keybind

// Action names understood by the hint renderer. They mirror the host's
// action vocabulary; anything else is carried through opaquely.
const (
	ActSwitchToMode       = "switch_to_mode"
	ActQuit               = "quit"
	ActDetach             = "detach"
	ActNewPane            = "new_pane"
	ActCloseFocus         = "close_focus"
	ActToggleFullscreen   = "toggle_fullscreen"
	ActToggleFloating     = "toggle_floating_panes"
	ActToggleEmbed        = "toggle_embed_or_floating"
	ActMoveFocus          = "move_focus"
	ActMovePane           = "move_pane"
	ActPaneNameInput      = "pane_name_input"
	ActTabNameInput       = "tab_name_input"
	ActNewTab             = "new_tab"
	ActCloseTab           = "close_tab"
	ActBreakPane          = "break_pane"
	ActToggleTabSync      = "toggle_tab_sync"
	ActPreviousTab        = "previous_tab"
	ActNextTab            = "next_tab"
	ActResize             = "resize"
	ActScrollUp           = "scroll_up"
	ActScrollDown         = "scroll_down"
	ActPageScrollUp       = "page_scroll_up"
	ActPageScrollDown     = "page_scroll_down"
	ActHalfPageScrollUp   = "half_page_scroll_up"
	ActHalfPageScrollDown = "half_page_scroll_down"
	ActEditScrollback     = "edit_scrollback"
	ActSearchInput        = "search_input"
	ActSearch             = "search"
)

// Action is one host action, optionally qualified by an argument
// (a direction, a target mode, a search direction).
type Action struct {
	Name string `yaml:"name" json:"name"`
	Arg  string `yaml:"arg,omitempty" json:"arg,omitempty"`
}

// SwitchToMode builds the mode-switch action for m.
func SwitchToMode(m Mode) Action {
	return Action{Name: ActSwitchToMode, Arg: m.String()}
}

// ToNormal is the ubiquitous "return to normal mode" action.
var ToNormal = Action{Name: ActSwitchToMode, Arg: "normal"}

// Binding associates one key with the action sequence it triggers.
type Binding struct {
	Key     Key
	Actions []Action
}

// ActionKey returns every key bound to exactly the given action
// sequence, in binding order.
func ActionKey(bindings []Binding, actions []Action) []Key {
	var keys []Key
	for _, b := range bindings {
		if len(b.Actions) != len(actions) {
			continue
		}
		match := true
		for i := range actions {
			if b.Actions[i] != actions[i] {
				match = false
				break
			}
		}
		if match {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// ActionKeyGroup unions ActionKey over several action sequences,
// preserving group order. Used for directional clusters (hjkl, arrows).
func ActionKeyGroup(bindings []Binding, groups ...[]Action) []Key {
	var keys []Key
	for _, g := range groups {
		keys = append(keys, ActionKey(bindings, g)...)
	}
	return keys
}

// SingleActionKey returns the first key whose binding starts with the
// first action of the sequence, or nil. Matches bindings that chain a
// trailing mode switch after the interesting action.
func SingleActionKey(bindings []Binding, actions []Action) []Key {
	if len(actions) == 0 {
		return nil
	}
	for _, b := range bindings {
		if len(b.Actions) > 0 && b.Actions[0] == actions[0] {
			return []Key{b.Key}
		}
	}
	return nil
}
