package keybind

import "testing"

func TestParseMode_RoundTrip(t *testing.T) {
	for m, name := range modeNames {
		parsed, err := ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", name, err)
		}
		if parsed != m {
			t.Errorf("ParseMode(%q) = %v, want %v", name, parsed, m)
		}
	}
}

func TestParseMode_Unknown(t *testing.T) {
	if _, err := ParseMode("warp"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"f", Key{Bare: "f"}},
		{"Ctrl+p", Key{Bare: "p", Mods: ModCtrl}},
		{"Ctrl+Alt+Left", Key{Bare: "Left", Mods: ModCtrl | ModAlt}},
		{"shift+Tab", Key{Bare: "Tab", Mods: ModShift}},
		{"+", Key{Bare: "+"}},
		{"Ctrl++", Key{Bare: "+", Mods: ModCtrl}},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseKey_Invalid(t *testing.T) {
	for _, in := range []string{"", "Hyper+x", "Ctrl+"} {
		if _, err := ParseKey(in); err == nil {
			t.Errorf("ParseKey(%q): expected error", in)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key{Bare: "p", Mods: ModCtrl}, "Ctrl p"},
		{Key{Bare: "Left"}, "←"},
		{Key{Bare: "PageDown"}, "PgDn"},
		{Key{Bare: "x", Mods: ModCtrl | ModShift}, "Ctrl-Shift x"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCommonModifiers(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want Modifier
	}{
		{"empty", nil, 0},
		{"single", []Key{{Bare: "a", Mods: ModCtrl}}, ModCtrl},
		{"shared ctrl", []Key{
			{Bare: "a", Mods: ModCtrl | ModAlt},
			{Bare: "b", Mods: ModCtrl},
		}, ModCtrl},
		{"disjoint", []Key{
			{Bare: "a", Mods: ModAlt},
			{Bare: "b", Mods: ModCtrl},
		}, 0},
	}
	for _, tt := range tests {
		if got := CommonModifiers(tt.keys); got != tt.want {
			t.Errorf("%s: CommonModifiers = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestActionKey(t *testing.T) {
	bindings := Default()[ModeNormal]

	keys := ActionKey(bindings, []Action{SwitchToMode(ModePane)})
	if len(keys) != 1 || keys[0] != (Key{Bare: "p", Mods: ModCtrl}) {
		t.Errorf("ActionKey(switch pane) = %v", keys)
	}

	// A prefix of a longer sequence must not match.
	paneBindings := Default()[ModePane]
	if keys := ActionKey(paneBindings, []Action{{Name: ActNewPane}}); keys != nil {
		t.Errorf("ActionKey should require full sequence match, got %v", keys)
	}
}

func TestDefault_ResizeIncreaseKey(t *testing.T) {
	resize := Default()[ModeResize]
	keys := ActionKey(resize, []Action{{Name: ActResize, Arg: "increase"}})
	if len(keys) != 1 || keys[0] != (Key{Bare: "+"}) {
		t.Errorf("resize increase key = %v, want +", keys)
	}
}

func TestSingleActionKey(t *testing.T) {
	paneBindings := Default()[ModePane]

	keys := SingleActionKey(paneBindings, []Action{{Name: ActNewPane}, ToNormal})
	if len(keys) != 1 || keys[0] != (Key{Bare: "n"}) {
		t.Errorf("SingleActionKey(new_pane) = %v", keys)
	}

	if keys := SingleActionKey(paneBindings, []Action{{Name: ActDetach}}); keys != nil {
		t.Errorf("SingleActionKey(detach) in pane mode = %v, want nil", keys)
	}
}

func TestActionKeyGroup(t *testing.T) {
	paneBindings := Default()[ModePane]
	keys := ActionKeyGroup(paneBindings,
		[]Action{{Name: ActMoveFocus, Arg: "left"}},
		[]Action{{Name: ActMoveFocus, Arg: "down"}},
		[]Action{{Name: ActMoveFocus, Arg: "up"}},
		[]Action{{Name: ActMoveFocus, Arg: "right"}},
	)
	if len(keys) != 4 {
		t.Fatalf("ActionKeyGroup(move focus) = %v, want 4 keys", keys)
	}
	want := "hjkl"
	var got string
	for _, k := range keys {
		got += k.Bare
	}
	if got != want {
		t.Errorf("focus group order = %q, want %q", got, want)
	}
}

func TestParseKeymap(t *testing.T) {
	data := []byte(`modes:
  normal:
    - key: Ctrl+p
      actions:
        - name: switch_to_mode
          arg: pane
  pane:
    - key: n
      actions:
        - name: new_pane
        - name: switch_to_mode
          arg: normal
`)
	km, err := ParseKeymap(data)
	if err != nil {
		t.Fatalf("ParseKeymap: %v", err)
	}

	keys := ActionKey(km[ModeNormal], []Action{SwitchToMode(ModePane)})
	if len(keys) != 1 || keys[0].Bare != "p" || keys[0].Mods != ModCtrl {
		t.Errorf("normal mode lookup = %v", keys)
	}
	if len(km[ModePane]) != 1 || len(km[ModePane][0].Actions) != 2 {
		t.Errorf("pane bindings = %+v", km[ModePane])
	}
}

func TestParseKeymap_Errors(t *testing.T) {
	cases := []string{
		"modes:\n  warp:\n    - key: a\n      actions: [{name: quit}]\n",
		"modes:\n  normal:\n    - key: Hyper+a\n      actions: [{name: quit}]\n",
		"modes:\n  normal:\n    - key: a\n      actions: []\n",
	}
	for i, c := range cases {
		if _, err := ParseKeymap([]byte(c)); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
