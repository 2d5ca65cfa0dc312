package keybind

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":              {in: "down", want: "down"},
		"aliases":            {in: "PageDown", want: "pgdn"},
		"escape":             {in: "Escape", want: "esc"},
		"modifier order":     {in: "Shift+Ctrl+X", want: "ctrl+shift+x"},
		"duplicate modifier": {in: "ctrl+control+d", want: "ctrl+d"},
		"backtab":            {in: "backtab", want: "shift+tab"},
		"rune name":          {in: "Rune[j]", want: "j"},
		"space":              {in: "Space", want: "space"},
		"case kept alone":    {in: "G", want: "G"},
		"blank":              {in: "  ", want: ""},
		"modifiers only":     {in: "ctrl+", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

type action int

const (
	up action = iota
	down
	top
)

func testMap() *Map[action] {
	return NewMap[action]().
		Set(up, NewKeybind(WithKeys("up", "k"), WithHelp("↑/k", "up"))).
		Set(down, NewKeybind(WithKeys("down", "j"), WithHelp("↓/j", "down"))).
		Set(top, NewKeybind(WithKeys("Home", "g")))
}

func TestMap_LookupKey(t *testing.T) {
	m := testMap()

	tests := map[string]struct {
		key    string
		want   action
		wantOK bool
	}{
		"named key":  {key: "Down", want: down, wantOK: true},
		"rune":       {key: "k", want: up, wantOK: true},
		"no help":    {key: "home", want: top, wantOK: true},
		"unbound":    {key: "x", wantOK: false},
		"wrong mods": {key: "ctrl+j", wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := m.LookupKey(tt.key)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("LookupKey(%q) = %v, %v, want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMap_SetReplacesAndDisables(t *testing.T) {
	m := testMap()
	m.Set(up, NewKeybind(WithKeys("w"), WithDisabled()))

	if _, ok := m.LookupKey("w"); ok {
		t.Errorf("disabled binding matched")
	}
	if _, ok := m.LookupKey("k"); ok {
		t.Errorf("replaced binding still matched")
	}

	kb, _ := m.Get(up)
	kb.SetEnabled(true)
	m.Set(up, kb)
	if got, ok := m.LookupKey("w"); !ok || got != up {
		t.Errorf("re-enabled binding: %v, %v", got, ok)
	}
}

func TestMap_ShortHelp(t *testing.T) {
	m := testMap()
	helps := m.ShortHelp()

	want := []Help{{Key: "↑/k", Desc: "up"}, {Key: "↓/j", Desc: "down"}}
	if !slices.Equal(helps, want) {
		t.Fatalf("ShortHelp() = %v, want %v", helps, want)
	}
	if got := FormatHelp(helps, " • "); got != "↑/k up • ↓/j down" {
		t.Errorf("FormatHelp() = %q", got)
	}
}
