package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	k := &Keybind{}
	for _, option := range options {
		option(k)
	}
	return *k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = normalizeKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	k.keys = normalizeKeys(keys...)
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the binding takes part in matching and help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

type Help struct {
	Key  string
	Desc string
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	return matchesKey(eventKeyString(event), keybinds...)
}

func matchesKey(key string, keybinds ...Keybind) bool {
	for _, keybind := range keybinds {
		if keybind.Enabled() && slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}

// Map binds actions to keybinds and keeps the order actions were added in.
type Map[A comparable] struct {
	order []A
	binds map[A]Keybind
}

func NewMap[A comparable]() *Map[A] {
	return &Map[A]{binds: make(map[A]Keybind)}
}

// Set binds action to kb, replacing any earlier binding.
func (m *Map[A]) Set(action A, kb Keybind) *Map[A] {
	if _, ok := m.binds[action]; !ok {
		m.order = append(m.order, action)
	}
	m.binds[action] = kb
	return m
}

func (m *Map[A]) Get(action A) (Keybind, bool) {
	kb, ok := m.binds[action]
	return kb, ok
}

// Lookup returns the first action, in insertion order, bound to event.
func (m *Map[A]) Lookup(event *tcell.EventKey) (A, bool) {
	if event == nil {
		var zero A
		return zero, false
	}
	return m.lookup(eventKeyString(event))
}

// LookupKey is Lookup for a key written the way bindings are, e.g. "ctrl+d".
func (m *Map[A]) LookupKey(key string) (A, bool) {
	return m.lookup(normalizeKey(key))
}

func (m *Map[A]) lookup(key string) (A, bool) {
	for _, action := range m.order {
		if matchesKey(key, m.binds[action]) {
			return action, true
		}
	}
	var zero A
	return zero, false
}

// ShortHelp returns the help entries of enabled bindings that carry one.
func (m *Map[A]) ShortHelp() []Help {
	var helps []Help
	for _, action := range m.order {
		kb := m.binds[action]
		if !kb.Enabled() || kb.help.Key == "" {
			continue
		}
		helps = append(helps, kb.help)
	}
	return helps
}

// FormatHelp renders helps on one line as "key desc" pairs joined by sep.
func FormatHelp(helps []Help, sep string) string {
	parts := make([]string, 0, len(helps))
	for _, h := range helps {
		if h.Desc == "" {
			parts = append(parts, h.Key)
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, sep)
}

// Normalize returns the canonical spelling of a key such as "Ctrl+PageDown".
func Normalize(key string) string {
	return normalizeKey(key)
}

func normalizeKeys(keys ...string) []string {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		key = normalizeKey(key)
		if key == "" {
			continue
		}
		normalized = append(normalized, key)
	}
	return normalized
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if key == "+" {
		return key
	}

	parts := strings.Split(key, "+")
	mods := make([]string, 0, len(parts))
	primary := ""
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods = append(mods, "ctrl")
		case "alt":
			mods = append(mods, "alt")
		case "shift":
			mods = append(mods, "shift")
		case "meta":
			mods = append(mods, "meta")
		default:
			primary = normalizePrimaryKey(part)
		}
	}

	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		mods = append(mods, "shift")
		primary = "tab"
	}
	if len(mods) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	if len(mods) == 0 {
		return primary
	}

	slices.SortStableFunc(mods, func(a, b string) int {
		return modRank(a) - modRank(b)
	})
	return strings.Join(append(slices.Compact(mods), primary), "+")
}

func modRank(mod string) int {
	switch mod {
	case "ctrl":
		return 0
	case "alt":
		return 1
	case "shift":
		return 2
	}
	return 3
}

func normalizePrimaryKey(key string) string {
	if strings.HasPrefix(key, "Rune[") && strings.HasSuffix(key, "]") && len(key) >= 7 {
		return key[5 : len(key)-1]
	}

	switch strings.ToLower(key) {
	case "esc", "escape":
		return "esc"
	case "return":
		return "enter"
	case "pageup", "prior":
		return "pgup"
	case "pagedown", "next":
		return "pgdn"
	case "space", " ":
		return "space"
	}

	if len([]rune(key)) == 1 {
		return key
	}
	return strings.ToLower(key)
}

func eventKeyString(event *tcell.EventKey) string {
	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}

	primary := keyName(key)
	if primary == "" && key == tcell.KeyRune {
		primary = normalizePrimaryKey(event.Str())
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}

	mods := make([]string, 0, 4)
	if event.Modifiers()&tcell.ModCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	if event.Modifiers()&tcell.ModAlt != 0 {
		mods = append(mods, "alt")
	}
	if event.Modifiers()&tcell.ModShift != 0 {
		mods = append(mods, "shift")
	}
	if event.Modifiers()&tcell.ModMeta != 0 {
		mods = append(mods, "meta")
	}
	if len(mods) == 0 && primary != "backtab" {
		return primary
	}
	return normalizeKey(strings.Join(append(mods, primary), "+"))
}

func keyName(key tcell.Key) string {
	switch key {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "backtab"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	default:
		return ""
	}
}
