package keys

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Action represents a keybinding action.
type Action struct {
	Key         tcell.Key
	Rune        rune
	Description string
	Handler     func()
	Visible     bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

type binding struct {
	name   string
	action *Action
}

// Registry holds keybindings by scope, in registration order.
type Registry struct {
	global []binding
	views  map[string][]binding
}

// NewRegistry creates a new keybinding registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string][]binding)}
}

// AddGlobal registers a binding active on every page. Re-using a name
// replaces the earlier binding.
func (r *Registry) AddGlobal(name string, action *Action) {
	r.global = upsert(r.global, name, action)
}

// AddView registers a binding active only on the given page.
func (r *Registry) AddView(view, name string, action *Action) {
	r.views[view] = upsert(r.views[view], name, action)
}

func upsert(list []binding, name string, action *Action) []binding {
	for i := range list {
		if list[i].name == name {
			list[i].action = action
			return list
		}
	}
	return append(list, binding{name: name, action: action})
}

// Hints returns visible descriptions for a page, page bindings first.
func (r *Registry) Hints(view string) []string {
	var hints []string
	for _, b := range append(append([]binding(nil), r.views[view]...), r.global...) {
		if b.action.Visible {
			hints = append(hints, b.action.Description)
		}
	}
	return hints
}

// HandleEvent dispatches a key event to the first matching action for the
// page. Returns true if a handler ran.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	for _, list := range [][]binding{r.views[view], r.global} {
		for _, b := range list {
			if b.action.Matches(ev) {
				b.action.Handler()
				return true
			}
		}
	}
	return false
}

// Runes of the global bindings.
const (
	QuitRune = 'q'
	HelpRune = '?'
)

// ParseBindable is ParseKey for a configurable binding. It rejects the global
// quit and help runes and the navigation arrows, which a view binding would
// shadow.
func ParseBindable(name string) (tcell.Key, rune, error) {
	key, r, err := ParseKey(name)
	if err != nil {
		return 0, 0, err
	}
	switch {
	case key == tcell.KeyRune && (r == QuitRune || r == HelpRune):
		return 0, 0, fmt.Errorf("key %q is reserved", name)
	case key == tcell.KeyUp || key == tcell.KeyDown:
		return 0, 0, fmt.Errorf("key %q is reserved for navigation", name)
	}
	return key, r, nil
}

// ParseKey turns a name such as "Enter", "F5", "Ctrl-O" or "x" into the key
// (and rune, for printable keys) an Action matches.
func ParseKey(name string) (tcell.Key, rune, error) {
	if name == "" {
		return 0, 0, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return tcell.KeyRune, r, nil
	}
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, 0, nil
		}
	}
	return 0, 0, fmt.Errorf("unknown key %q", name)
}
