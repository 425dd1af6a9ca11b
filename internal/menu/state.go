// Package menu holds the selectable games menu: a fixed list of labels, the
// current selection and the pure render description drawn by the TUI.
package menu

import "fmt"

// DefaultItems are the entries of the games archive screen.
var DefaultItems = []string{"tetris", "snake_eats_apples"}

// Key is a logical key code. Only Up and Down move the selection.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "other"
	}
}

// Convention fixes which direction key advances to the next item.
type Convention int

const (
	// UpNext moves to the next item on Up and to the previous one on Down.
	UpNext Convention = iota
	// DownNext is the mirror of UpNext.
	DownNext
)

func (c Convention) String() string {
	if c == DownNext {
		return "down-next"
	}
	return "up-next"
}

// ParseConvention accepts "up-next" or "down-next". Empty means UpNext.
func ParseConvention(s string) (Convention, error) {
	switch s {
	case "", "up-next":
		return UpNext, nil
	case "down-next":
		return DownNext, nil
	}
	return UpNext, fmt.Errorf("unknown navigation convention %q: want up-next or down-next", s)
}

// State is the menu's items and selection. The zero value is an empty menu.
type State struct {
	items      []string
	selected   int
	convention Convention
}

// Option configures a State at construction.
type Option func(*State)

// WithConvention sets the direction mapping.
func WithConvention(c Convention) Option {
	return func(s *State) { s.convention = c }
}

// New creates a menu over a copy of items with the first item selected.
func New(items []string, opts ...Option) *State {
	s := &State{items: append([]string(nil), items...)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset selects the first item again.
func (s *State) Reset() {
	s.selected = 0
}

// Len returns the number of items.
func (s *State) Len() int { return len(s.items) }

// Items returns a copy of the labels in display order.
func (s *State) Items() []string {
	return append([]string(nil), s.items...)
}

// Convention returns the direction mapping in use.
func (s *State) Convention() Convention { return s.convention }

// Selected returns the selected index. ok is false for an empty menu.
func (s *State) Selected() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.selected, true
}

// SelectedLabel returns the label of the selected item.
func (s *State) SelectedLabel() (string, bool) {
	i, ok := s.Selected()
	if !ok {
		return "", false
	}
	return s.items[i], true
}

// Activate returns the label to act on. No key is bound to it here; the host
// decides what triggers activation and what to do with the label.
func (s *State) Activate() (string, bool) {
	return s.SelectedLabel()
}

// HandleKey applies k and reports whether the selection moved.
func (s *State) HandleKey(k Key) bool {
	next := Next(*s, k)
	moved := next.selected != s.selected
	*s = next
	return moved
}

// Next returns the state after pressing k. s is not modified.
func Next(s State, k Key) State {
	last := len(s.items) - 1
	if last < 0 {
		return s
	}
	var step int
	switch k {
	case KeyUp:
		step = 1
	case KeyDown:
		step = -1
	default:
		return s
	}
	if s.convention == DownNext {
		step = -step
	}

	switch {
	case step > 0 && s.selected >= last:
		s.selected = 0
	case step > 0:
		s.selected++
	case s.selected <= 0:
		s.selected = last
	default:
		s.selected--
	}
	return s
}
