// Package input maps keyboard keys onto navigation commands.
//
// Keys are identified by browser KeyboardEvent.key values ("ArrowRight",
// "PageDown", " ", ...). Hosts that use other key names translate before
// dispatching; see the ui package for the terminal translation.
package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// Key identifiers on the whitelist.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyPageDown   = "PageDown"
	KeyPageUp     = "PageUp"
	KeySpace      = " "
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// Action is a navigation command.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionFirst
	ActionLast
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	default:
		return "none"
	}
}

// Navigator is the command surface of the navigation controller.
type Navigator interface {
	Next()
	Prev()
	First()
	Last()
}

// Binding ties keys to an action. SuppressDefault marks keys whose browser
// default (page scrolling) must be prevented.
type Binding struct {
	Action          Action
	Keys            []string
	SuppressDefault bool
	Help            key.Binding
}

// DefaultBindings is the fixed whitelist.
func DefaultBindings() []Binding {
	return []Binding{
		{
			Action:          ActionNext,
			Keys:            []string{KeyArrowRight, KeyPageDown, KeySpace},
			SuppressDefault: true,
			Help:            key.NewBinding(key.WithKeys("right", "pgdown", " "), key.WithHelp("→/pgdn/space", "next")),
		},
		{
			Action:          ActionPrev,
			Keys:            []string{KeyArrowLeft, KeyPageUp},
			SuppressDefault: true,
			Help:            key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←/pgup", "previous")),
		},
		{
			Action: ActionFirst,
			Keys:   []string{KeyHome},
			Help:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		},
		{
			Action: ActionLast,
			Keys:   []string{KeyEnd},
			Help:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		},
	}
}

// Mapper resolves key identifiers against a binding table.
type Mapper struct {
	bindings []Binding
	byKey    map[string]int
}

// NewMapper builds a mapper over the default whitelist.
func NewMapper() *Mapper {
	return NewMapperWith(DefaultBindings())
}

// NewMapperWith builds a mapper over custom bindings. Later bindings win
// when a key appears twice.
func NewMapperWith(bindings []Binding) *Mapper {
	m := &Mapper{bindings: bindings, byKey: make(map[string]int)}
	for i, b := range bindings {
		for _, k := range b.Keys {
			m.byKey[k] = i
		}
	}
	return m
}

// Lookup returns the binding for key, if any. Keys match exactly; spellings
// such as "Space" are not on the whitelist.
func (m *Mapper) Lookup(k string) (Binding, bool) {
	i, ok := m.byKey[k]
	if !ok {
		return Binding{}, false
	}
	return m.bindings[i], true
}

// Apply runs the command bound to ev.Key on nav and prevents the event's
// default when the binding says so. Unbound keys are left untouched.
func (m *Mapper) Apply(nav Navigator, ev *KeyEvent) Action {
	b, ok := m.Lookup(ev.Key)
	if !ok {
		return ActionNone
	}
	if b.SuppressDefault {
		ev.PreventDefault()
	}
	Do(nav, b.Action)
	return b.Action
}

// SuppressedKeys lists every key identifier whose default is prevented.
// Browser hosts ship this list to the page so scrolling is
// blocked synchronously in the key handler.
func (m *Mapper) SuppressedKeys() []string {
	var out []string
	for _, b := range m.bindings {
		if !b.SuppressDefault {
			continue
		}
		out = append(out, b.Keys...)
	}
	return out
}

// BoundKeys lists every key identifier the mapper reacts to.
func (m *Mapper) BoundKeys() []string {
	var out []string
	for _, b := range m.bindings {
		out = append(out, b.Keys...)
	}
	return out
}

// Do runs a single action on nav.
func Do(nav Navigator, a Action) {
	switch a {
	case ActionNext:
		nav.Next()
	case ActionPrev:
		nav.Prev()
	case ActionFirst:
		nav.First()
	case ActionLast:
		nav.Last()
	}
}

// KeyMap implements help.KeyMap for rendering the whitelist with bubbles/help.
type KeyMap struct {
	bindings []Binding
}

// NewKeyMap returns help bindings for m.
func NewKeyMap(m *Mapper) KeyMap {
	return KeyMap{bindings: m.bindings}
}

// ShortHelp returns the next/previous bindings.
func (km KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range km.bindings {
		if b.Action == ActionNext || b.Action == ActionPrev {
			out = append(out, b.Help)
		}
	}
	return out
}

// FullHelp returns every binding in one column.
func (km KeyMap) FullHelp() [][]key.Binding {
	col := make([]key.Binding, 0, len(km.bindings))
	for _, b := range km.bindings {
		col = append(col, b.Help)
	}
	return [][]key.Binding{col}
}
