package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps app-level keys (quit, help) to commands. Keys use
// tea.KeyMsg.String() spelling: "q", "ctrl+c", "?". Slide navigation keys
// are not registered here; the deck view owns them.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help overlay.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// Handle looks up msg and reports whether it was consumed.
func (r *KeybindRegistry) Handle(msg tea.KeyMsg) (bool, tea.Cmd) {
	if c := r.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// Hints returns bound keys with descriptions (or the key itself when none
// was given).
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil {
			continue
		}
		if d := r.descriptions[k]; d != "" {
			out[k] = d
		} else {
			out[k] = k
		}
	}
	return out
}

// HelpBindings converts the registry into key.Bindings sorted by key, with
// keys sharing a description merged ("q/ctrl+c quit").
func (r *KeybindRegistry) HelpBindings() []key.Binding {
	byDesc := make(map[string][]string)
	for k, d := range r.Hints() {
		byDesc[d] = append(byDesc[d], k)
	}
	descs := make([]string, 0, len(byDesc))
	for d, keys := range byDesc {
		sort.Strings(keys)
		descs = append(descs, d)
	}
	sort.Slice(descs, func(i, j int) bool { return byDesc[descs[i]][0] < byDesc[descs[j]][0] })

	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := byDesc[d]
		label := keys[0]
		for _, k := range keys[1:] {
			label += "/" + k
		}
		out = append(out, key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, d)))
	}
	return out
}
