package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("j") != nil {
		t.Error("expected j to have a nil command")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_Handle(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("x", func() tea.Msg {
		executed = true
		return nil
	})

	consumed, cmd := reg.Handle(keyMsg("x"))
	if !consumed || cmd == nil {
		t.Fatalf("x: consumed=%v cmd=%v", consumed, cmd)
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}

	consumed, cmd = reg.Handle(keyMsg("right"))
	if consumed || cmd != nil {
		t.Errorf("right: consumed=%v cmd=%v, want unhandled", consumed, cmd)
	}
}

func TestKeybindRegistry_HelpBindingsMergesSharedDescriptions(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("?", tea.Quit, "help")

	got := reg.HelpBindings()
	if len(got) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(got))
	}
	if got[0].Help().Key != "?" || got[0].Help().Desc != "help" {
		t.Errorf("first binding = %+v", got[0].Help())
	}
	if got[1].Help().Key != "ctrl+c/q" || got[1].Help().Desc != "quit" {
		t.Errorf("second binding = %+v", got[1].Help())
	}
}

func TestKeybindRegistry_HintsFallsBackToKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("x", tea.Quit)
	if got := reg.Hints()["x"]; got != "x" {
		t.Errorf("hint for x = %q, want x", got)
	}
}

// keyMsg builds a tea.KeyMsg from its String() spelling.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
