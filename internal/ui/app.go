package ui

import (
	"slidedeck/internal/deck"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// QuitMsg unmounts the deck and ends the program.
type QuitMsg struct{}

// ToggleHelpMsg opens the help overlay, or closes it when open.
type ToggleHelpMsg struct{}

// AppModel is the root model: the deck view plus an overlay stack for the
// key reference. App-level keys are resolved before the deck sees them.
type AppModel struct {
	Deck     *DeckView
	Overlays OverlayStack
	Keys     *KeybindRegistry

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for d.
func NewAppModel(d *deck.Deck, opts DeckOptions) (*AppModel, error) {
	view, err := NewDeckView(d, opts)
	if err != nil {
		return nil, err
	}
	quit := func() tea.Msg { return QuitMsg{} }
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", quit, "quit")
	reg.BindWithDesc("ctrl+c", quit, "quit")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "help")
	return &AppModel{Deck: view, Keys: reg}, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Deck.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QuitMsg:
		a.Deck.Unmount()
		return a, tea.Quit
	case ToggleHelpMsg:
		if _, ok := a.Overlays.Pop(); ok {
			return a, nil
		}
		help := NewHelpView(a.Deck.Mapper, a.Keys)
		help.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.Overlays.Push(Overlay{View: help, Dismiss: []string{"esc"}})
		return a, nil
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Overlays.UpdateTop(msg)
	case tea.KeyMsg:
		if consumed, cmd := a.Keys.Handle(msg); consumed {
			return a, cmd
		}
		if cmd, handled := a.Overlays.HandleKey(msg); handled {
			return a, cmd
		}
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
	}

	v, cmd := a.Deck.Update(msg)
	if d, ok := v.(*DeckView); ok {
		a.Deck = d
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	top, ok := a.Overlays.Peek()
	if !ok {
		return a.Deck.View()
	}
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	return top.View.View()
}
