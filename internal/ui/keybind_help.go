package ui

import (
	"slidedeck/internal/input"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	m.Styles.FullKey = m.Styles.ShortKey
	m.Styles.FullDesc = Styles.Hint
	m.Styles.FullSeparator = Styles.Hint
	return m
}

// helpKeyMap combines the slide navigation whitelist with app-level keys.
type helpKeyMap struct {
	deck input.KeyMap
	app  []key.Binding
}

func (km helpKeyMap) ShortHelp() []key.Binding {
	return append(km.deck.ShortHelp(), km.app...)
}

func (km helpKeyMap) FullHelp() [][]key.Binding {
	return append(km.deck.FullHelp(), km.app)
}

// HelpView is the key reference overlay opened with "?".
type HelpView struct {
	keys  helpKeyMap
	model help.Model
}

// NewHelpView builds the overlay from the deck's mapper and the app registry.
func NewHelpView(m *input.Mapper, reg *KeybindRegistry) *HelpView {
	if m == nil {
		m = input.NewMapper()
	}
	km := helpKeyMap{deck: input.NewKeyMap(m)}
	if reg != nil {
		km.app = reg.HelpBindings()
	}
	model := newHelpModel()
	model.ShowAll = true
	return &HelpView{keys: km, model: model}
}

// Init implements View.
func (h *HelpView) Init() tea.Cmd { return nil }

// Update implements View. The overlay is static; dismissal is handled by
// the overlay stack.
func (h *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		h.model.Width = ws.Width
	}
	return h, nil
}

// View implements View.
func (h *HelpView) View() string {
	content := Styles.Title.Render("Keys") + "\n\n" +
		h.model.FullHelpView(h.keys.FullHelp()) + "\n\n" +
		Styles.Hint.Render("esc close")
	return Styles.Box.Render(content)
}
