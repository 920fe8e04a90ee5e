package ui

import (
	"slidedeck/internal/input"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyIdentifier translates a Bubble Tea key into the key identifier the
// input package binds against. Keys without a translation keep their Bubble
// Tea spelling, which never collides with the whitelist.
func KeyIdentifier(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRight:
		return input.KeyArrowRight
	case tea.KeyLeft:
		return input.KeyArrowLeft
	case tea.KeyPgDown:
		return input.KeyPageDown
	case tea.KeyPgUp:
		return input.KeyPageUp
	case tea.KeyHome:
		return input.KeyHome
	case tea.KeyEnd:
		return input.KeyEnd
	case tea.KeySpace:
		return input.KeySpace
	}
	return msg.String()
}
