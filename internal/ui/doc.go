// Package ui is the terminal host of the slide deck, built on Bubble Tea.
//
// Pieces:
//   - DeckView: the deck shell; owns the navigation controller and the key
//     subscription for as long as it is mounted
//   - Painter: turns render trees into lipgloss-styled text
//   - AppModel: root model with app-level keys (quit, help) and an overlay
//     stack for the help screen
package ui
