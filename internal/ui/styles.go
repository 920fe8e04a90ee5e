package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - headings, progress
	ColorHighlight = "205" // Magenta - section headings, active buttons
	ColorMuted     = "241" // Gray - hints, counter, tree branches
	ColorText      = "252" // Light gray - body text
	ColorDim       = "238" // Dark gray - disabled controls
	ColorTagBg     = "62"  // Indigo - title slide badge
)

// Tree and list glyphs
const (
	IconBullet = "•"
	IconLeaf   = "◆"
	IconPrev   = "‹"
	IconNext   = "›"
)

// Styles contains the style definitions used by the painter and overlays.
var Styles = struct {
	// Slide text
	H1       lipgloss.Style // Title slide heading
	H2       lipgloss.Style // Content slide heading
	H3       lipgloss.Style // Section column heading
	Subtitle lipgloss.Style
	Lead     lipgloss.Style // Diagram description
	Tag      lipgloss.Style // Title slide badge
	Body     lipgloss.Style
	Names    lipgloss.Style // Author list on the title slide
	Bullet   lipgloss.Style

	// Tree
	TreeBranch lipgloss.Style
	TreeLabel  lipgloss.Style
	TreeLeaf   lipgloss.Style

	// Chrome
	Counter        lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Hint           lipgloss.Style
	Box            lipgloss.Style // Overlay frame
	Title          lipgloss.Style // Overlay title
}{
	H1: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	H2: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	H3: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Subtitle: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorText)),
	Lead: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Tag: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorTagBg)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Names: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Bullet: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	TreeBranch: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TreeLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TreeLeaf: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Counter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorHighlight)),
	ButtonDisabled: lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(ColorDim)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
}
