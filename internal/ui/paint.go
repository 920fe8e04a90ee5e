package ui

import (
	"strings"

	"slidedeck/internal/render"
	"slidedeck/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	columnGap     = 4
	minColumnWide = 24
)

// Painter turns render trees into terminal text at a fixed width.
type Painter struct {
	width int
	bar   progress.Model
}

// NewPainter returns a painter for the given terminal width.
func NewPainter(width int) *Painter {
	p := &Painter{
		bar: progress.New(
			progress.WithSolidFill(ColorAccent),
			progress.WithoutPercentage(),
		),
	}
	p.SetWidth(width)
	return p
}

// SetWidth changes the paint width. Non-positive widths use the default.
func (p *Painter) SetWidth(width int) {
	if width <= 0 {
		width = defaultWidth
	}
	p.width = width
}

// Width returns the current paint width.
func (p *Painter) Width() int { return p.width }

// Paint renders any node at the painter's width. A nil node paints empty.
func (p *Painter) Paint(n *render.Node) string {
	return p.paint(n, p.width)
}

func (p *Painter) paint(n *render.Node, width int) string {
	if n == nil {
		return ""
	}
	switch n.Role {
	case render.RoleContent:
		return p.paintContent(n, width)
	case render.RoleTag:
		return Styles.Tag.Render(n.Text)
	case render.RoleHeading:
		return p.paintHeading(n, width)
	case render.RoleSubheading:
		return paragraph(Styles.Subtitle, n.Text, width)
	case render.RoleParagraph:
		return paragraph(Styles.Lead, n.Text, width)
	case render.RoleList:
		return p.paintList(n, width)
	case render.RoleColumns:
		return p.paintColumns(n, width)
	case render.RoleColumn:
		return p.paintBlocks(n.Children, width, "\n")
	case render.RoleTree:
		var lines []string
		for _, c := range n.Children {
			lines = append(lines, treeLines(c, "", true, true, width)...)
		}
		return strings.Join(lines, "\n")
	case render.RoleTreeNode, render.RoleTreeLeaf:
		return strings.Join(treeLines(n, "", true, true, width), "\n")
	case render.RoleProgress:
		return p.ProgressBar(n.Value, width)
	case render.RoleCounter:
		return Styles.Counter.Render(n.Text)
	case render.RoleButton:
		return PaintButton(n)
	default:
		return p.paintBlocks(n.Children, width, "\n")
	}
}

func (p *Painter) paintContent(n *render.Node, width int) string {
	return p.paintBlocks(n.Children, width, "\n\n")
}

func (p *Painter) paintBlocks(children []*render.Node, width int, sep string) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		if s := p.paint(c, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

func (p *Painter) paintHeading(n *render.Node, width int) string {
	style := Styles.H2
	switch n.Level {
	case 1:
		style = Styles.H1
		return paragraph(style, strings.ToUpper(n.Text), width)
	case 3:
		style = Styles.H3
	}
	return paragraph(style, n.Text, width)
}

func (p *Painter) paintList(n *render.Node, width int) string {
	itemStyle := Styles.Body
	if n.Class == "slide__names" {
		itemStyle = Styles.Names
	}
	var lines []string
	for _, item := range n.Children {
		for i, line := range textutil.Hang("  ", item.Text, width) {
			if i == 0 {
				line = Styles.Bullet.Render(IconBullet) + " " + itemStyle.Render(strings.TrimPrefix(line, "  "))
			} else {
				line = itemStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// paintColumns lays sections side by side, or stacks them when the terminal
// is too narrow for every column to get minColumnWide cells.
func (p *Painter) paintColumns(n *render.Node, width int) string {
	count := len(n.Children)
	if count == 0 {
		return ""
	}
	colWidth := (width - columnGap*(count-1)) / count
	if colWidth < minColumnWide {
		return p.paintBlocks(n.Children, width, "\n\n")
	}
	cols := make([]string, 0, 2*count-1)
	for i, c := range n.Children {
		if i > 0 {
			cols = append(cols, strings.Repeat(" ", columnGap))
		}
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Render(p.paint(c, colWidth)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// treeLines draws a rendered tree node with box-drawing connectors. Leaves
// carry IconLeaf so they read differently from organizational units.
func treeLines(n *render.Node, prefix string, last, root bool, width int) []string {
	connector := ""
	childPrefix := prefix
	if !root {
		connector = "├─ "
		childPrefix += "│  "
		if last {
			connector = "└─ "
			childPrefix = prefix + "   "
		}
	}
	branchText := prefix + connector
	room := width - textutil.VisualWidth(branchText)

	label := render.TreeLabel(n)
	var line string
	switch {
	case room <= 0:
		// Nested past the terminal width: only the connectors fit.
		branchText = textutil.Truncate(branchText, width)
	case n.Role == render.RoleTreeLeaf:
		line = Styles.TreeLeaf.Render(textutil.Truncate(IconLeaf+" "+label, room))
	default:
		line = Styles.TreeLabel.Render(textutil.Truncate(label, room))
	}
	lines := []string{Styles.TreeBranch.Render(branchText) + line}

	kids := render.TreeChildren(n)
	for i, c := range kids {
		lines = append(lines, treeLines(c, childPrefix, i == len(kids)-1, false, width)...)
	}
	return lines
}

// ProgressBar renders a bar filled to percent of width.
func (p *Painter) ProgressBar(percent, width int) string {
	p.bar.Width = width
	return p.bar.ViewAs(float64(percent) / 100)
}

// PaintButton renders a control button; disabled buttons are dimmed.
func PaintButton(n *render.Node) string {
	label := n.Text
	switch n.Key {
	case render.ButtonPrev:
		label = IconPrev + " " + label
	case render.ButtonNext:
		label = label + " " + IconNext
	}
	if n.Disabled {
		return Styles.ButtonDisabled.Render(label)
	}
	return Styles.Button.Render(label)
}

func paragraph(style lipgloss.Style, s string, width int) string {
	lines := textutil.Wrap(s, width)
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}
