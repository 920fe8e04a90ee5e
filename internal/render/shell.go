package render

import (
	"strconv"

	"slidedeck/internal/deck"
)

// Button keys on the controls node.
const (
	ButtonPrev = "prev"
	ButtonNext = "next"
)

// Position is the read side of the navigation controller.
type Position interface {
	Index() int
	Len() int
	Progress() int
	AtFirst() bool
	AtLast() bool
}

// Shell renders the whole deck view: progress bar, counter, the current
// slide and the previous/next controls.
func Shell(d *deck.Deck, pos Position, labels Labels) *Node {
	progress := pos.Progress()
	bar := &Node{
		Role:  RoleProgress,
		Class: "deck__progress",
		Value: progress,
		Attrs: map[string]string{"aria-hidden": "true"},
	}
	counter := text(RoleCounter, "deck__counter", labels.CounterText(pos.Index(), pos.Len()))

	slide := &Node{
		Role:  RoleSlide,
		Class: "slide",
		Key:   strconv.Itoa(pos.Index()),
		Attrs: map[string]string{"role": "group", "aria-roledescription": "slide"},
	}
	if content := Slide(d.At(pos.Index())); content != nil {
		slide.Children = append(slide.Children, content)
	}

	controls := &Node{
		Role:  RoleControls,
		Class: "deck__controls",
		Attrs: map[string]string{"aria-label": "Navigation"},
		Children: []*Node{
			{Role: RoleButton, Key: ButtonPrev, Text: labels.Previous, Disabled: pos.AtFirst()},
			{Role: RoleButton, Key: ButtonNext, Text: labels.Next, Disabled: pos.AtLast()},
		},
	}

	return el(RoleDeck, "deck",
		el(RoleMeta, "deck__meta", bar, counter),
		slide,
		controls,
	)
}

// Press invokes the button with key on nav unless the button is disabled in
// the current position. It reports whether anything was invoked.
func Press(button string, pos Position, nav interface {
	Next()
	Prev()
}) bool {
	switch button {
	case ButtonPrev:
		if pos.AtFirst() {
			return false
		}
		nav.Prev()
	case ButtonNext:
		if pos.AtLast() {
			return false
		}
		nav.Next()
	default:
		return false
	}
	return true
}
