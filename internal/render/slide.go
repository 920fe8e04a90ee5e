package render

import "slidedeck/internal/deck"

// Slide renders one slide by variant. It returns nil for a nil or
// unrecognized slide so one bad entry never takes down the deck.
func Slide(s deck.Slide) *Node {
	switch s := s.(type) {
	case deck.TitleSlide:
		return titleSlide(s)
	case deck.ListSlide:
		return el(RoleContent, "slide__content",
			heading(2, s.Title),
			bullets("", s.Items),
		)
	case deck.SectionsSlide:
		return sectionsSlide(s)
	case deck.DiagramSlide:
		return el(RoleContent, "slide__content",
			heading(2, s.Title),
			text(RoleParagraph, "slide__lead", s.Description),
			el(RoleTree, "tree", Tree(s.Tree())),
		)
	default:
		return nil
	}
}

func titleSlide(s deck.TitleSlide) *Node {
	n := el(RoleContent, "slide__title")
	if s.Tag != "" {
		n.Children = append(n.Children, text(RoleTag, "slide__tag", s.Tag))
	}
	n.Children = append(n.Children,
		heading(1, s.Title),
		text(RoleSubheading, "slide__subtitle", s.Subtitle),
		bullets("slide__names", s.Names),
	)
	return n
}

func sectionsSlide(s deck.SectionsSlide) *Node {
	cols := el(RoleColumns, "slide__columns")
	for _, sec := range s.Sections {
		col := el(RoleColumn, "slide__column",
			heading(3, sec.Heading),
			bullets("", sec.Points),
		)
		col.Key = sec.Heading
		cols.Children = append(cols.Children, col)
	}
	return el(RoleContent, "slide__content", heading(2, s.Title), cols)
}
