package deck

import "errors"

// ErrEmptyDeck is returned when a deck would contain no slides. Progress is
// undefined for an empty deck, so this is rejected before anything renders.
var ErrEmptyDeck = errors.New("deck has no slides")

// Meta is page-level metadata handed to the host document.
type Meta struct {
	Title       string
	Description string
	Language    string
}

// Deck is the ordered, read-only slide sequence of one presentation.
// A nil entry stands for a slide whose variant was not recognized; renderers
// show nothing for it.
type Deck struct {
	meta   Meta
	slides []Slide
}

// New builds a deck from slides. The slice is copied so later changes by the
// caller do not leak into the session.
func New(meta Meta, slides ...Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	cp := make([]Slide, len(slides))
	copy(cp, slides)
	return &Deck{meta: meta, slides: cp}, nil
}

// Len returns the number of slides. Always at least 1.
func (d *Deck) Len() int {
	return len(d.slides)
}

// At returns the slide at i, or nil when i is out of range or the slot holds
// an unrecognized variant.
func (d *Deck) At(i int) Slide {
	if i < 0 || i >= len(d.slides) {
		return nil
	}
	return d.slides[i]
}

// Meta returns the deck's page metadata.
func (d *Deck) Meta() Meta {
	return d.meta
}
