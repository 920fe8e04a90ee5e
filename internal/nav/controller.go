// Package nav holds the slide position state machine.
package nav

import "errors"

// ErrEmptyDeck is returned by New for a deck length below 1.
var ErrEmptyDeck = errors.New("nav: deck length must be at least 1")

// Controller tracks the current slide index. Every transition clamps to
// [0, Len()-1], so no sequence of calls can leave the valid range.
type Controller struct {
	index  int
	length int

	// OnChange, if set, is called after the index changes. Clamped no-ops
	// do not fire it.
	OnChange func(from, to int)
}

// New creates a controller positioned on the first slide.
func New(length int) (*Controller, error) {
	if length < 1 {
		return nil, ErrEmptyDeck
	}
	return &Controller{length: length}, nil
}

// Next advances one slide. No-op on the last slide.
func (c *Controller) Next() {
	c.set(min(c.length-1, c.index+1))
}

// Prev goes back one slide. No-op on the first slide.
func (c *Controller) Prev() {
	c.set(max(0, c.index-1))
}

// First jumps to the first slide.
func (c *Controller) First() {
	c.set(0)
}

// Last jumps to the last slide.
func (c *Controller) Last() {
	c.set(c.length - 1)
}

// Index returns the 0-based current slide.
func (c *Controller) Index() int { return c.index }

// Len returns the deck length the controller was built for.
func (c *Controller) Len() int { return c.length }

// AtFirst reports whether the first slide is showing.
func (c *Controller) AtFirst() bool { return c.index == 0 }

// AtLast reports whether the last slide is showing.
func (c *Controller) AtLast() bool { return c.index == c.length-1 }

// Progress returns round((index+1)/len * 100) with halves rounded up.
// It is 100 exactly on the last slide.
func (c *Controller) Progress() int {
	return (200*(c.index+1) + c.length) / (2 * c.length)
}

func (c *Controller) set(to int) {
	from := c.index
	if from == to {
		return
	}
	c.index = to
	if c.OnChange != nil {
		c.OnChange(from, to)
	}
}
