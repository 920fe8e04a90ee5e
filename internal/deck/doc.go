// Package deck holds the slide model: the four slide variants, the immutable
// Deck that sequences them, and the fixed demonstration tree used by diagram
// slides.
//
// Decks are authored as YAML (see Parse) or taken from the embedded sample
// (see Sample). A Deck never changes once constructed; navigation state lives
// in package nav and only ever refers to a slide by index.
package deck
