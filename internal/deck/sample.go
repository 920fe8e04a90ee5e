package deck

import (
	_ "embed"
	"fmt"
)

//go:embed content/ldap.yaml
var sampleYAML []byte

// Sample returns the built-in LDAP introduction deck.
func Sample() *Deck {
	d, err := Parse(sampleYAML)
	if err != nil {
		// Embedded at compile time; a failure here is a build defect.
		panic(fmt.Sprintf("deck: embedded sample: %v", err))
	}
	return d
}

// SampleYAML returns the raw YAML of the built-in deck, handy as a template
// for authoring new decks.
func SampleYAML() []byte {
	out := make([]byte, len(sampleYAML))
	copy(out, sampleYAML)
	return out
}
