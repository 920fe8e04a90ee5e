package render

import "fmt"

// Labels are the user-facing strings of the deck chrome.
type Labels struct {
	Counter  string // fmt format taking (current, total), 1-based
	Previous string
	Next     string
}

var presets = map[string]Labels{
	"de": {Counter: "Folie %d / %d", Previous: "Zurück", Next: "Weiter"},
	"en": {Counter: "Slide %d / %d", Previous: "Previous", Next: "Next"},
}

// LabelsFor returns the preset for lang, falling back to German, the
// language of the sample deck.
func LabelsFor(lang string) Labels {
	if l, ok := presets[lang]; ok {
		return l
	}
	return presets["de"]
}

// Override replaces every non-empty field of o into l.
func (l Labels) Override(o Labels) Labels {
	if o.Counter != "" {
		l.Counter = o.Counter
	}
	if o.Previous != "" {
		l.Previous = o.Previous
	}
	if o.Next != "" {
		l.Next = o.Next
	}
	return l
}

// CounterText formats the "slide N / total" counter.
func (l Labels) CounterText(index, total int) string {
	return fmt.Sprintf(l.Counter, index+1, total)
}
