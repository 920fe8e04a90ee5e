package deck

import "fmt"

// Finding is one authoring problem reported by Lint.
type Finding struct {
	Slide   int // 1-based slide number
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("slide %d: %s", f.Slide, f.Message)
}

// Lint reports authoring mistakes that renderers tolerate but that break
// identity keys or leave a slide blank. Nothing here is enforced at runtime.
func Lint(d *Deck) []Finding {
	var out []Finding
	add := func(i int, format string, args ...any) {
		out = append(out, Finding{Slide: i + 1, Message: fmt.Sprintf(format, args...)})
	}
	for i, s := range d.slides {
		if s == nil {
			add(i, "unrecognized slide type, renders empty")
			continue
		}
		if s.Heading() == "" {
			add(i, "%s slide has no title", s.Kind())
		}
		switch s := s.(type) {
		case TitleSlide:
			for _, dup := range duplicates(s.Names) {
				add(i, "duplicate name %q", dup)
			}
		case ListSlide:
			for _, dup := range duplicates(s.Items) {
				add(i, "duplicate item %q", dup)
			}
		case SectionsSlide:
			headings := make([]string, len(s.Sections))
			for j, sec := range s.Sections {
				headings[j] = sec.Heading
				for _, dup := range duplicates(sec.Points) {
					add(i, "section %q: duplicate point %q", sec.Heading, dup)
				}
			}
			for _, dup := range duplicates(headings) {
				add(i, "duplicate section heading %q", dup)
			}
		case DiagramSlide:
			if s.RootDN == "" {
				add(i, "diagram has no rootDn")
			}
		}
	}
	return out
}

// duplicates returns each value that appears more than once, in order of
// its second occurrence.
func duplicates(values []string) []string {
	seen := make(map[string]int, len(values))
	var out []string
	for _, v := range values {
		seen[v]++
		if seen[v] == 2 {
			out = append(out, v)
		}
	}
	return out
}
