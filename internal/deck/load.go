package deck

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk YAML layout of a deck.
type file struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Language    string      `yaml:"language"`
	Slides      []slideFile `yaml:"slides"`
}

// slideFile carries the union of all variant fields; Type selects which
// of them are meaningful.
type slideFile struct {
	Type        Kind          `yaml:"type"`
	Tag         string        `yaml:"tag,omitempty"`
	Title       string        `yaml:"title"`
	Subtitle    string        `yaml:"subtitle,omitempty"`
	Names       []string      `yaml:"names,omitempty"`
	Items       []string      `yaml:"items,omitempty"`
	Sections    []sectionFile `yaml:"sections,omitempty"`
	Description string        `yaml:"description,omitempty"`
	RootDN      string        `yaml:"rootDn,omitempty"`
}

type sectionFile struct {
	Heading string   `yaml:"heading"`
	Points  []string `yaml:"points"`
}

// Load reads and parses a YAML deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a YAML deck. Entries with an unknown type are kept as nil
// slots so slide numbering stays as authored; the renderer skips them.
func Parse(data []byte) (*Deck, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}
	slides := make([]Slide, 0, len(f.Slides))
	for i, sf := range f.Slides {
		s := sf.toSlide()
		if s == nil {
			log.Printf("deck: slide %d: unknown type %q, it will render empty", i+1, sf.Type)
		}
		slides = append(slides, s)
	}
	return New(Meta{
		Title:       f.Title,
		Description: f.Description,
		Language:    f.Language,
	}, slides...)
}

func (sf slideFile) toSlide() Slide {
	switch sf.Type {
	case KindTitle:
		return TitleSlide{Tag: sf.Tag, Title: sf.Title, Subtitle: sf.Subtitle, Names: sf.Names}
	case KindList:
		return ListSlide{Title: sf.Title, Items: sf.Items}
	case KindSections:
		sections := make([]Section, len(sf.Sections))
		for i, s := range sf.Sections {
			sections[i] = Section{Heading: s.Heading, Points: s.Points}
		}
		return SectionsSlide{Title: sf.Title, Sections: sections}
	case KindDiagram:
		return DiagramSlide{Title: sf.Title, Description: sf.Description, RootDN: sf.RootDN}
	default:
		return nil
	}
}
