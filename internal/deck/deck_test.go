package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmptyDeck(t *testing.T) {
	d, err := New(Meta{})
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
	if d != nil {
		t.Error("expected nil deck")
	}
}

func TestNew_CopiesSlides(t *testing.T) {
	slides := []Slide{ListSlide{Title: "a"}, ListSlide{Title: "b"}}
	d, err := New(Meta{}, slides...)
	require.NoError(t, err)

	slides[0] = ListSlide{Title: "mutated"}
	assert.Equal(t, "a", d.At(0).Heading())
}

func TestDeck_AtOutOfRange(t *testing.T) {
	d, err := New(Meta{}, ListSlide{Title: "only"})
	require.NoError(t, err)

	assert.Nil(t, d.At(-1))
	assert.Nil(t, d.At(1))
	assert.NotNil(t, d.At(0))
}

func TestSample(t *testing.T) {
	d := Sample()
	require.Equal(t, 5, d.Len())

	meta := d.Meta()
	assert.Equal(t, "de", meta.Language)
	assert.Contains(t, meta.Title, "LDAP")

	kinds := []Kind{KindTitle, KindList, KindSections, KindDiagram, KindList}
	for i, want := range kinds {
		s := d.At(i)
		require.NotNil(t, s, "slide %d", i+1)
		assert.Equal(t, want, s.Kind(), "slide %d", i+1)
	}

	title := d.At(0).(TitleSlide)
	assert.Equal(t, "LDAP", title.Tag)
	assert.Equal(t, []string{"Erstellt von: Team Infrastruktur"}, title.Names)

	sections := d.At(2).(SectionsSlide)
	require.Len(t, sections.Sections, 2)
	assert.Equal(t, "Schutzziele", sections.Sections[0].Heading)
	assert.Len(t, sections.Sections[0].Points, 3)

	diagram := d.At(3).(DiagramSlide)
	assert.Equal(t, "dc=schule,dc=de", diagram.RootDN)

	assert.Empty(t, Lint(d), "sample deck should lint clean")
}

func TestParse_UnknownTypeKeepsSlot(t *testing.T) {
	d, err := Parse([]byte(`
slides:
  - type: list
    title: first
    items: [a]
  - type: video
    title: second
  - type: list
    title: third
`))
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())
	assert.Nil(t, d.At(1))
	assert.Equal(t, "third", d.At(2).Heading())
}

func TestParse_EmptySlides(t *testing.T) {
	_, err := Parse([]byte("title: nothing\nslides: []\n"))
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("slides: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, SampleYAML(), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
