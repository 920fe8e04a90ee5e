package deck

// Kind identifies a slide variant. It matches the `type` field of the YAML
// deck format.
type Kind string

const (
	KindTitle    Kind = "title"
	KindList     Kind = "list"
	KindSections Kind = "sections"
	KindDiagram  Kind = "diagram"
)

// Slide is one of TitleSlide, ListSlide, SectionsSlide or DiagramSlide.
// The set is closed: the unexported marker keeps other packages from adding
// variants, so a type switch over the four is exhaustive.
type Slide interface {
	Kind() Kind
	Heading() string
	slide()
}

// TitleSlide opens a deck.
type TitleSlide struct {
	Tag      string // optional badge shown above the title
	Title    string
	Subtitle string
	Names    []string // authors; each name doubles as its identity key
}

// ListSlide is a heading with bullet points.
type ListSlide struct {
	Title string
	Items []string
}

// Section is one column of a SectionsSlide.
type Section struct {
	Heading string
	Points  []string
}

// SectionsSlide lays its sections out side by side.
type SectionsSlide struct {
	Title    string
	Sections []Section
}

// DiagramSlide shows the demonstration tree rooted at RootDN.
type DiagramSlide struct {
	Title       string
	Description string
	RootDN      string
}

func (TitleSlide) Kind() Kind    { return KindTitle }
func (ListSlide) Kind() Kind     { return KindList }
func (SectionsSlide) Kind() Kind { return KindSections }
func (DiagramSlide) Kind() Kind  { return KindDiagram }

func (s TitleSlide) Heading() string    { return s.Title }
func (s ListSlide) Heading() string     { return s.Title }
func (s SectionsSlide) Heading() string { return s.Title }
func (s DiagramSlide) Heading() string  { return s.Title }

func (TitleSlide) slide()    {}
func (ListSlide) slide()     {}
func (SectionsSlide) slide() {}
func (DiagramSlide) slide()  {}

// Tree returns a freshly built demonstration tree for the slide.
func (s DiagramSlide) Tree() *TreeNode {
	return DemoTree(s.RootDN)
}
