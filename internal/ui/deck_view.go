package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"slidedeck/internal/deck"
	"slidedeck/internal/input"
	"slidedeck/internal/nav"
	"slidedeck/internal/render"
	"slidedeck/internal/telemetry"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DeckOptions configures a DeckView.
type DeckOptions struct {
	Labels    render.Labels
	Telemetry *telemetry.Provider // nil disables tracing
	Verbose   bool                // log every slide transition
}

// buttonSpan is the horizontal extent of a painted button on the footer row.
type buttonSpan struct {
	key        string
	start, end int // [start, end)
}

// DeckView shows one slide at a time with progress, counter and controls.
// While mounted it holds a subscription on its key source; Unmount releases
// it so no key handler outlives the view.
type DeckView struct {
	Deck   *deck.Deck
	Nav    *nav.Controller
	Keys   *input.Source
	Mapper *input.Mapper

	labels  render.Labels
	tel     *telemetry.Provider
	verbose bool

	sub     *input.Subscription
	trigger string

	painter *Painter
	help    help.Model
	height  int

	// Layout of the last View call, used for mouse hit-testing.
	footerRow int
	buttons   []buttonSpan
}

// NewDeckView creates an unmounted view positioned on the first slide.
func NewDeckView(d *deck.Deck, opts DeckOptions) (*DeckView, error) {
	if d == nil {
		return nil, deck.ErrEmptyDeck
	}
	ctrl, err := nav.New(d.Len())
	if err != nil {
		return nil, fmt.Errorf("deck view: %w", err)
	}
	labels := opts.Labels
	if labels == (render.Labels{}) {
		labels = render.LabelsFor(d.Meta().Language)
	}
	v := &DeckView{
		Deck:    d,
		Nav:     ctrl,
		Keys:    input.NewSource(),
		Mapper:  input.NewMapper(),
		labels:  labels,
		tel:     opts.Telemetry,
		verbose: opts.Verbose,
		painter: NewPainter(defaultWidth),
		help:    newHelpModel(),
	}
	ctrl.OnChange = v.onChange
	return v, nil
}

// Mount subscribes the key mapper. Mounting twice is a no-op.
func (v *DeckView) Mount() {
	if v.sub != nil {
		return
	}
	v.sub = input.Listen(v.Keys, v.Mapper, v.Nav, nil)
}

// Unmount releases the key subscription.
func (v *DeckView) Unmount() {
	v.sub.Close()
	v.sub = nil
}

// Mounted reports whether the key subscription is live.
func (v *DeckView) Mounted() bool { return v.sub != nil }

// Init mounts the view and sets the terminal title from the deck metadata.
func (v *DeckView) Init() tea.Cmd {
	v.Mount()
	if title := v.Deck.Meta().Title; title != "" {
		return tea.SetWindowTitle(title)
	}
	return nil
}

// Update implements View.
func (v *DeckView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.painter.SetWidth(msg.Width)
		v.height = msg.Height
		v.help.Width = msg.Width
	case tea.KeyMsg:
		id := KeyIdentifier(msg)
		v.trigger = "key:" + id
		v.Keys.Dispatch(id)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			v.Click(msg.X, msg.Y)
		}
	}
	return v, nil
}

// Click presses the button under the given cell, if any. Disabled buttons
// ignore clicks.
func (v *DeckView) Click(x, y int) bool {
	if y != v.footerRow {
		return false
	}
	for _, b := range v.buttons {
		if x >= b.start && x < b.end {
			v.trigger = "click:" + b.key
			return render.Press(b.key, v.Nav, v.Nav)
		}
	}
	return false
}

// View implements View.
func (v *DeckView) View() string {
	width := v.painter.Width()
	shell := render.Shell(v.Deck, v.Nav, v.labels)

	header := v.paintMeta(shell.Find(render.RoleMeta), width)
	body := v.paintSlide(shell.Find(render.RoleSlide))
	footer := v.paintControls(shell.Find(render.RoleControls), width)

	top := header + "\n\n" + body
	if v.height > 0 {
		// Pin the controls to the bottom row.
		bodyHeight := v.height - 2
		top = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(top)
	}
	out := top + "\n\n" + footer
	v.footerRow = strings.Count(out, "\n")
	return out
}

func (v *DeckView) paintMeta(meta *render.Node, width int) string {
	counter := v.painter.Paint(meta.Find(render.RoleCounter))
	barWidth := width - lipgloss.Width(counter) - 2
	if barWidth < 10 {
		return counter
	}
	return v.painter.ProgressBar(meta.Find(render.RoleProgress).Value, barWidth) + "  " + counter
}

// paintSlide contains painting failures to the current slide.
func (v *DeckView) paintSlide(slide *render.Node) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ui: paint slide %s: %v", slide.Key, r)
			out = ""
		}
	}()
	if slide == nil || len(slide.Children) == 0 {
		return ""
	}
	return v.painter.Paint(slide.Children[0])
}

func (v *DeckView) paintControls(controls *render.Node, width int) string {
	prev := PaintButton(controls.Child(render.ButtonPrev))
	next := PaintButton(controls.Child(render.ButtonNext))
	prevW, nextW := lipgloss.Width(prev), lipgloss.Width(next)

	gap := width - prevW - nextW
	middle := ""
	if gap > 0 {
		hint := v.help.ShortHelpView(input.NewKeyMap(v.Mapper).ShortHelp())
		if lipgloss.Width(hint)+2 > gap {
			hint = ""
		}
		middle = lipgloss.PlaceHorizontal(gap, lipgloss.Center, hint)
	}

	v.buttons = []buttonSpan{
		{key: render.ButtonPrev, start: 0, end: prevW},
		{key: render.ButtonNext, start: prevW + lipgloss.Width(middle), end: prevW + lipgloss.Width(middle) + nextW},
	}
	return prev + middle + next
}

func (v *DeckView) onChange(from, to int) {
	trigger := v.trigger
	if trigger == "" {
		trigger = "api"
	}
	if v.verbose {
		log.Printf("ui: slide %d -> %d (%s)", from+1, to+1, trigger)
	}
	v.tel.RecordNavigation(context.Background(), telemetry.Navigation{
		Host:    "terminal",
		Trigger: trigger,
		From:    from,
		To:      to,
		Total:   v.Nav.Len(),
	})
}
