package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/champdex/internal/catalog"
	"github.com/mmcdole/champdex/internal/domain"
	"github.com/mmcdole/champdex/internal/tui/styles"
)

// NoDetailsText is shown when a champion record could not be loaded
const NoDetailsText = "No details available."

const (
	// Info ratings are on a 0-10 scale
	ratingMax   = 10
	ratingWidth = 20
)

// detailContent holds the two-zone layout content
type detailContent struct {
	header string // fixed top
	body   string // scrollable
}

// DetailView shows one champion. The header is fixed and the body scrolls.
type DetailView struct {
	width  int
	height int

	id       string
	state    catalog.DetailState
	detail   *domain.ChampionDetail
	sections []catalog.Section

	spinnerView string
	viewport    viewport.Model
}

// NewDetailView creates an empty detail view
func NewDetailView() DetailView {
	vp := viewport.New(0, 0)
	vp.KeyMap.Up = DetailKeys.Up
	vp.KeyMap.Down = DetailKeys.Down
	vp.KeyMap.PageUp = DetailKeys.PageUp
	vp.KeyMap.PageDown = DetailKeys.PageDown
	vp.KeyMap.HalfPageUp = key.NewBinding(key.WithDisabled())
	vp.KeyMap.HalfPageDown = key.NewBinding(key.WithDisabled())
	vp.KeyMap.Left = key.NewBinding(key.WithDisabled())
	vp.KeyMap.Right = key.NewBinding(key.WithDisabled())
	return DetailView{viewport: vp}
}

// SetLoading shows the loading placeholder for id
func (d *DetailView) SetLoading(id string) {
	d.id = id
	d.state = catalog.DetailLoading
	d.detail = nil
	d.sections = nil
	d.refresh()
}

// SetFlow renders the flow's current state
func (d *DetailView) SetFlow(flow *catalog.DetailFlow) {
	d.id = flow.ID()
	d.state = flow.State()
	d.detail = flow.Detail()
	d.sections = flow.Sections()
	d.refresh()
	d.viewport.GotoTop()
}

// SetSpinner sets the current spinner frame
func (d *DetailView) SetSpinner(view string) {
	d.spinnerView = view
	if d.state == catalog.DetailLoading {
		d.refresh()
	}
}

// SetSize updates the component dimensions
func (d *DetailView) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.refresh()
}

// Update scrolls the body
func (d DetailView) Update(msg tea.Msg) (DetailView, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DetailKeys.Top):
			d.viewport.GotoTop()
			return d, nil
		case key.Matches(msg, DetailKeys.Bottom):
			d.viewport.GotoBottom()
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the component
func (d DetailView) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()

	content := d.render(d.contentWidth())
	rendered := content.header + "\n" + d.viewport.View()

	return style.
		Width(d.width - frameW).
		Height(d.height - frameH).
		Render(rendered)
}

// Body returns the rendered body text
func (d DetailView) Body() string {
	return d.render(d.contentWidth()).body
}

func (d DetailView) contentWidth() int {
	// Border takes 2 chars (1 each side), leave 1 char safety margin
	return max(d.width-3, 10)
}

func (d *DetailView) refresh() {
	width := d.contentWidth()
	content := d.render(width)

	_, frameH := styles.ActiveBorder.GetFrameSize()
	headerHeight := lipgloss.Height(content.header)

	d.viewport.Width = width
	d.viewport.Height = max(d.height-frameH-headerHeight-1, 1)
	d.viewport.SetContent(content.body)
}

func (d DetailView) render(width int) detailContent {
	switch d.state {
	case catalog.DetailLoading:
		header := styles.TitleStyle.Render(styles.Truncate(d.id, width))
		return detailContent{
			header: header,
			body:   styles.DimStyle.Render(d.spinnerView + " Loading details..."),
		}
	case catalog.DetailNotFound:
		header := styles.TitleStyle.Render(styles.Truncate(d.id, width))
		return detailContent{header: header, body: styles.DimStyle.Render(NoDetailsText)}
	}

	if d.detail == nil {
		return detailContent{body: styles.DimStyle.Render(NoDetailsText)}
	}
	return detailContent{
		header: renderDetailHeader(d.detail, width),
		body:   renderDetailBody(d.detail, d.sections, width),
	}
}

func renderDetailHeader(c *domain.ChampionDetail, width int) string {
	var lines []string
	lines = append(lines, styles.TitleStyle.Render(styles.Truncate(c.Name, width)))
	if c.Title != "" {
		lines = append(lines, styles.SubtitleStyle.Render(styles.Truncate(c.Title, width)))
	}
	if c.ImageURL != "" {
		lines = append(lines, styles.DimStyle.Render(styles.Truncate(c.ImageURL, width)))
	}
	return strings.Join(lines, "\n")
}

func renderDetailBody(c *domain.ChampionDetail, sections []catalog.Section, width int) string {
	var parts []string

	if c.Blurb != "" {
		parts = append(parts, wrap(c.Blurb, width))
	}

	for _, s := range sections {
		parts = append(parts, styles.SectionTitleStyle.Render(s.Title))
		parts = append(parts, renderSection(s, width))
	}

	return strings.Join(parts, "\n")
}

func renderSection(s catalog.Section, width int) string {
	lines := make([]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		switch {
		case s.Title == "Info":
			v, _ := strconv.Atoi(l.Value)
			lines = append(lines, fmt.Sprintf("%s %s %2d",
				styles.LabelStyle.Render(l.Label),
				styles.RenderProgressBar(v, ratingMax, ratingWidth),
				v))
		case l.Label == "":
			lines = append(lines, wrap(l.Value, width))
		case l.Label == "•":
			lines = append(lines, "• "+wrap(l.Value, width-2))
		default:
			lines = append(lines, styles.LabelStyle.Render(l.Label)+" "+l.Value)
		}
	}
	return strings.Join(lines, "\n")
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(max(width, 10)).Render(s)
}
