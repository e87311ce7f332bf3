package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/champdex/internal/onboarding"
	"github.com/mmcdole/champdex/internal/tui/styles"
)

// SliderAction is what the user asked the carousel to do
type SliderAction int

const (
	SliderNone SliderAction = iota
	SliderSkip
	SliderGetStarted
)

// Slider renders the onboarding carousel on top of an onboarding.Flow.
// One slide fills the viewport; the dots track the flow's index.
type Slider struct {
	flow   *onboarding.Flow
	dots   paginator.Model
	width  int
	height int
}

// NewSlider creates a carousel over flow
func NewSlider(flow *onboarding.Flow) Slider {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = styles.ActiveDot
	p.InactiveDot = styles.InactiveDot
	p.SetTotalPages(flow.Len())
	return Slider{flow: flow, dots: p}
}

func (s *Slider) Flow() *onboarding.Flow {
	return s.flow
}

// SetSize updates the viewport; the visible slide stays in place
func (s *Slider) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.flow.Resize(float64(width))
	s.sync()
}

// Update handles paging keys and the horizontal wheel. The returned action is
// SliderSkip or SliderGetStarted when the carousel should be finalized.
func (s Slider) Update(msg tea.Msg) (Slider, SliderAction) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SliderKeys.Next):
			s.flow.Next()
		case key.Matches(msg, SliderKeys.Prev):
			s.flow.Prev()
		case key.Matches(msg, SliderKeys.Skip):
			if s.flow.Skip() {
				return s, SliderSkip
			}
		case key.Matches(msg, SliderKeys.GetStarted):
			if s.flow.GetStarted() {
				return s, SliderGetStarted
			}
			// Enter before the last slide pages forward
			s.flow.Next()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelRight:
			s.flow.Nudge(1)
		case tea.MouseButtonWheelLeft:
			s.flow.Nudge(-1)
		}
	}

	s.sync()
	return s, SliderNone
}

func (s *Slider) sync() {
	s.dots.Page = s.flow.Index()
}

// View renders the current slide, the dots and the action row
func (s Slider) View() string {
	slide := s.flow.Current()
	boxWidth := max(min(s.width-8, 72), 20)

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render(slide.Title),
		"",
		lipgloss.NewStyle().Width(boxWidth-10).Align(lipgloss.Center).Render(slide.Description),
	)
	box := styles.SlideStyle.Width(boxWidth).Render(body)

	button := styles.DisabledButtonStyle.Render("Get Started")
	if s.flow.CanGetStarted() {
		button = styles.ButtonStyle.Render("Get Started")
	}

	hints := strings.Join([]string{
		styles.HelpKeyStyle.Render("←/→") + styles.HelpDescStyle.Render(" swipe"),
		styles.HelpKeyStyle.Render("s") + styles.HelpDescStyle.Render(" skip"),
		styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" continue"),
	}, "  ")

	content := lipgloss.JoinVertical(lipgloss.Center,
		box,
		"",
		s.dots.View(),
		"",
		button,
		"",
		hints,
	)

	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, content)
}
