package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/champdex/internal/tui/styles"
)

// View renders the current screen and the footer
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	var content string
	switch m.Screen {
	case ScreenOnboarding:
		content = m.Slider.View()
	case ScreenDetail:
		content = m.DetailView.View()
	default:
		content = m.ListView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	// Left side: status message or load progress
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.DimStyle.Render(m.StatusMsg)
	case m.Screen == ScreenList:
		left = styles.DimStyle.Render(m.loadProgress())
	}

	// Center section: hints for the screen on display
	var center string
	switch m.Screen {
	case ScreenList:
		center = hint("enter", "details") + "  " + hint("/", "filter") + "  " + hint("g", "top") + "  " + hint("o", "reset onboarding")
	case ScreenDetail:
		center = hint("esc", "back")
	}

	right := hint("?", "help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	// Center the hints in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

func (m Model) loadProgress() string {
	total, known := m.List.Total()
	switch {
	case !known:
		return ""
	case m.List.Exhausted():
		return fmt.Sprintf("%d champions", total)
	default:
		return fmt.Sprintf("%d/%d champions", m.List.Len(), total)
	}
}

func hint(k, desc string) string {
	return styles.HelpKeyStyle.Render(k) + styles.HelpDescStyle.Render(" "+desc)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
CHAMPION LIST                   DETAILS
  j/k        Up/down              j/k        Scroll
  g/Home     Back to top          PgUp/PgDn  Scroll page
  G/End      Last loaded          esc        Back to list
  Ctrl+u/d   Half page
  enter      Open details       ONBOARDING
  /          Filter (#tag)        ←/→        Previous/next slide
  o          Reset onboarding     s          Skip
                                  enter      Get started
OTHER
  q          Quit
  ?          This help

Press any key to return...
`

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.HextechGold).
		Padding(1, 2).
		Render(help)

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}
