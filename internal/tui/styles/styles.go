package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	HextechGold = lipgloss.Color("#C8AA6E")
	HextechBlue = lipgloss.Color("#0AC8B9")
	SlateDark   = lipgloss.Color("#1F2937")
	SlateLight  = lipgloss.Color("#374151")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
	Green       = lipgloss.Color("#10B981")
	Red         = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(HextechGold)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(HextechGold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(HextechGold).
			Bold(true).
			Padding(0, 1)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(HextechBlue).
				Bold(true).
				MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Width(16)
)

// Tag chips are inert labels next to a champion
var (
	ChipStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(HextechBlue).
			Padding(0, 1)

	DimChipStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)
)

// Onboarding slide styles
var (
	SlideStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(HextechGold).
			Padding(1, 4).
			Align(lipgloss.Center)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(HextechGold).
			Bold(true).
			Padding(0, 2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Background(SlateLight).
				Padding(0, 2)

	ActiveDot   = lipgloss.NewStyle().Foreground(HextechGold).Render("●")
	InactiveDot = lipgloss.NewStyle().Foreground(DimGray).Render("○")
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(HextechGold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Rating bar styles
var (
	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(HextechGold)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(DimGray)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(HextechGold)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(HextechGold)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(HextechGold).
				Bold(true)
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

// RenderProgressBar renders value out of limit as a bar of the given width
func RenderProgressBar(value, limit, width int) string {
	if width < 3 || limit <= 0 {
		return ""
	}

	filled := width * value / limit
	filled = min(max(filled, 0), width)

	return ProgressFullStyle.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// RenderChips renders tags as a row of chips
func RenderChips(tags []string, selected bool) string {
	style := ChipStyle
	if selected {
		style = DimChipStyle
	}
	chips := make([]string, 0, len(tags))
	for _, t := range tags {
		chips = append(chips, style.Render(t))
	}
	return strings.Join(chips, " ")
}

// RenderListRow renders a complete list row with uniform background when selected.
// This function styles each part explicitly to avoid ANSI reset code issues.
// parts is a slice of {text, fgColor} pairs. Use nil for default foreground.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var b strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}
		b.WriteString(style.Render(part.Text))
		visibleLen += lipgloss.Width(part.Text)
	}

	// Fill to width (2 columns go to the margins)
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		b.WriteString(padStyle.Render(strings.Repeat(" ", paddingNeeded)))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + b.String() + margin
}

// RowPart represents a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}
