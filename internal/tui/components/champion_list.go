package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/champdex/internal/domain"
	"github.com/mmcdole/champdex/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the champion list
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Each champion takes a name line and a subtitle line
	RowHeight = 2

	// Queries starting with this prefix match tags instead of names
	TagQueryPrefix = "#"
)

// ChampionList is the scrollable champion list. It renders whatever entries
// it is given and never changes them; filtering only changes what is shown.
type ChampionList struct {
	entries []domain.Champion

	// Selection
	cursor     int
	offset     int
	maxVisible int // rows, not lines

	// Dimensions
	width  int
	height int

	title string

	// Loading state, spinner is owned by the app
	loading     bool
	loadingMore bool
	spinnerView string

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int // indices into entries
}

// NewChampionList creates an empty list with the given header title
func NewChampionList(title string) *ChampionList {
	ti := textinput.New()
	ti.Placeholder = "name or #tag"
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ChampionList{
		title:       title,
		filterInput: ti,
	}
}

// Update handles navigation and filter keys
func (c *ChampionList) Update(msg tea.Msg) (*ChampionList, tea.Cmd) {
	// Filter input typing mode
	if c.filterActive && c.filterInput.Focused() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, ListKeys.Escape):
				c.clearFilter()
				return c, nil
			case key.Matches(msg, ListKeys.Enter):
				c.filterInput.Blur()
				return c, nil
			case msg.Type == tea.KeyBackspace && c.filterInput.Value() == "":
				c.clearFilter()
				return c, nil
			}
		}

		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		return c, cmd
	}

	// Filter applied but blurred: navigate the results
	if c.filterActive {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, ListKeys.Escape):
				c.clearFilter()
				return c, nil
			case key.Matches(msg, ListKeys.Filter):
				c.filterInput.Focus()
				return c, nil
			}
		}
	}

	count := c.ItemCount()
	if count == 0 {
		return c, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ListKeys.Down):
			c.move(1)
		case key.Matches(msg, ListKeys.Up):
			c.move(-1)
		case key.Matches(msg, ListKeys.Home):
			c.ScrollToTop()
		case key.Matches(msg, ListKeys.End):
			c.cursor = count - 1
			c.ensureVisible()
		case key.Matches(msg, ListKeys.HalfDown):
			c.move(c.maxVisible / 2)
		case key.Matches(msg, ListKeys.HalfUp):
			c.move(-c.maxVisible / 2)
		case key.Matches(msg, ListKeys.PageDown):
			c.move(c.maxVisible)
		case key.Matches(msg, ListKeys.PageUp):
			c.move(-c.maxVisible)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			c.move(1)
		case tea.MouseButtonWheelUp:
			c.move(-1)
		}
	}

	return c, nil
}

func (c *ChampionList) move(delta int) {
	count := c.ItemCount()
	if count == 0 {
		return
	}
	c.cursor = max(0, min(c.cursor+delta, count-1))
	c.ensureVisible()
}

// View renders the bordered list
func (c *ChampionList) View() string {
	style := styles.ActiveBorder
	content := c.renderContent()

	// Subtract frame (border) size so total rendered size equals c.width x c.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(content)
}

func (c *ChampionList) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

// SetEntries replaces the rendered entries, keeping the selection and scroll
// position. Appending a page therefore never moves the cursor.
func (c *ChampionList) SetEntries(entries []domain.Champion) {
	c.entries = entries
	if c.filterActive {
		c.refilter()
	}
	if n := c.ItemCount(); c.cursor >= n {
		c.cursor = max(n-1, 0)
	}
	c.ensureVisible()
}

// SetLoading shows the first-load placeholder
func (c *ChampionList) SetLoading(loading bool) {
	c.loading = loading
}

// SetLoadingMore shows the spinner footer
func (c *ChampionList) SetLoadingMore(loading bool) {
	c.loadingMore = loading
}

// SetSpinner sets the current spinner frame
func (c *ChampionList) SetSpinner(view string) {
	c.spinnerView = view
}

// ScrollToTop moves the selection and scroll offset back to the first row
func (c *ChampionList) ScrollToTop() {
	c.cursor = 0
	c.offset = 0
}

// Selected returns the champion under the cursor
func (c *ChampionList) Selected() *domain.Champion {
	count := c.ItemCount()
	if count == 0 || c.cursor >= count {
		return nil
	}
	ch := c.entries[c.mapIndex(c.cursor)]
	return &ch
}

func (c *ChampionList) SelectedIndex() int {
	return c.cursor
}

func (c *ChampionList) Offset() int {
	return c.offset
}

// ItemCount is the number of rows shown (after filtering)
func (c *ChampionList) ItemCount() int {
	if c.filteredIdx != nil {
		return len(c.filteredIdx)
	}
	return len(c.entries)
}

// VisibleRows is how many rows fit on screen
func (c *ChampionList) VisibleRows() int {
	return c.maxVisible
}

// LastVisible is the index of the last row on screen, -1 when empty
func (c *ChampionList) LastVisible() int {
	end := min(c.offset+c.maxVisible, c.ItemCount())
	return end - 1
}

// ToggleFilter activates the filter input
func (c *ChampionList) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (c *ChampionList) IsFiltering() bool {
	return c.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (c *ChampionList) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (c *ChampionList) ClearFilter() {
	c.clearFilter()
}

// Internal methods

func (c *ChampionList) recalcMaxVisible() {
	// Interior height minus title line, scroll indicators and footer line
	interiorHeight := c.height - BorderHeight - ScrollIndicatorLines - 2
	if c.filterActive {
		interiorHeight--
	}
	c.maxVisible = max(interiorHeight/RowHeight, 1)
}

func (c *ChampionList) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *ChampionList) clearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.filteredIdx = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
	c.ensureVisible()
}

func (c *ChampionList) applyFilter() {
	query := c.filterInput.Value()
	if query == c.filterQuery && c.filteredIdx != nil {
		return
	}
	c.filterQuery = query
	c.refilter()

	// Reset cursor to first match
	c.cursor = 0
	c.offset = 0
}

func (c *ChampionList) refilter() {
	query := strings.TrimSpace(c.filterQuery)
	switch {
	case query == "":
		c.filteredIdx = nil
	case strings.HasPrefix(query, TagQueryPrefix):
		c.filteredIdx = MatchTags(strings.TrimPrefix(query, TagQueryPrefix), c.entries)
	default:
		c.filteredIdx = MatchNames(query, c.entries)
	}
}

func (c *ChampionList) mapIndex(i int) int {
	if c.filteredIdx != nil && i < len(c.filteredIdx) {
		return c.filteredIdx[i]
	}
	return i
}

// MatchNames fuzzy-matches query against champion names, best match first
func MatchNames(query string, entries []domain.Champion) []int {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = strings.ToLower(e.Name)
	}

	matches := fuzzy.Find(strings.ToLower(query), names)

	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	return idx
}

// MatchTags keeps champions with a tag fuzzily matching query, in list order.
// An empty tag query matches every tagged champion.
func MatchTags(query string, entries []domain.Champion) []int {
	idx := make([]int, 0)
	for i, e := range entries {
		if len(e.Tags) == 0 {
			continue
		}
		if query == "" || len(fuzzysearch.RankFindFold(query, e.Tags)) > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// Rendering

func (c *ChampionList) renderContent() string {
	itemWidth := max(c.width-BorderWidth, 10)

	titleLine := styles.HeaderStyle.Render(styles.Truncate(c.title, itemWidth-2))

	if c.loading {
		loadingLine := styles.DimStyle.Render(c.spinnerView + " Loading champions...")
		return titleLine + "\n \n" + loadingLine
	}

	count := c.ItemCount()
	if count == 0 {
		emptyMsg := "No champions"
		if c.filterActive && c.filterQuery != "" {
			emptyMsg = "No matches"
		}
		content := titleLine + "\n \n" + styles.DimStyle.Render(emptyMsg)
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := min(c.offset+c.maxVisible, count)

	var lines []string
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderRow(c.entries[c.mapIndex(i)], i == c.cursor, itemWidth))
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	content += "\n" + c.renderStatus()

	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}

	return content
}

func (c *ChampionList) renderRow(ch domain.Champion, selected bool, width int) string {
	gold := styles.HextechGold
	dim := styles.DimGray

	chips := styles.RenderChips(ch.Tags, selected)
	chipsWidth := lipgloss.Width(chips)

	// name + " " + title + " " + chips + margins
	available := max(width-chipsWidth-4, 5)
	name := styles.Truncate(ch.Name, available)
	title := styles.Truncate(ch.Title, max(available-lipgloss.Width(name)-1, 0))

	first := styles.RenderListRow([]styles.RowPart{
		{Text: name, Foreground: &gold},
		{Text: " " + title, Foreground: nil},
	}, selected, width-chipsWidth-1) + " " + chips

	second := styles.RenderListRow([]styles.RowPart{
		{Text: "  " + styles.Truncate(ch.ImageURL, width-4), Foreground: &dim},
	}, selected, width)

	return first + "\n" + second
}

func (c *ChampionList) renderStatus() string {
	if c.loadingMore {
		return styles.SpinnerStyle.Render(c.spinnerView) + styles.DimStyle.Render(" Loading more...")
	}
	return " "
}

func (c *ChampionList) renderFilterBar() string {
	input := c.filterInput.View()

	countStr := ""
	if c.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.ItemCount(), len(c.entries)))
	}

	return input + countStr
}
