package catalog

import (
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/mmcdole/champdex/internal/domain"
)

// DetailState is the detail screen's state
type DetailState int

const (
	DetailLoading DetailState = iota
	DetailNotFound
	DetailReady
)

func (s DetailState) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailNotFound:
		return "not-found"
	case DetailReady:
		return "ready"
	default:
		return "unknown"
	}
}

// DetailFlow tracks the fetch of one champion's detail record.
// A failed fetch is terminal for the instance; open a new one to retry.
type DetailFlow struct {
	id      string
	request uuid.UUID
	state   DetailState
	detail  *domain.ChampionDetail
}

// NewDetailFlow starts in Loading with a fresh request token
func NewDetailFlow(id string) *DetailFlow {
	return &DetailFlow{id: id, request: uuid.New(), state: DetailLoading}
}

func (d *DetailFlow) ID() string {
	return d.id
}

// Request is the token the detail fetch must echo back
func (d *DetailFlow) Request() uuid.UUID {
	return d.request
}

func (d *DetailFlow) State() DetailState {
	return d.state
}

// Detail returns the record once Ready, nil otherwise
func (d *DetailFlow) Detail() *domain.ChampionDetail {
	return d.detail
}

// Resolve applies a fetch outcome. Stale tokens and repeated resolutions are ignored.
func (d *DetailFlow) Resolve(request uuid.UUID, detail *domain.ChampionDetail, err error) bool {
	if request != d.request || d.state != DetailLoading {
		return false
	}
	if err != nil || detail == nil {
		d.state = DetailNotFound
		return true
	}
	d.detail = detail
	d.state = DetailReady
	return true
}

// Line is one label/value row of a section
type Line struct {
	Label string
	Value string
}

// Section is a titled block of the detail page
type Section struct {
	Title string
	Lines []Line
}

// Sections projects the record into display sections.
// Stats are listed by key in ascending order.
func (d *DetailFlow) Sections() []Section {
	if d.detail == nil {
		return nil
	}
	c := d.detail

	var sections []Section

	if c.Info != nil {
		sections = append(sections, Section{
			Title: "Info",
			Lines: []Line{
				{Label: "Attack", Value: strconv.Itoa(c.Info.Attack)},
				{Label: "Defense", Value: strconv.Itoa(c.Info.Defense)},
				{Label: "Magic", Value: strconv.Itoa(c.Info.Magic)},
				{Label: "Difficulty", Value: strconv.Itoa(c.Info.Difficulty)},
			},
		})
	}

	if len(c.Stats) > 0 {
		keys := make([]string, 0, len(c.Stats))
		for k := range c.Stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		stats := Section{Title: "Stats", Lines: make([]Line, 0, len(keys))}
		for _, k := range keys {
			stats.Lines = append(stats.Lines, Line{
				Label: k,
				Value: strconv.FormatFloat(c.Stats[k], 'f', -1, 64),
			})
		}
		sections = append(sections, stats)
	}

	sections = append(sections, Section{
		Title: "Partype",
		Lines: []Line{{Value: orDash(c.Partype)}},
	})

	if len(c.Tags) > 0 {
		sections = append(sections, Section{Title: "Tags", Lines: []Line{{Value: c.TagLine()}}})
	}
	if c.Lore != "" {
		sections = append(sections, Section{Title: "Lore", Lines: []Line{{Value: c.Lore}}})
	}
	if tips := tipLines(c.AllyTips); len(tips) > 0 {
		sections = append(sections, Section{Title: "Playing as", Lines: tips})
	}
	if tips := tipLines(c.EnemyTips); len(tips) > 0 {
		sections = append(sections, Section{Title: "Playing against", Lines: tips})
	}

	return sections
}

func tipLines(tips []string) []Line {
	lines := make([]Line, 0, len(tips))
	for _, t := range tips {
		lines = append(lines, Line{Label: "•", Value: t})
	}
	return lines
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
