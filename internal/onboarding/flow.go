package onboarding

import "math"

// Slide is one page of the first-run carousel
type Slide struct {
	Key         string
	Title       string
	Description string
}

// DefaultSlides introduces the champion browser
func DefaultSlides() []Slide {
	return []Slide{
		{
			Key:         "welcome",
			Title:       "Welcome to Champdex",
			Description: "Browse every League of Legends champion straight from the Data Dragon CDN.",
		},
		{
			Key:         "browse",
			Title:       "Scroll the roster",
			Description: "The list loads more champions as you get close to the bottom. Press / to filter by name or #tag.",
		},
		{
			Key:         "details",
			Title:       "Dig into a champion",
			Description: "Press enter on a champion to see its stats, lore and tips. Esc takes you back.",
		},
	}
}

// wheelStep is the fraction of a viewport one horizontal wheel tick moves
const wheelStep = 0.25

// Flow tracks which slide the horizontal carousel is showing.
// The index is derived from the scroll offset, the way a paged scroller snaps.
type Flow struct {
	slides []Slide
	index  int
	offset float64
	width  float64

	finalized bool
}

// NewFlow creates a carousel over slides; an empty list gets DefaultSlides
func NewFlow(slides []Slide) *Flow {
	if len(slides) == 0 {
		slides = DefaultSlides()
	}
	return &Flow{slides: slides}
}

func (f *Flow) Slides() []Slide {
	return f.slides
}

func (f *Flow) Len() int {
	return len(f.slides)
}

// Index is the slide currently in view
func (f *Flow) Index() int {
	return f.index
}

func (f *Flow) Current() Slide {
	return f.slides[f.index]
}

// Scroll records a horizontal offset for a viewport of the given width.
// The index becomes round(offset/width) clamped to the slide range.
// A non-positive width is ignored.
func (f *Flow) Scroll(offset, width float64) {
	if width <= 0 {
		return
	}
	maxOffset := float64(len(f.slides)-1) * width
	f.offset = math.Max(0, math.Min(offset, maxOffset))
	f.width = width

	idx := int(math.Round(offset / width))
	f.index = max(0, min(idx, len(f.slides)-1))
}

// Next pages one full viewport forward
func (f *Flow) Next() {
	w := f.pageWidth()
	f.Scroll(f.offset+w, w)
}

// Prev pages one full viewport back
func (f *Flow) Prev() {
	w := f.pageWidth()
	f.Scroll(f.offset-w, w)
}

// Nudge moves the offset by a number of wheel ticks (negative scrolls left)
func (f *Flow) Nudge(ticks int) {
	w := f.pageWidth()
	f.Scroll(f.offset+float64(ticks)*wheelStep*w, w)
}

// Resize keeps the same slide in view when the viewport width changes
func (f *Flow) Resize(width float64) {
	if width <= 0 {
		return
	}
	f.Scroll(float64(f.index)*width, width)
}

func (f *Flow) pageWidth() float64 {
	if f.width <= 0 {
		return 1
	}
	return f.width
}

// CanGetStarted is true only on the last slide
func (f *Flow) CanGetStarted() bool {
	return f.index == len(f.slides)-1
}

// Finalized reports whether the carousel was skipped or completed
func (f *Flow) Finalized() bool {
	return f.finalized
}

// Skip finalizes from any slide. It reports false once the flow is already finalized.
func (f *Flow) Skip() bool {
	if f.finalized {
		return false
	}
	f.finalized = true
	return true
}

// GetStarted finalizes only from the last slide
func (f *Flow) GetStarted() bool {
	if f.finalized || !f.CanGetStarted() {
		return false
	}
	f.finalized = true
	return true
}
