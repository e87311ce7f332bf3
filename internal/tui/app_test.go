package tui

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mmcdole/champdex/internal/catalog"
	"github.com/mmcdole/champdex/internal/config"
	"github.com/mmcdole/champdex/internal/ddragon"
	"github.com/mmcdole/champdex/internal/domain"
	"github.com/mmcdole/champdex/internal/log"
	"github.com/mmcdole/champdex/internal/onboarding"
	"github.com/mmcdole/champdex/internal/store"
	"github.com/mmcdole/champdex/internal/testutil"
	"github.com/mmcdole/champdex/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t     *testing.T
	cdn   *testutil.FakeCDN
	flags *store.FlagStore
	model Model
}

func newHarness(t *testing.T, flags *store.FlagStore, champs ...testutil.ChampionFixture) *harness {
	t.Helper()

	cdn := testutil.NewFakeCDN(t, []string{config.DefaultVersion}, champs...)
	if flags == nil {
		var err error
		flags, err = store.Open("")
		require.NoError(t, err)
	}

	cfg := config.DefaultConfig()
	cfg.Catalog.BaseURL = cdn.URL()
	cfg.Catalog.Timeout = 5 * time.Second

	client := ddragon.NewClient(cfg.Catalog, log.NullLogger())
	model := NewModel(
		onboarding.NewService(flags, log.NullLogger()),
		catalog.NewService(client, log.NullLogger()),
		cfg,
		log.NullLogger(),
	)

	return &harness{t: t, cdn: cdn, flags: flags, model: model}
}

// exec runs cmd and returns the messages it produced. Commands that block
// (status timers, spinner ticks) are dropped.
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		switch msg := msg.(type) {
		case nil, spinner.TickMsg:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, exec(c)...)
			}
			return out
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(500 * time.Millisecond):
		return nil
	}
}

// send delivers msg and runs every command that follows to completion
func (h *harness) send(msg tea.Msg) {
	h.t.Helper()

	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0; i++ {
		require.Less(h.t, i, 200, "message loop did not settle")

		next := queue[0]
		queue = queue[1:]

		updated, cmd := h.model.Update(next)
		h.model = updated.(Model)
		queue = append(queue, exec(cmd)...)
	}
}

func (h *harness) start(width, height int) {
	h.t.Helper()
	h.send(tea.WindowSizeMsg{Width: width, Height: height})
	for _, msg := range exec(h.model.Init()) {
		h.send(msg)
	}
}

func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func (h *harness) storedFlag() (string, bool) {
	h.t.Helper()
	v, ok, err := h.flags.Get(domain.OnboardingKey)
	require.NoError(h.t, err)
	return v, ok
}

func TestModel_FirstRunShowsOnboarding(t *testing.T) {
	h := newHarness(t, nil, testutil.Champions(12)...)
	h.start(100, 40)

	assert.Equal(t, ScreenOnboarding, h.model.Screen)
	assert.Equal(t, domain.OnboardingShown, h.model.Onboarding)

	// The first page loads behind the carousel, and nothing more
	assert.Equal(t, 5, h.model.List.Len())
	assert.Equal(t, 1, h.model.List.Page())
	assert.Contains(t, h.model.View(), "Welcome to Champdex")
}

func TestModel_GetStartedOnLastSlide(t *testing.T) {
	h := newHarness(t, nil, testutil.Champions(12)...)
	h.start(100, 40)

	// Enter before the last slide only pages forward
	h.press("enter")
	assert.Equal(t, ScreenOnboarding, h.model.Screen)
	assert.Equal(t, 1, h.model.Slider.Flow().Index())

	h.press("l")
	require.True(t, h.model.Slider.Flow().CanGetStarted())
	h.press("enter")

	assert.Equal(t, ScreenList, h.model.Screen)
	assert.Equal(t, domain.OnboardingDismissed, h.model.Onboarding)

	v, ok := h.storedFlag()
	assert.True(t, ok)
	assert.Equal(t, "false", v)

	// A tall screen keeps asking until the catalog is exhausted
	assert.Equal(t, 12, h.model.List.Len())
	assert.True(t, h.model.List.Exhausted())
	assert.Equal(t, 1, h.cdn.ListingHits(), "catalog fetched once")
}

func TestModel_SkipFromFirstSlide(t *testing.T) {
	h := newHarness(t, nil, testutil.Champions(3)...)
	h.start(100, 40)

	h.press("s")
	assert.Equal(t, ScreenList, h.model.Screen)
	v, _ := h.storedFlag()
	assert.Equal(t, "false", v)
}

func TestModel_DismissedStartsOnList(t *testing.T) {
	flags, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, flags.Set(domain.OnboardingKey, "false"))

	h := newHarness(t, flags, testutil.Champions(3)...)
	h.start(100, 40)

	assert.Equal(t, ScreenList, h.model.Screen)
	assert.Contains(t, h.model.View(), ListTitle)
}

func TestModel_ScrollLoadsMore(t *testing.T) {
	flags, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, flags.Set(domain.OnboardingKey, "false"))

	h := newHarness(t, flags, testutil.Champions(40)...)
	// 20 lines leave room for 6 rows
	h.start(100, 20)

	require.Equal(t, 10, h.model.List.Len(), "two pages fill a six-row screen")

	for i := 0; i < 6; i++ {
		h.press("j")
	}
	assert.Equal(t, 15, h.model.List.Len())
	assert.Equal(t, 6, h.model.ListView.SelectedIndex(), "appending keeps the selection")

	h.press("G")
	h.press("j")
	assert.Greater(t, h.model.List.Len(), 15)

	h.press("g")
	assert.Equal(t, 0, h.model.ListView.SelectedIndex())
	assert.Equal(t, 0, h.model.ListView.Offset())
}

func TestModel_PageFailureKeepsList(t *testing.T) {
	flags, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, flags.Set(domain.OnboardingKey, "false"))

	h := newHarness(t, flags, testutil.Champions(12)...)
	h.cdn.FailListing(http.StatusInternalServerError)
	h.start(100, 40)

	assert.True(t, h.model.List.FirstLoadDone())
	assert.Zero(t, h.model.List.Len())
	assert.True(t, h.model.StatusIsErr)
	hits := h.cdn.ListingHits()

	// No retry until the user scrolls
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, hits+1, h.cdn.ListingHits(), "resize counts as a scroll")

	h.cdn.FailListing(0)
	h.press("j")
	assert.Equal(t, 12, h.model.List.Len())
}

func TestModel_OpenDetail(t *testing.T) {
	flags, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, flags.Set(domain.OnboardingKey, "false"))

	h := newHarness(t, flags, testutil.Ahri())
	h.start(100, 40)
	require.Equal(t, 1, h.model.List.Len())

	h.press("enter")
	require.Equal(t, ScreenDetail, h.model.Screen)
	require.NotNil(t, h.model.Detail)
	assert.Equal(t, catalog.DetailReady, h.model.Detail.State())

	body := h.model.DetailView.Body()
	assert.Contains(t, body, "Stats")
	assert.Contains(t, body, "hpperlevel")
	assert.Contains(t, body, "Mana")
	assert.Contains(t, h.model.View(), "the Nine-Tailed Fox")

	h.press("esc")
	assert.Equal(t, ScreenList, h.model.Screen)
	assert.Nil(t, h.model.Detail)

	// Revisiting re-fetches
	h.press("enter")
	assert.Equal(t, 2, h.cdn.DetailHits())
}

func TestModel_DetailNotFound(t *testing.T) {
	h := newHarness(t, nil, testutil.Ahri())
	h.start(100, 40)
	h.press("s")

	cmd := h.model.openDetail("doesnotexist")
	for _, msg := range exec(cmd) {
		h.send(msg)
	}

	assert.Equal(t, catalog.DetailNotFound, h.model.Detail.State())
	assert.Contains(t, h.model.DetailView.Body(), components.NoDetailsText)
}

func TestModel_LateDetailIgnored(t *testing.T) {
	h := newHarness(t, nil, testutil.Ahri())
	h.start(100, 40)
	h.press("s")

	cmd := h.model.openDetail("Ahri")
	request := h.model.Detail.Request()
	h.press("esc")

	for _, msg := range exec(cmd) {
		h.send(msg)
	}
	assert.Equal(t, ScreenList, h.model.Screen)
	assert.Nil(t, h.model.Detail)

	// A result for another request is dropped while a detail is open
	h.model.openDetail("Ahri")
	h.send(DetailLoadedMsg{ID: "Ahri", Request: uuid.New(), Err: domain.ErrNetwork})
	assert.Equal(t, catalog.DetailLoading, h.model.Detail.State())
	assert.NotEqual(t, request, h.model.Detail.Request())
}

func TestModel_ResetOnboarding(t *testing.T) {
	h := newHarness(t, nil, testutil.Champions(3)...)
	h.start(100, 40)
	h.press("s")
	require.Equal(t, ScreenList, h.model.Screen)

	h.press("o")
	assert.Equal(t, ScreenOnboarding, h.model.Screen)
	assert.Equal(t, 0, h.model.Slider.Flow().Index())
	_, ok := h.storedFlag()
	assert.False(t, ok)

	// Entries survive the round trip
	h.press("s")
	assert.Equal(t, 3, h.model.List.Len())
}

func TestModel_FilterDoesNotLoadOrMutate(t *testing.T) {
	flags, err := store.Open("")
	require.NoError(t, err)
	require.NoError(t, flags.Set(domain.OnboardingKey, "false"))

	champs := append(testutil.Champions(4), testutil.Ahri())
	h := newHarness(t, flags, champs...)
	h.start(100, 40)
	require.Equal(t, 5, h.model.List.Len())

	h.press("/", "#", "m", "a", "g")
	assert.True(t, h.model.ListView.IsFiltering())
	assert.Equal(t, 1, h.model.ListView.ItemCount())
	assert.Equal(t, "Ahri", h.model.ListView.Selected().ID)
	assert.Equal(t, 5, h.model.List.Len())

	h.press("enter", "enter")
	assert.Equal(t, ScreenDetail, h.model.Screen)
	assert.Equal(t, "Ahri", h.model.Detail.ID())
}

func TestModel_HelpOverlay(t *testing.T) {
	h := newHarness(t, nil)
	h.start(100, 40)
	h.press("s", "?")
	assert.True(t, h.model.ShowHelp)
	assert.True(t, strings.Contains(h.model.View(), "Reset onboarding"))

	h.press("x")
	assert.False(t, h.model.ShowHelp)
}
