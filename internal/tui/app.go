package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/champdex/internal/catalog"
	"github.com/mmcdole/champdex/internal/config"
	"github.com/mmcdole/champdex/internal/domain"
	"github.com/mmcdole/champdex/internal/onboarding"
	"github.com/mmcdole/champdex/internal/tui/components"
	"github.com/mmcdole/champdex/internal/tui/styles"
)

// Screen is the screen currently on display
type Screen int

const (
	ScreenOnboarding Screen = iota
	ScreenList
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenOnboarding:
		return "onboarding"
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// ListTitle is the list screen header
const ListTitle = "League of Legends Champion List"

// Vertical layout: single footer line
const ChromeHeight = 1

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	Screen     Screen
	Onboarding domain.OnboardingState
	Ready      bool
	ShowHelp   bool

	// Services
	OnboardingSvc *onboarding.Service
	CatalogSvc    *catalog.Service

	// Flows
	List   *catalog.ListFlow
	Detail *catalog.DetailFlow // nil unless a detail screen is open

	// UI Components
	Slider     components.Slider
	ListView   *components.ChampionList
	DetailView components.DetailView
	Spinner    spinner.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool

	threshold float64
	timeout   time.Duration
	logger    *slog.Logger
}

// NewModel creates a new application model
func NewModel(
	onboardingSvc *onboarding.Service,
	catalogSvc *catalog.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	return Model{
		Screen:        ScreenOnboarding, // Unknown renders as the carousel
		Onboarding:    domain.OnboardingUnknown,
		OnboardingSvc: onboardingSvc,
		CatalogSvc:    catalogSvc,
		List:          catalog.NewListFlow(cfg.UI.PageSize),
		Slider:        components.NewSlider(onboarding.NewFlow(nil)),
		ListView:      components.NewChampionList(ListTitle),
		DetailView:    components.NewDetailView(),
		Spinner:       sp,
		threshold:     cfg.UI.LoadMoreThreshold,
		timeout:       cfg.Catalog.Timeout,
		logger:        logger,
	}
}

// Init starts the flag read and the first page fetch side by side
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		ResolveOnboardingCmd(m.OnboardingSvc),
		m.Spinner.Tick,
	}
	if req, ok := m.List.BeginFirstLoad(); ok {
		m.ListView.SetLoading(true)
		cmds = append(cmds, LoadPageCmd(m.CatalogSvc, req, m.timeout))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, m.maybeLoadMore()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		m.ListView.SetSpinner(m.Spinner.View())
		m.DetailView.SetSpinner(m.Spinner.View())
		return m, cmd

	case OnboardingResolvedMsg:
		m.Onboarding = msg.State
		m.logger.Debug("onboarding resolved", "state", msg.State)
		if !msg.State.ShowsCarousel() && m.Screen == ScreenOnboarding {
			m.Screen = ScreenList
			return m, m.maybeLoadMore()
		}
		return m, nil

	case OnboardingDismissedMsg:
		m.Onboarding = msg.State
		if m.Screen == ScreenOnboarding {
			m.Screen = ScreenList
		}
		return m, m.maybeLoadMore()

	case OnboardingResetMsg:
		m.Onboarding = msg.State
		m.Detail = nil
		m.Screen = ScreenOnboarding
		m.Slider = components.NewSlider(onboarding.NewFlow(nil))
		m.updateLayout()
		cmd := m.setStatus("Onboarding reset", false)
		return m, cmd

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case DetailLoadedMsg:
		return m.handleDetailLoaded(msg)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	res := msg.Result
	if !m.List.Complete(res) {
		m.logger.Debug("discarding stale page result", "page", res.Request.Cursor.Page)
		return m, nil
	}

	m.ListView.SetLoading(false)
	m.ListView.SetLoadingMore(false)

	if res.Err != nil {
		// Keep what is loaded; the next scroll asks for the same page again
		m.logger.Error("failed to load champion page", "page", res.Request.Cursor.Page, "error", res.Err)
		cmd := m.setStatus("Couldn't load champions", true)
		return m, cmd
	}

	m.ListView.SetEntries(m.List.Entries())
	m.logger.Debug("applied champion page",
		"page", m.List.Page(), "loaded", m.List.Len(), "exhausted", m.List.Exhausted())

	// A page shorter than the screen keeps the trigger armed
	return m, m.maybeLoadMore()
}

func (m Model) handleDetailLoaded(msg DetailLoadedMsg) (tea.Model, tea.Cmd) {
	if m.Detail == nil || !m.Detail.Resolve(msg.Request, msg.Detail, msg.Err) {
		m.logger.Debug("discarding stale detail result", "id", msg.ID)
		return m, nil
	}
	if msg.Err != nil {
		m.logger.Error("failed to load champion detail", "id", msg.ID, "error", msg.Err)
	}
	m.DetailView.SetFlow(m.Detail)
	return m, nil
}

// maybeLoadMore asks for the next page when the list is scrolled near its end.
// It is safe to call after every scroll; the list flow drops repeated requests.
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.Screen != ScreenList || m.ListView.IsFiltering() {
		return nil
	}
	if !catalog.NearEnd(m.ListView.LastVisible(), m.ListView.VisibleRows(), m.ListView.ItemCount(), m.threshold) {
		return nil
	}
	req, ok := m.List.BeginLoadMore()
	if !ok {
		return nil
	}
	m.ListView.SetLoadingMore(true)
	m.logger.Debug("loading more champions", "page", req.Cursor.Page)
	return LoadPageCmd(m.CatalogSvc, req, m.timeout)
}

// openDetail navigates to the detail screen, passing only the champion ID
func (m *Model) openDetail(id string) tea.Cmd {
	m.Detail = catalog.NewDetailFlow(id)
	m.DetailView.SetLoading(id)
	m.Screen = ScreenDetail
	return LoadDetailCmd(m.CatalogSvc, id, m.Detail.Request(), m.timeout)
}

// closeDetail returns to the list; a late detail result is then discarded
func (m *Model) closeDetail() {
	m.Detail = nil
	m.Screen = ScreenList
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	delay := 3 * time.Second
	if isErr {
		delay = 5 * time.Second
	}
	return ClearStatusCmd(delay)
}

// updateLayout sizes every screen to the window minus the footer
func (m *Model) updateLayout() {
	contentHeight := max(m.Height-ChromeHeight, 1)
	m.Slider.SetSize(m.Width, contentHeight)
	m.ListView.SetSize(m.Width, contentHeight)
	m.DetailView.SetSize(m.Width, contentHeight)
}
