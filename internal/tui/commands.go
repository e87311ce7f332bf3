package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mmcdole/champdex/internal/catalog"
	"github.com/mmcdole/champdex/internal/onboarding"
)

// Command factories for async operations

// flagTimeout bounds a single flag store call
const flagTimeout = 5 * time.Second

// withTimeout returns a context bounded by d; zero means no deadline
func withTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), d)
}

// ResolveOnboardingCmd reads the persisted onboarding flag
func ResolveOnboardingCmd(svc *onboarding.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(flagTimeout)
		defer cancel()

		return OnboardingResolvedMsg{State: svc.Resolve(ctx)}
	}
}

// DismissOnboardingCmd persists the dismissal
func DismissOnboardingCmd(svc *onboarding.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(flagTimeout)
		defer cancel()

		return OnboardingDismissedMsg{State: svc.Dismiss(ctx)}
	}
}

// ResetOnboardingCmd clears the flag so the carousel shows again
func ResetOnboardingCmd(svc *onboarding.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(flagTimeout)
		defer cancel()

		return OnboardingResetMsg{State: svc.Reset(ctx)}
	}
}

// LoadPageCmd fetches one catalog page. Failures come back inside the result
// so the list flow can clear its loading state.
func LoadPageCmd(svc *catalog.Service, req catalog.PageRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		entries, total, err := svc.FetchPage(ctx, req.Cursor)
		return PageLoadedMsg{Result: catalog.PageResult{
			Request: req,
			Entries: entries,
			Total:   total,
			Err:     err,
		}}
	}
}

// LoadDetailCmd fetches one champion's detail record
func LoadDetailCmd(svc *catalog.Service, id string, request uuid.UUID, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		detail, err := svc.FetchDetail(ctx, id)
		return DetailLoadedMsg{ID: id, Request: request, Detail: detail, Err: err}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
