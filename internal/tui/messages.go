package tui

import (
	"github.com/google/uuid"
	"github.com/mmcdole/champdex/internal/catalog"
	"github.com/mmcdole/champdex/internal/domain"
)

// Message types for the TUI

// OnboardingResolvedMsg carries the state read from the flag store at startup
type OnboardingResolvedMsg struct {
	State domain.OnboardingState
}

// OnboardingDismissedMsg signals that the carousel was skipped or finished
type OnboardingDismissedMsg struct {
	State domain.OnboardingState
}

// OnboardingResetMsg signals that the flag was cleared and the carousel should show again
type OnboardingResetMsg struct {
	State domain.OnboardingState
}

// PageLoadedMsg carries the outcome of a page fetch, successful or not
type PageLoadedMsg struct {
	Result catalog.PageResult
}

// DetailLoadedMsg carries the outcome of a detail fetch
type DetailLoadedMsg struct {
	ID      string
	Request uuid.UUID
	Detail  *domain.ChampionDetail
	Err     error
}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}
