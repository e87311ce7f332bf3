package onboarding

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmcdole/champdex/internal/domain"
)

// Service owns the onboarding state and its persisted flag.
// Store failures are logged and never surface to the caller.
type Service struct {
	store  domain.FlagStore
	logger *slog.Logger

	mu    sync.Mutex
	state domain.OnboardingState
}

// NewService creates a new onboarding service
func NewService(store domain.FlagStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger, state: domain.OnboardingUnknown}
}

// State returns the current onboarding state
func (s *Service) State() domain.OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Resolve reads the persisted flag once. Only the exact dismissed value hides
// the carousel; a missing key, any other value or a read error shows it.
// A state already set by Dismiss or Reset is kept.
func (s *Service) Resolve(ctx context.Context) domain.OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.OnboardingUnknown {
		return s.state
	}

	resolved := domain.OnboardingShown
	if err := ctx.Err(); err != nil {
		s.logger.Warn("onboarding flag read cancelled", "error", err)
		s.state = resolved
		return resolved
	}

	value, ok, err := s.store.Get(domain.OnboardingKey)
	switch {
	case err != nil:
		s.logger.Error("failed to read onboarding flag", "error", err)
	case ok && value == domain.OnboardingDismissedValue:
		resolved = domain.OnboardingDismissed
	}

	s.state = resolved
	s.logger.Debug("resolved onboarding state", "state", resolved, "stored", ok)
	return resolved
}

// Dismiss persists the dismissal and hides the carousel.
// The state changes even when the write fails or ctx is already done.
func (s *Service) Dismiss(ctx context.Context) domain.OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		s.logger.Warn("onboarding dismissal not persisted", "error", err)
	} else if err := s.store.Set(domain.OnboardingKey, domain.OnboardingDismissedValue); err != nil {
		s.logger.Error("failed to persist onboarding dismissal", "error", err)
	}
	s.state = domain.OnboardingDismissed
	s.logger.Info("onboarding dismissed")
	return s.state
}

// Reset clears the flag and shows the carousel again, whatever the current state
func (s *Service) Reset(ctx context.Context) domain.OnboardingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		s.logger.Warn("onboarding flag not cleared", "error", err)
	} else if err := s.store.Remove(domain.OnboardingKey); err != nil {
		s.logger.Error("failed to clear onboarding flag", "error", err)
	}
	s.state = domain.OnboardingShown
	s.logger.Info("onboarding reset")
	return s.state
}
