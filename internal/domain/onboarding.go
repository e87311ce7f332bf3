package domain

// Onboarding flag persistence
const (
	// OnboardingKey is the FlagStore key remembering the onboarding decision
	OnboardingKey = "showOnboarding"

	// OnboardingDismissedValue is the only value that means "don't show onboarding"
	OnboardingDismissedValue = "false"
)

// OnboardingState tracks whether the first-run carousel should be shown
type OnboardingState int

const (
	OnboardingUnknown OnboardingState = iota // not yet read from the store
	OnboardingShown
	OnboardingDismissed
)

func (s OnboardingState) String() string {
	switch s {
	case OnboardingShown:
		return "shown"
	case OnboardingDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// ShowsCarousel reports whether the carousel should be on screen.
// Unknown counts as shown so the first frame never flashes the list.
func (s OnboardingState) ShowsCarousel() bool {
	return s != OnboardingDismissed
}
