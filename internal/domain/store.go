package domain

// FlagStore is a small persisted key/value store.
// The app keeps a single flag in it; see OnboardingKey.
type FlagStore interface {
	// Get returns the stored value; ok is false when the key is absent
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}
