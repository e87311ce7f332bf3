package onboarding

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmcdole/champdex/internal/domain"
	"github.com/mmcdole/champdex/internal/log"
	"github.com/mmcdole/champdex/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore fails every operation
type brokenStore struct {
	value   string
	ok      bool
	sets    int
	removes int
}

var errDisk = errors.New("disk on fire")

func (b *brokenStore) Get(key string) (string, bool, error) {
	return b.value, b.ok, errDisk
}

func (b *brokenStore) Set(key, value string) error {
	b.sets++
	return errDisk
}

func (b *brokenStore) Remove(key string) error {
	b.removes++
	return errDisk
}

func (b *brokenStore) Close() error {
	return nil
}

func memoryStore(t *testing.T) *store.FlagStore {
	t.Helper()
	s, err := store.Open("")
	require.NoError(t, err)
	return s
}

func TestService_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  domain.OnboardingState
	}{
		{"absent", nil, domain.OnboardingShown},
		{"dismissed", ptr("false"), domain.OnboardingDismissed},
		{"true", ptr("true"), domain.OnboardingShown},
		{"garbage", ptr("FALSE"), domain.OnboardingShown},
		{"empty", ptr(""), domain.OnboardingShown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memoryStore(t)
			if tt.value != nil {
				require.NoError(t, fs.Set(domain.OnboardingKey, *tt.value))
			}

			svc := NewService(fs, log.NullLogger())
			assert.Equal(t, domain.OnboardingUnknown, svc.State())
			assert.Equal(t, tt.want, svc.Resolve(context.Background()))
			assert.Equal(t, tt.want, svc.State())
		})
	}
}

func TestService_ResolveReadErrorShows(t *testing.T) {
	svc := NewService(&brokenStore{value: "false", ok: true}, log.NullLogger())
	assert.Equal(t, domain.OnboardingShown, svc.Resolve(context.Background()))
}

func TestService_ResolveKeepsEarlierDecision(t *testing.T) {
	fs := memoryStore(t)
	svc := NewService(fs, log.NullLogger())

	svc.Dismiss(context.Background())
	require.NoError(t, fs.Remove(domain.OnboardingKey))

	assert.Equal(t, domain.OnboardingDismissed, svc.Resolve(context.Background()))
}

func TestService_DismissPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.db")
	fs, err := store.Open(path)
	require.NoError(t, err)

	svc := NewService(fs, log.NullLogger())
	assert.Equal(t, domain.OnboardingShown, svc.Resolve(context.Background()))
	assert.Equal(t, domain.OnboardingDismissed, svc.Dismiss(context.Background()))
	require.NoError(t, fs.Close())

	// A fresh process starts straight on the list
	fs, err = store.Open(path)
	require.NoError(t, err)
	defer fs.Close()

	next := NewService(fs, log.NullLogger())
	assert.Equal(t, domain.OnboardingDismissed, next.Resolve(context.Background()))
}

func TestService_DismissWriteFailure(t *testing.T) {
	bs := &brokenStore{}
	svc := NewService(bs, log.NullLogger())

	assert.Equal(t, domain.OnboardingDismissed, svc.Dismiss(context.Background()))
	assert.Equal(t, domain.OnboardingDismissed, svc.State())
	assert.Equal(t, 1, bs.sets, "no retry")
}

func TestService_Reset(t *testing.T) {
	fs := memoryStore(t)
	svc := NewService(fs, log.NullLogger())
	svc.Resolve(context.Background())
	svc.Dismiss(context.Background())

	assert.Equal(t, domain.OnboardingShown, svc.Reset(context.Background()))
	_, ok, err := fs.Get(domain.OnboardingKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Reset while already shown is harmless
	assert.Equal(t, domain.OnboardingShown, svc.Reset(context.Background()))
}

func TestService_ResetRemoveFailure(t *testing.T) {
	svc := NewService(&brokenStore{}, log.NullLogger())
	svc.Dismiss(context.Background())
	assert.Equal(t, domain.OnboardingShown, svc.Reset(context.Background()))
}

func TestService_CancelledContextSkipsStore(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &brokenStore{}
	svc := NewService(b, log.NullLogger())

	assert.Equal(t, domain.OnboardingDismissed, svc.Dismiss(ctx))
	assert.Zero(t, b.sets)

	assert.Equal(t, domain.OnboardingShown, svc.Reset(ctx))
	assert.Zero(t, b.removes)
}

// Three slides, swipe to the last, get started, relaunch on the list
func TestOnboarding_FirstRunScenario(t *testing.T) {
	fs := memoryStore(t)
	svc := NewService(fs, log.NullLogger())
	require.True(t, svc.Resolve(context.Background()).ShowsCarousel())

	flow := NewFlow(nil)
	flow.Scroll(2*375, 375)
	require.Equal(t, 2, flow.Index())
	require.True(t, flow.GetStarted())
	svc.Dismiss(context.Background())

	value, ok, err := fs.Get(domain.OnboardingKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", value)

	relaunch := NewService(fs, log.NullLogger())
	assert.False(t, relaunch.Resolve(context.Background()).ShowsCarousel())
}

func ptr(s string) *string {
	return &s
}
