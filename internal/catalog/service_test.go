package catalog

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmcdole/champdex/internal/domain"
	"github.com/mmcdole/champdex/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient serves a fixed catalog and counts calls
type fakeClient struct {
	champions []domain.Champion
	details   map[string]*domain.ChampionDetail
	listErr   error
	delay     time.Duration

	listCalls   atomic.Int64
	detailCalls atomic.Int64
}

func newFakeClient(n int) *fakeClient {
	f := &fakeClient{details: make(map[string]*domain.ChampionDetail)}
	for i := 0; i < n; i++ {
		c := domain.Champion{ID: fmt.Sprintf("C%03d", i), Name: fmt.Sprintf("Champion %d", i)}
		f.champions = append(f.champions, c)
		f.details[c.ID] = &domain.ChampionDetail{Champion: c}
	}
	return f
}

func (f *fakeClient) GetChampions(ctx context.Context) ([]domain.Champion, error) {
	f.listCalls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.champions, nil
}

func (f *fakeClient) GetChampion(ctx context.Context, id string) (*domain.ChampionDetail, error) {
	f.detailCalls.Add(1)
	d, ok := f.details[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func TestService_FetchPage_FetchesOnce(t *testing.T) {
	client := newFakeClient(12)
	svc := NewService(client, log.NullLogger())
	ctx := context.Background()

	cursor := PageCursor{Page: 1, Size: 5}
	var got []domain.Champion
	for i := 0; i < 4; i++ {
		page, total, err := svc.FetchPage(ctx, cursor)
		require.NoError(t, err)
		assert.Equal(t, 12, total)
		got = append(got, page...)
		cursor = cursor.Next()
	}

	assert.Len(t, got, 12)
	assert.Equal(t, int64(1), client.listCalls.Load())
}

func TestService_Catalog_ConcurrentCallersShareFetch(t *testing.T) {
	client := newFakeClient(3)
	client.delay = 50 * time.Millisecond
	svc := NewService(client, log.NullLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			champions, err := svc.Catalog(context.Background())
			assert.NoError(t, err)
			assert.Len(t, champions, 3)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), client.listCalls.Load())
}

func TestService_Catalog_ErrorNotCached(t *testing.T) {
	client := newFakeClient(3)
	client.listErr = domain.ErrNetwork
	svc := NewService(client, log.NullLogger())

	_, _, err := svc.FetchPage(context.Background(), PageCursor{Page: 1, Size: 2})
	assert.ErrorIs(t, err, domain.ErrNetwork)

	client.listErr = nil
	page, total, err := svc.FetchPage(context.Background(), PageCursor{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, 3, total)
	assert.Equal(t, int64(2), client.listCalls.Load())
}

func TestService_FetchDetail_AlwaysRefetches(t *testing.T) {
	client := newFakeClient(2)
	svc := NewService(client, log.NullLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := svc.FetchDetail(ctx, "C001")
		require.NoError(t, err)
		assert.Equal(t, "Champion 1", d.Name)
	}
	assert.Equal(t, int64(2), client.detailCalls.Load())

	_, err := svc.FetchDetail(ctx, "doesnotexist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
