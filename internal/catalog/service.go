package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmcdole/champdex/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Service orchestrates catalog reads for the list and detail flows.
// The full catalog is fetched once per process and pages are sliced locally.
type Service struct {
	client domain.CatalogClient
	logger *slog.Logger

	group singleflight.Group

	mu     sync.RWMutex
	cached []domain.Champion
	loaded bool
}

// NewService creates a new catalog service.
func NewService(client domain.CatalogClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// Catalog returns the full catalog, hitting the network at most once.
// Concurrent first callers share a single request. Failures are not cached.
func (s *Service) Catalog(ctx context.Context) ([]domain.Champion, error) {
	s.mu.RLock()
	if s.loaded {
		champions := s.cached
		s.mu.RUnlock()
		return champions, nil
	}
	s.mu.RUnlock()

	v, err, shared := s.group.Do("catalog", func() (any, error) {
		s.mu.RLock()
		if s.loaded {
			defer s.mu.RUnlock()
			return s.cached, nil
		}
		s.mu.RUnlock()

		champions, err := s.client.GetChampions(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cached = champions
		s.loaded = true
		s.mu.Unlock()
		return champions, nil
	})
	if err != nil {
		s.logger.Error("failed to fetch catalog", "error", err)
		return nil, err
	}
	if shared {
		s.logger.Debug("catalog fetch shared with concurrent caller")
	}
	return v.([]domain.Champion), nil
}

// FetchPage returns one page of the catalog and the catalog size
func (s *Service) FetchPage(ctx context.Context, cursor PageCursor) ([]domain.Champion, int, error) {
	champions, err := s.Catalog(ctx)
	if err != nil {
		return nil, 0, err
	}
	page := Slice(champions, cursor)
	s.logger.Debug("sliced page", "page", cursor.Page, "size", cursor.Size, "count", len(page), "total", len(champions))
	return page, len(champions), nil
}

// FetchDetail always asks the network; revisiting a champion re-fetches it
func (s *Service) FetchDetail(ctx context.Context, id string) (*domain.ChampionDetail, error) {
	detail, err := s.client.GetChampion(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch champion detail", "id", id, "error", err)
		return nil, err
	}
	s.logger.Debug("fetched champion detail", "champion", detail.String())
	return detail, nil
}
