package domain

import "context"

// CatalogClient fetches champion data from the remote catalog.
// Implementations validate payloads before returning them, so callers
// never see entries without an ID or name.
type CatalogClient interface {
	// GetChampions returns the full catalog, ordered by ID
	GetChampions(ctx context.Context) ([]Champion, error)

	// GetChampion returns the detail record for one champion.
	// Returns ErrNotFound when the server has no such record.
	GetChampion(ctx context.Context, id string) (*ChampionDetail, error)
}
