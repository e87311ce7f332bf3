package ddragon

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/mmcdole/champdex/internal/domain"
)

// MapChampions converts the listing to domain champions, sorted by ID.
// Entries without an ID or name are dropped.
func MapChampions(data map[string]ChampionDTO, imageURL func(id string) string, logger *slog.Logger) []domain.Champion {
	champions := make([]domain.Champion, 0, len(data))
	for key, dto := range data {
		if dto.ID == "" {
			// The map key is the ID in every published version
			dto.ID = key
		}
		if !valid(dto) {
			logger.Warn("dropping invalid catalog entry", "key", key)
			continue
		}
		champions = append(champions, mapChampion(dto, imageURL))
	}

	// Go maps are unordered; pages are only stable if the order is
	sort.Slice(champions, func(i, j int) bool {
		return champions[i].ID < champions[j].ID
	})
	return champions
}

// MapChampionDetail picks the record for id out of a detail response.
// Returns nil when the payload holds no valid record for it.
func MapChampionDetail(data map[string]ChampionDetailDTO, id string, imageURL func(id string) string) *domain.ChampionDetail {
	dto, ok := data[id]
	if !ok {
		return nil
	}
	if dto.ID == "" {
		dto.ID = id
	}
	if !valid(dto.ChampionDTO) {
		return nil
	}

	return &domain.ChampionDetail{
		Champion:  mapChampion(dto.ChampionDTO, imageURL),
		Lore:      dto.Lore,
		AllyTips:  dto.AllyTips,
		EnemyTips: dto.EnemyTips,
	}
}

func valid(dto ChampionDTO) bool {
	return strings.TrimSpace(dto.ID) != "" && strings.TrimSpace(dto.Name) != ""
}

func mapChampion(dto ChampionDTO, imageURL func(id string) string) domain.Champion {
	c := domain.Champion{
		ID:      dto.ID,
		Key:     dto.Key,
		Name:    dto.Name,
		Title:   dto.Title,
		Tags:    dto.Tags,
		Blurb:   dto.Blurb,
		Partype: dto.Partype,
		Stats:   dto.Stats,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if dto.Info != nil {
		c.Info = &domain.Info{
			Attack:     dto.Info.Attack,
			Defense:    dto.Info.Defense,
			Magic:      dto.Info.Magic,
			Difficulty: dto.Info.Difficulty,
		}
	}
	if imageURL != nil {
		c.ImageURL = imageURL(dto.ID)
	}
	return c
}
