package testutil

import (
	"fmt"
)

// ChampionFixture is the JSON shape the fake CDN serves for one champion.
// It mirrors the Data Dragon payload rather than the domain type.
type ChampionFixture struct {
	Version string             `json:"version"`
	ID      string             `json:"id"`
	Key     string             `json:"key"`
	Name    string             `json:"name"`
	Title   string             `json:"title"`
	Blurb   string             `json:"blurb"`
	Info    map[string]int     `json:"info,omitempty"`
	Tags    []string           `json:"tags"`
	Partype string             `json:"partype"`
	Stats   map[string]float64 `json:"stats,omitempty"`
	Lore    string             `json:"lore,omitempty"`
}

// Ahri returns a trimmed copy of the real Ahri record
func Ahri() ChampionFixture {
	return ChampionFixture{
		ID:      "Ahri",
		Key:     "103",
		Name:    "Ahri",
		Title:   "the Nine-Tailed Fox",
		Blurb:   "Innately connected to the latent power of Runeterra, Ahri is a vastaya who can reshape magic into orbs of raw energy.",
		Info:    map[string]int{"attack": 3, "defense": 4, "magic": 8, "difficulty": 5},
		Tags:    []string{"Mage", "Assassin"},
		Partype: "Mana",
		Stats: map[string]float64{
			"hp":          526,
			"hpperlevel":  92,
			"mp":          418,
			"movespeed":   330,
			"attackrange": 550,
		},
		Lore: "Innately connected to the magic of the spirit realm, Ahri is a fox-like vastaya.",
	}
}

// Champions returns n generated champions with IDs Champ001..ChampNNN
func Champions(n int) []ChampionFixture {
	out := make([]ChampionFixture, n)
	for i := range out {
		id := fmt.Sprintf("Champ%03d", i+1)
		out[i] = ChampionFixture{
			ID:      id,
			Key:     fmt.Sprint(i + 1),
			Name:    fmt.Sprintf("Champion %d", i+1),
			Title:   fmt.Sprintf("the %dth", i+1),
			Tags:    []string{"Fighter"},
			Partype: "Mana",
			Info:    map[string]int{"attack": 5, "defense": 5, "magic": 5, "difficulty": 5},
			Stats:   map[string]float64{"hp": float64(500 + i)},
		}
	}
	return out
}
