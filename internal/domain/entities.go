package domain

import (
	"fmt"
	"strings"
)

// Info holds the 0-10 ratings shown on a champion's detail page
type Info struct {
	Attack     int
	Defense    int
	Magic      int
	Difficulty int
}

// Champion is a single catalog entry
type Champion struct {
	ID      string   // Unique identifier, e.g. "Ahri" (also used in URLs)
	Key     string   // Numeric key as a string, e.g. "103"
	Name    string   // Display name
	Title   string   // e.g. "the Nine-Tailed Fox"
	Tags    []string // Category tags, e.g. ["Mage", "Assassin"]
	Blurb   string   // Short narrative
	Partype string   // Resource type, e.g. "Mana"

	Info  *Info              // nil when the payload omitted it
	Stats map[string]float64 // nil when the payload omitted it

	ImageURL string // Square portrait URL (derived from ID + version)
}

// TagLine joins tags for compact display
func (c Champion) TagLine() string {
	return strings.Join(c.Tags, ", ")
}

// HasTag reports whether the champion carries the tag (case-insensitive)
func (c Champion) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ChampionDetail is the richer record served by the per-champion endpoint
type ChampionDetail struct {
	Champion

	Lore      string
	AllyTips  []string
	EnemyTips []string
}

// String is used in log lines
func (d ChampionDetail) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.ID)
}
