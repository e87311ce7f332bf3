package ddragon

// ChampionListResponse is the root of champion.json
type ChampionListResponse struct {
	Type    string                 `json:"type"`
	Format  string                 `json:"format"`
	Version string                 `json:"version"`
	Data    map[string]ChampionDTO `json:"data"`
}

// ChampionDetailResponse is the root of champion/{id}.json
type ChampionDetailResponse struct {
	Type    string                       `json:"type"`
	Format  string                       `json:"format"`
	Version string                       `json:"version"`
	Data    map[string]ChampionDetailDTO `json:"data"`
}

// VersionsResponse is api/versions.json, newest first
type VersionsResponse []string

// ChampionDTO is one entry of the listing
type ChampionDTO struct {
	Version string             `json:"version"`
	ID      string             `json:"id"`
	Key     string             `json:"key"`
	Name    string             `json:"name"`
	Title   string             `json:"title"`
	Blurb   string             `json:"blurb"`
	Info    *InfoDTO           `json:"info,omitempty"`
	Image   ImageDTO           `json:"image"`
	Tags    []string           `json:"tags"`
	Partype string             `json:"partype"`
	Stats   map[string]float64 `json:"stats,omitempty"`
}

// ChampionDetailDTO adds the fields only the per-champion file carries
type ChampionDetailDTO struct {
	ChampionDTO
	Lore      string   `json:"lore"`
	AllyTips  []string `json:"allytips,omitempty"`
	EnemyTips []string `json:"enemytips,omitempty"`
}

// InfoDTO holds the 0-10 ratings
type InfoDTO struct {
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Magic      int `json:"magic"`
	Difficulty int `json:"difficulty"`
}

// ImageDTO describes the sprite/portrait file
type ImageDTO struct {
	Full   string `json:"full"`
	Sprite string `json:"sprite,omitempty"`
	Group  string `json:"group,omitempty"`
}
