package components

import (
	"strings"
	"testing"

	"github.com/mmcdole/champdex/internal/catalog"
	"github.com/mmcdole/champdex/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetailView_States(t *testing.T) {
	d := NewDetailView()
	d.SetSize(80, 30)

	d.SetLoading("Ahri")
	assert.Contains(t, d.Body(), "Loading details")

	flow := catalog.NewDetailFlow("Ahri")
	flow.Resolve(flow.Request(), nil, domain.ErrNotFound)
	d.SetFlow(flow)
	assert.Contains(t, d.Body(), NoDetailsText)
}

func TestDetailView_Ready(t *testing.T) {
	flow := catalog.NewDetailFlow("Ahri")
	flow.Resolve(flow.Request(), &domain.ChampionDetail{
		Champion: domain.Champion{
			ID:       "Ahri",
			Name:     "Ahri",
			Title:    "the Nine-Tailed Fox",
			Blurb:    "A fox.",
			Partype:  "Mana",
			Info:     &domain.Info{Attack: 3, Defense: 4, Magic: 8, Difficulty: 5},
			Stats:    map[string]float64{"hp": 526, "armor": 21},
			ImageURL: "https://cdn.example/img/champion/Ahri.png",
		},
		EnemyTips: []string{"Dodge the charm"},
	}, nil)

	d := NewDetailView()
	d.SetSize(80, 40)
	d.SetFlow(flow)

	body := d.Body()
	assert.Contains(t, body, "A fox.")
	assert.Contains(t, body, "Playing against")
	assert.Contains(t, body, "Dodge the charm")
	assert.Less(t, strings.Index(body, "armor"), strings.Index(body, "hp"))

	view := d.View()
	assert.Contains(t, view, "the Nine-Tailed Fox")
	assert.Contains(t, view, "Ahri.png")
}
