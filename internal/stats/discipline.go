package stats

import (
	"sort"

	"handball-tracker/internal/domain"
)

// Fair-play weights per card type.
const (
	BlueCardWeight   = 4
	RedCardWeight    = 3
	TwoMinWeight     = 2
	YellowCardWeight = 1
)

type TeamDiscipline struct {
	Team            string `json:"team"`
	BlueCards       int    `json:"blue_cards"`
	RedCards        int    `json:"red_cards"`
	TwoMinPenalties int    `json:"two_min_penalties"`
	YellowCards     int    `json:"yellow_cards"`
	Points          int    `json:"total_discipline_points"`
}

// DisciplineStats sums every team's cards over all of its players in all of
// its games and ranks teams by weighted discipline points, fewest first.
func DisciplineStats(c *domain.Corpus) []TeamDiscipline {
	byTeam := make(map[string]*TeamDiscipline)
	order := teamEncounterOrder(c)
	for _, team := range order {
		byTeam[team] = &TeamDiscipline{Team: team}
	}

	if c != nil {
		for _, g := range c.Games {
			for _, side := range []domain.TeamSide{g.Home, g.Away} {
				d, ok := byTeam[side.Name]
				if !ok {
					continue
				}
				for _, p := range side.Players {
					d.BlueCards += p.BlueCards
					d.RedCards += p.RedCards
					d.TwoMinPenalties += p.TwoMinPenalties
					d.YellowCards += p.YellowCards
				}
			}
		}
	}

	result := make([]TeamDiscipline, 0, len(order))
	for _, team := range order {
		d := byTeam[team]
		d.Points = d.BlueCards*BlueCardWeight +
			d.RedCards*RedCardWeight +
			d.TwoMinPenalties*TwoMinWeight +
			d.YellowCards*YellowCardWeight
		result = append(result, *d)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Points < result[j].Points
	})

	return result
}
