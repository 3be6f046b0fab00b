// Package stats derives statistics views from a loaded corpus. Every
// function is a pure fold over immutable game records: no corpus mutation,
// no error on empty input.
package stats

import (
	"fmt"
	"sort"

	"handball-tracker/internal/domain"
)

// TeamGameView is one game normalized to a single team's point of view.
// Score is always "{own}:{opp}" and is recomputed from player goal sums, not
// taken from the stored final score, so it cannot drift from the stat lines.
type TeamGameView struct {
	GameID       string              `json:"game_id"`
	Order        int                 `json:"order"`
	Date         string              `json:"date"`
	Score        string              `json:"score"`
	Opponent     string              `json:"opponent"`
	IsHome       bool                `json:"is_home"`
	GoalsFor     int                 `json:"goals_for"`
	GoalsAgainst int                 `json:"goals_against"`
	Players      []domain.PlayerLine `json:"players"`
}

// TeamPerspective returns one view per game the team took part in, sorted
// ascending by the game's order field. A team appearing in zero games yields
// an empty slice.
func TeamPerspective(c *domain.Corpus, team string) []TeamGameView {
	views := make([]TeamGameView, 0)
	if c == nil {
		return views
	}

	for _, g := range c.Games {
		homeGoals := sideGoals(g.Home)
		awayGoals := sideGoals(g.Away)

		if g.Home.Name == team {
			views = append(views, TeamGameView{
				GameID:       g.ID,
				Order:        g.Order,
				Date:         g.Date,
				Score:        fmt.Sprintf("%d:%d", homeGoals, awayGoals),
				Opponent:     g.Away.Name,
				IsHome:       true,
				GoalsFor:     homeGoals,
				GoalsAgainst: awayGoals,
				Players:      g.Home.Players,
			})
		}
		if g.Away.Name == team {
			views = append(views, TeamGameView{
				GameID:       g.ID,
				Order:        g.Order,
				Date:         g.Date,
				Score:        fmt.Sprintf("%d:%d", awayGoals, homeGoals),
				Opponent:     g.Home.Name,
				IsHome:       false,
				GoalsFor:     awayGoals,
				GoalsAgainst: homeGoals,
				Players:      g.Away.Players,
			})
		}
	}

	// date strings are not lexicographically safe across formats, order is
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Order < views[j].Order
	})

	return views
}

// TeamNames returns the unique team names of a corpus sorted alphabetically.
func TeamNames(c *domain.Corpus) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	if c == nil {
		return names
	}

	for _, g := range c.Games {
		for _, name := range []string{g.Home.Name, g.Away.Name} {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names
}

// teamEncounterOrder returns team names in first-appearance order, the tie
// order used by ranked views built with stable sorts.
func teamEncounterOrder(c *domain.Corpus) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	if c == nil {
		return names
	}

	for _, g := range c.Games {
		for _, name := range []string{g.Home.Name, g.Away.Name} {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}

	return names
}

func sideGoals(side domain.TeamSide) int {
	sum := 0
	for _, p := range side.Players {
		sum += p.Goals
	}
	return sum
}
