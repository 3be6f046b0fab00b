package stats

import (
	"sort"

	"handball-tracker/internal/domain"
)

// GiniCoefficient computes the rank-based discrete Gini estimator over a set
// of non-negative values: 0 is perfect equality, values approach 1 as a
// single member accounts for everything. Returns 0 for an empty input or a
// zero mean. Permutation-invariant (input is copied and sorted).
func GiniCoefficient(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / n
	if mean == 0 {
		return 0
	}

	var rankWeighted float64
	for i, v := range sorted {
		rankWeighted += float64(i+1) * v
	}

	return (2*rankWeighted)/(n*n*mean) - (n+1)/n
}

type TeamGoalDistribution struct {
	Team                 string  `json:"team"`
	AvgGoalsPerPlayer    float64 `json:"avg_goals_per_player"`
	MedianGoalsPerPlayer float64 `json:"median_goals_per_player"`
	GiniCoefficient      float64 `json:"gini_coefficient"`
}

// GoalDistributionStats measures how evenly each team spreads its goals
// across its squad. The sample per team is each player's season goal total,
// not per-game entries, so a player's appearances collapse into one value.
// Sorted by average goals per player, descending.
func GoalDistributionStats(c *domain.Corpus) []TeamGoalDistribution {
	order := teamEncounterOrder(c)
	goalsByTeam := make(map[string]map[string]int, len(order))
	playerOrder := make(map[string][]string, len(order))
	for _, team := range order {
		goalsByTeam[team] = make(map[string]int)
	}

	if c != nil {
		for _, g := range c.Games {
			for _, side := range []domain.TeamSide{g.Home, g.Away} {
				totals, ok := goalsByTeam[side.Name]
				if !ok {
					continue
				}
				for _, p := range side.Players {
					if _, seen := totals[p.Name]; !seen {
						playerOrder[side.Name] = append(playerOrder[side.Name], p.Name)
					}
					totals[p.Name] += p.Goals
				}
			}
		}
	}

	result := make([]TeamGoalDistribution, 0, len(order))
	for _, team := range order {
		values := make([]float64, 0, len(playerOrder[team]))
		for _, player := range playerOrder[team] {
			values = append(values, float64(goalsByTeam[team][player]))
		}
		if len(values) == 0 {
			continue
		}

		result = append(result, TeamGoalDistribution{
			Team:                 team,
			AvgGoalsPerPlayer:    meanOf(values),
			MedianGoalsPerPlayer: medianOf(values),
			GiniCoefficient:      GiniCoefficient(values),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AvgGoalsPerPlayer > result[j].AvgGoalsPerPlayer
	})

	return result
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
