package stats

import (
	"sort"

	"handball-tracker/internal/domain"
)

// Handball uses a two-point system.
const (
	winPoints  = 2
	drawPoints = 1
)

type TeamStanding struct {
	Team          string `json:"team"`
	Games         int    `json:"games"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsFor      int    `json:"goals_for"`
	GoalsAgainst  int    `json:"goals_against"`
	GoalDiff      int    `json:"goal_diff"`
	Points        int    `json:"points"`
	PointsFor     int    `json:"points_for"`
	PointsAgainst int    `json:"points_against"`
}

// Standings builds the league table from every team's perspective views.
// Sort order: points desc, goal difference desc, goals for desc; teams equal
// on all three keep their prior order (stable sort).
func Standings(c *domain.Corpus) []TeamStanding {
	teams := teamEncounterOrder(c)
	table := make([]TeamStanding, 0, len(teams))

	for _, team := range teams {
		views := TeamPerspective(c, team)

		s := TeamStanding{Team: team, Games: len(views)}
		for _, v := range views {
			s.GoalsFor += v.GoalsFor
			s.GoalsAgainst += v.GoalsAgainst

			switch {
			case v.GoalsFor > v.GoalsAgainst:
				s.Wins++
				s.PointsFor += winPoints
			case v.GoalsFor < v.GoalsAgainst:
				s.Losses++
				s.PointsAgainst += winPoints
			default:
				s.Draws++
				s.PointsFor += drawPoints
				s.PointsAgainst += drawPoints
			}
		}

		s.Points = s.Wins*winPoints + s.Draws*drawPoints
		s.GoalDiff = s.GoalsFor - s.GoalsAgainst
		table = append(table, s)
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		if table[i].GoalDiff != table[j].GoalDiff {
			return table[i].GoalDiff > table[j].GoalDiff
		}
		return table[i].GoalsFor > table[j].GoalsFor
	})

	return table
}
