package stats

import (
	"math"
	"sort"

	"handball-tracker/internal/domain"
)

// PlayerSeasonStats is one row of the league-wide scorer leaderboard. A
// player is identified by the (name, team) pair; same-named players on
// different teams stay separate.
type PlayerSeasonStats struct {
	Name               string `json:"name"`
	Team               string `json:"team"`
	Goals              int    `json:"goals"`
	SevenMeterGoals    int    `json:"seven_meters_goals"`
	SevenMeterAttempts int    `json:"seven_meters_attempts"`
	SevenMeterPercent  int    `json:"seven_meter_percent"`
	Games              int    `json:"games"`
}

// PlayerStatistics aggregates every player's season line across the corpus,
// sorted by total goals descending.
func PlayerStatistics(c *domain.Corpus) []PlayerSeasonStats {
	type key struct{ name, team string }

	byPlayer := make(map[key]*PlayerSeasonStats)
	order := make([]key, 0)

	collect := func(side domain.TeamSide) {
		for _, p := range side.Players {
			k := key{name: p.Name, team: side.Name}
			s, ok := byPlayer[k]
			if !ok {
				s = &PlayerSeasonStats{Name: p.Name, Team: side.Name}
				byPlayer[k] = s
				order = append(order, k)
			}
			s.Goals += p.Goals
			s.SevenMeterGoals += p.SevenMeterGoals
			s.SevenMeterAttempts += p.SevenMeters
			s.Games++
		}
	}

	if c != nil {
		for _, g := range c.Games {
			collect(g.Home)
			collect(g.Away)
		}
	}

	result := make([]PlayerSeasonStats, 0, len(order))
	for _, k := range order {
		s := byPlayer[k]
		if s.SevenMeterAttempts > 0 {
			s.SevenMeterPercent = int(math.Round(float64(s.SevenMeterGoals) / float64(s.SevenMeterAttempts) * 100))
		}
		result = append(result, *s)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Goals > result[j].Goals
	})

	return result
}

// SevenMeterShooter extends a season line with the miss count; only players
// with at least one attempt qualify.
type SevenMeterShooter struct {
	PlayerSeasonStats
	SevenMeterMissed int `json:"seven_meter_missed"`
}

// SevenMeterShooters ranks penalty takers by converted seven meters.
func SevenMeterShooters(c *domain.Corpus) []SevenMeterShooter {
	players := PlayerStatistics(c)

	shooters := make([]SevenMeterShooter, 0)
	for _, p := range players {
		if p.SevenMeterAttempts == 0 {
			continue
		}
		shooters = append(shooters, SevenMeterShooter{
			PlayerSeasonStats: p,
			SevenMeterMissed:  p.SevenMeterAttempts - p.SevenMeterGoals,
		})
	}

	sort.SliceStable(shooters, func(i, j int) bool {
		return shooters[i].SevenMeterGoals > shooters[j].SevenMeterGoals
	})

	return shooters
}

type TeamRatio struct {
	Team         string `json:"team"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Difference   int    `json:"difference"`
	Games        int    `json:"games"`
}

// TeamRatioStats ranks teams by season goal difference, descending.
func TeamRatioStats(c *domain.Corpus) []TeamRatio {
	order := teamEncounterOrder(c)
	result := make([]TeamRatio, 0, len(order))

	for _, team := range order {
		views := TeamPerspective(c, team)
		r := TeamRatio{Team: team, Games: len(views)}
		for _, v := range views {
			r.GoalsFor += v.GoalsFor
			r.GoalsAgainst += v.GoalsAgainst
		}
		r.Difference = r.GoalsFor - r.GoalsAgainst
		result = append(result, r)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Difference > result[j].Difference
	})

	return result
}

type TeamOffense struct {
	Team            string  `json:"team"`
	TotalGoals      int     `json:"total_goals"`
	Games           int     `json:"games"`
	AvgGoalsPerGame float64 `json:"avg_goals_per_game"`
}

// TeamOffenseStats ranks teams by goals thrown, descending. The per-game
// average is rounded to one decimal for display parity with the table view.
func TeamOffenseStats(c *domain.Corpus) []TeamOffense {
	order := teamEncounterOrder(c)
	result := make([]TeamOffense, 0, len(order))

	for _, team := range order {
		views := TeamPerspective(c, team)
		o := TeamOffense{Team: team, Games: len(views)}
		for _, v := range views {
			o.TotalGoals += v.GoalsFor
		}
		if o.Games > 0 {
			o.AvgGoalsPerGame = roundOneDecimal(float64(o.TotalGoals) / float64(o.Games))
		}
		result = append(result, o)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalGoals > result[j].TotalGoals
	})

	return result
}

type TeamDefense struct {
	Team               string  `json:"team"`
	TotalConceded      int     `json:"total_conceded"`
	Games              int     `json:"games"`
	AvgConcededPerGame float64 `json:"avg_conceded_per_game"`
}

// TeamDefenseStats ranks teams by goals conceded, fewest first.
func TeamDefenseStats(c *domain.Corpus) []TeamDefense {
	order := teamEncounterOrder(c)
	result := make([]TeamDefense, 0, len(order))

	for _, team := range order {
		views := TeamPerspective(c, team)
		d := TeamDefense{Team: team, Games: len(views)}
		for _, v := range views {
			d.TotalConceded += v.GoalsAgainst
		}
		if d.Games > 0 {
			d.AvgConcededPerGame = roundOneDecimal(float64(d.TotalConceded) / float64(d.Games))
		}
		result = append(result, d)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalConceded < result[j].TotalConceded
	})

	return result
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
