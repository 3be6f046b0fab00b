package stats

import "handball-tracker/internal/domain"

// PlayerTotals holds summed stat counters. Games counts appearances and is
// only filled by PlayerTotalStats.
type PlayerTotals struct {
	Goals           int `json:"goals"`
	SevenMeters     int `json:"seven_meters"`
	SevenMeterGoals int `json:"seven_meters_goals"`
	TwoMinPenalties int `json:"two_min_penalties"`
	YellowCards     int `json:"yellow_cards"`
	RedCards        int `json:"red_cards"`
	BlueCards       int `json:"blue_cards"`
	Games           int `json:"games"`
}

func (t *PlayerTotals) add(p domain.PlayerLine) {
	t.Goals += p.Goals
	t.SevenMeters += p.SevenMeters
	t.SevenMeterGoals += p.SevenMeterGoals
	t.TwoMinPenalties += p.TwoMinPenalties
	t.YellowCards += p.YellowCards
	t.RedCards += p.RedCards
	t.BlueCards += p.BlueCards
}

// PlayerGameStats returns one player's stat line in one game, or nil when the
// player did not appear. Identity is exact string equality on the name.
func PlayerGameStats(view TeamGameView, player string) *PlayerTotals {
	for _, p := range view.Players {
		if p.Name == player {
			t := &PlayerTotals{}
			t.add(p)
			return t
		}
	}
	return nil
}

// PlayerTotalStats sums a player's stats across every view they appear in.
// Games played only counts views where the player is present.
func PlayerTotalStats(views []TeamGameView, player string) PlayerTotals {
	var totals PlayerTotals
	for _, view := range views {
		for _, p := range view.Players {
			if p.Name == player {
				totals.add(p)
				totals.Games++
				break
			}
		}
	}
	return totals
}

// GameTotals sums every stat over a view's player list, the "match total" row.
func GameTotals(view TeamGameView) PlayerTotals {
	var totals PlayerTotals
	for _, p := range view.Players {
		totals.add(p)
	}
	return totals
}
