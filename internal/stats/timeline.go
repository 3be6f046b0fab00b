package stats

import "handball-tracker/internal/domain"

// Situation is the scoring side's position right after its goal.
type Situation string

const (
	SituationLead    Situation = "lead"
	SituationTie     Situation = "tie"
	SituationDeficit Situation = "deficit"
)

// EnrichedGoal carries one timeline goal plus the derived match state at that
// instant. TimeInMinutes is relative to the start of its half.
type EnrichedGoal struct {
	TimeInMinutes float64   `json:"time_in_minutes"`
	Scorer        string    `json:"scorer"`
	Momentum      int       `json:"momentum"`
	Situation     Situation `json:"situation"`
	SevenMeter    bool      `json:"seven_meter"`
	ScoreHome     int       `json:"score_home"`
	ScoreAway     int       `json:"score_away"`
}

type HalfTimeline struct {
	Half            int            `json:"half"`
	DurationMinutes int            `json:"duration_minutes"`
	HomeGoals       []EnrichedGoal `json:"home_goals"`
	AwayGoals       []EnrichedGoal `json:"away_goals"`
}

// EnrichTimeline folds a chronological goal sequence into two half buckets,
// tracking the running score and the momentum streak (consecutive goals by
// one side, reset to 1 when the other side scores). Goals at or past
// halfDuration fall into the second half with their time offset by it.
func EnrichTimeline(events []domain.GoalEvent, halfDuration int) []HalfTimeline {
	halves := []HalfTimeline{
		{Half: 1, DurationMinutes: halfDuration},
		{Half: 2, DurationMinutes: halfDuration},
	}

	homeScore, awayScore := 0, 0
	var lastSide domain.Side
	momentum := 0

	for _, ev := range events {
		if ev.Side == domain.SideHome {
			homeScore++
		} else {
			awayScore++
		}

		own, opp := homeScore, awayScore
		if ev.Side == domain.SideAway {
			own, opp = awayScore, homeScore
		}
		situation := SituationTie
		if own > opp {
			situation = SituationLead
		} else if own < opp {
			situation = SituationDeficit
		}

		if ev.Side == lastSide {
			momentum++
		} else {
			momentum = 1
			lastSide = ev.Side
		}

		absolute := float64(ev.Minute) + float64(ev.Second)/60

		halfIdx := 0
		timeInHalf := absolute
		if absolute >= float64(halfDuration) {
			halfIdx = 1
			timeInHalf = absolute - float64(halfDuration)
		}

		goal := EnrichedGoal{
			TimeInMinutes: timeInHalf,
			Scorer:        ev.Scorer,
			Momentum:      momentum,
			Situation:     situation,
			SevenMeter:    ev.SevenMeter,
			ScoreHome:     homeScore,
			ScoreAway:     awayScore,
		}

		if ev.Side == domain.SideHome {
			halves[halfIdx].HomeGoals = append(halves[halfIdx].HomeGoals, goal)
		} else {
			halves[halfIdx].AwayGoals = append(halves[halfIdx].AwayGoals, goal)
		}
	}

	return halves
}
