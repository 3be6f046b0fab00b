package stats

import (
	"testing"

	"handball-tracker/internal/domain"
)

func TestDisciplineStats_WeightedPoints(t *testing.T) {
	// blue=1, red=0, twoMin=2, yellow=3 → 1*4 + 0*3 + 2*2 + 3*1 = 11
	c := corpusOf(game("g1", 1,
		side("A",
			domain.PlayerLine{Name: "P1", BlueCards: 1, TwoMinPenalties: 1, YellowCards: 2},
			domain.PlayerLine{Name: "P2", TwoMinPenalties: 1, YellowCards: 1},
		),
		side("B", scorer("Y", 2)),
	))

	teams := DisciplineStats(c)
	if len(teams) != 2 {
		t.Fatalf("teams len = %d, want 2", len(teams))
	}

	// B has no cards and must rank first (fewer points = better fair play)
	if teams[0].Team != "B" {
		t.Errorf("first = %q, want B (clean record)", teams[0].Team)
	}

	a := teams[1]
	if a.Team != "A" {
		t.Fatalf("second = %q, want A", a.Team)
	}
	if a.BlueCards != 1 || a.RedCards != 0 || a.TwoMinPenalties != 2 || a.YellowCards != 3 {
		t.Errorf("A cards = %+v, want blue=1 red=0 twoMin=2 yellow=3", a)
	}
	if a.Points != 11 {
		t.Errorf("A discipline points = %d, want 11", a.Points)
	}
}

func TestDisciplineStats_CountsHomeAndAwayAppearances(t *testing.T) {
	c := corpusOf(
		game("g1", 1, side("A", domain.PlayerLine{Name: "P", YellowCards: 1}), side("B")),
		game("g2", 2, side("B"), side("A", domain.PlayerLine{Name: "P", YellowCards: 1})),
	)

	teams := DisciplineStats(c)
	for _, d := range teams {
		if d.Team == "A" && d.YellowCards != 2 {
			t.Errorf("A yellow cards = %d, want 2 (home and away games)", d.YellowCards)
		}
	}
}

func TestDisciplineStats_EmptyCorpus(t *testing.T) {
	if teams := DisciplineStats(corpusOf()); len(teams) != 0 {
		t.Errorf("teams = %v, want empty", teams)
	}
}
