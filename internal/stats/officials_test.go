package stats

import (
	"testing"

	"handball-tracker/internal/domain"
)

func officiatedGame(id string, order int, home, away, finalScore string, officials *domain.Officials) domain.Game {
	g := game(id, order, side(home), side(away))
	g.FinalScore = finalScore
	g.Officials = officials
	return g
}

func TestBuildOfficialsIndex_CountsPerRole(t *testing.T) {
	c := corpusOf(
		officiatedGame("g1", 1, "A", "B", "28:25", &domain.Officials{
			Referees:    []string{"Ref1", "Ref2"},
			Timekeepers: []string{"TK1"},
		}),
		officiatedGame("g2", 2, "C", "D", "30:30", &domain.Officials{
			Referees:    []string{"Ref1"},
			Secretaries: []string{"Sec1"},
		}),
	)

	index := BuildOfficialsIndex(c)

	if len(index.Referees) != 2 {
		t.Fatalf("referees len = %d, want 2", len(index.Referees))
	}
	ref1 := index.Referees[0]
	if ref1.Name != "Ref1" {
		t.Fatalf("top referee = %q, want Ref1 (higher count first)", ref1.Name)
	}
	if ref1.Count != 2 {
		t.Errorf("Ref1 count = %d, want 2", ref1.Count)
	}
	if len(ref1.Games) != 2 {
		t.Errorf("Ref1 games len = %d, want 2", len(ref1.Games))
	}
	if ref1.Games[0].Home != "A" || ref1.Games[0].Score != "28:25" {
		t.Errorf("Ref1 first game = %+v, want A vs B 28:25", ref1.Games[0])
	}

	if len(index.Timekeepers) != 1 || index.Timekeepers[0].Name != "TK1" {
		t.Errorf("timekeepers = %v, want only TK1", index.Timekeepers)
	}
	if len(index.Secretaries) != 1 || index.Secretaries[0].Name != "Sec1" {
		t.Errorf("secretaries = %v, want only Sec1", index.Secretaries)
	}
}

func TestBuildOfficialsIndex_RolesStaySeparate(t *testing.T) {
	c := corpusOf(
		officiatedGame("g1", 1, "A", "B", "20:20", &domain.Officials{
			Referees:    []string{"Doppelrolle"},
			Timekeepers: []string{"Doppelrolle"},
		}),
	)

	index := BuildOfficialsIndex(c)
	if index.Referees[0].Count != 1 || index.Timekeepers[0].Count != 1 {
		t.Errorf("cross-role appearances merged: referees=%+v timekeepers=%+v", index.Referees, index.Timekeepers)
	}
}

func TestBuildOfficialsIndex_MissingScoreFallback(t *testing.T) {
	c := corpusOf(
		officiatedGame("g1", 1, "A", "B", "", &domain.Officials{Referees: []string{"Ref1"}}),
	)

	index := BuildOfficialsIndex(c)
	if got := index.Referees[0].Games[0].Score; got != "?:?" {
		t.Errorf("missing final score rendered as %q, want \"?:?\"", got)
	}
}

func TestBuildOfficialsIndex_TieKeepsInsertionOrder(t *testing.T) {
	c := corpusOf(
		officiatedGame("g1", 1, "A", "B", "1:0", &domain.Officials{Referees: []string{"Zuerst", "Danach"}}),
	)

	index := BuildOfficialsIndex(c)
	if index.Referees[0].Name != "Zuerst" || index.Referees[1].Name != "Danach" {
		t.Errorf("tie order = %v, want insertion order preserved", index.Referees)
	}
}

func TestBuildOfficialsIndex_SkipsGamesWithoutOfficials(t *testing.T) {
	c := corpusOf(game("g1", 1, side("A"), side("B")))

	index := BuildOfficialsIndex(c)
	if len(index.Referees)+len(index.Timekeepers)+len(index.Secretaries) != 0 {
		t.Errorf("index = %+v, want empty", index)
	}
}
