package stats

import (
	"testing"

	"handball-tracker/internal/domain"
)

func statLine(name string, goals, sevenM, sevenMGoals, twoMin, yellow, red, blue int) domain.PlayerLine {
	return domain.PlayerLine{
		Name:            name,
		Goals:           goals,
		SevenMeters:     sevenM,
		SevenMeterGoals: sevenMGoals,
		TwoMinPenalties: twoMin,
		YellowCards:     yellow,
		RedCards:        red,
		BlueCards:       blue,
	}
}

func TestPlayerGameStats_AbsentPlayerIsNil(t *testing.T) {
	view := TeamGameView{Players: []domain.PlayerLine{statLine("X", 3, 0, 0, 0, 0, 0, 0)}}

	if got := PlayerGameStats(view, "Y"); got != nil {
		t.Errorf("PlayerGameStats(absent) = %+v, want nil", got)
	}
}

func TestPlayerGameStats_ExactNameMatch(t *testing.T) {
	view := TeamGameView{Players: []domain.PlayerLine{statLine("Max Meier", 3, 2, 1, 0, 1, 0, 0)}}

	if got := PlayerGameStats(view, "max meier"); got != nil {
		t.Errorf("case-insensitive match returned %+v, want nil", got)
	}

	got := PlayerGameStats(view, "Max Meier")
	if got == nil {
		t.Fatal("PlayerGameStats = nil, want stats")
	}
	if got.Goals != 3 || got.SevenMeters != 2 || got.SevenMeterGoals != 1 || got.YellowCards != 1 {
		t.Errorf("stats = %+v, want goals=3 7m=2 7mGoals=1 yellow=1", got)
	}
}

func TestPlayerTotalStats_SumsAcrossAppearances(t *testing.T) {
	views := []TeamGameView{
		{Players: []domain.PlayerLine{statLine("X", 3, 1, 1, 2, 1, 0, 0)}},
		{Players: []domain.PlayerLine{statLine("Z", 5, 0, 0, 0, 0, 0, 0)}}, // X absent
		{Players: []domain.PlayerLine{statLine("X", 2, 1, 0, 0, 0, 1, 1)}},
	}

	got := PlayerTotalStats(views, "X")
	want := PlayerTotals{Goals: 5, SevenMeters: 2, SevenMeterGoals: 1, TwoMinPenalties: 2, YellowCards: 1, RedCards: 1, BlueCards: 1, Games: 2}
	if got != want {
		t.Errorf("PlayerTotalStats = %+v, want %+v", got, want)
	}
}

func TestPlayerTotalStats_NoAppearances(t *testing.T) {
	views := []TeamGameView{
		{Players: []domain.PlayerLine{statLine("X", 3, 0, 0, 0, 0, 0, 0)}},
	}

	got := PlayerTotalStats(views, "Nobody")
	if got != (PlayerTotals{}) {
		t.Errorf("PlayerTotalStats(absent) = %+v, want zero value", got)
	}
}

func TestGameTotals_EqualsPerPlayerSum(t *testing.T) {
	view := TeamGameView{Players: []domain.PlayerLine{
		statLine("A", 4, 2, 2, 1, 1, 0, 0),
		statLine("B", 0, 1, 0, 2, 0, 1, 0),
		statLine("C", 7, 0, 0, 0, 0, 0, 1),
	}}

	totals := GameTotals(view)

	var want PlayerTotals
	for _, p := range view.Players {
		s := PlayerGameStats(view, p.Name)
		if s == nil {
			t.Fatalf("player %q missing from own view", p.Name)
		}
		want.Goals += s.Goals
		want.SevenMeters += s.SevenMeters
		want.SevenMeterGoals += s.SevenMeterGoals
		want.TwoMinPenalties += s.TwoMinPenalties
		want.YellowCards += s.YellowCards
		want.RedCards += s.RedCards
		want.BlueCards += s.BlueCards
	}

	if totals != want {
		t.Errorf("GameTotals = %+v, want field-wise player sum %+v", totals, want)
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name     string
		kind     CellKind
		value    int
		attempts int
		want     string
	}{
		{"goals zero stays numeric", CellGoals, 0, 0, "0"},
		{"goals positive", CellGoals, 7, 0, "7"},
		{"attempts zero suppressed", CellAttempts, 0, 0, "-"},
		{"attempts positive", CellAttempts, 3, 0, "3"},
		{"other zero suppressed", CellOther, 0, 0, "-"},
		{"other positive", CellOther, 2, 0, "2"},
		{"seven meter goals without attempts suppressed", CellSevenMeterGoals, 0, 0, "-"},
		{"seven meter goals with inconsistent data suppressed", CellSevenMeterGoals, 2, 0, "-"},
		{"seven meter goals zero with attempts shown", CellSevenMeterGoals, 0, 3, "0"},
		{"seven meter goals with attempts", CellSevenMeterGoals, 2, 3, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.kind, tt.value, tt.attempts); got != tt.want {
				t.Errorf("FormatCell(%v, %d, %d) = %q, want %q", tt.kind, tt.value, tt.attempts, got, tt.want)
			}
		})
	}
}
