package stats

import (
	"math"
	"math/rand"
	"testing"
)

const giniTolerance = 1e-9

func TestGiniCoefficient_EmptyInput(t *testing.T) {
	if got := GiniCoefficient(nil); got != 0 {
		t.Errorf("GiniCoefficient(nil) = %v, want 0", got)
	}
	if got := GiniCoefficient([]float64{}); got != 0 {
		t.Errorf("GiniCoefficient(empty) = %v, want 0", got)
	}
}

func TestGiniCoefficient_AllZeros(t *testing.T) {
	if got := GiniCoefficient([]float64{0, 0, 0}); got != 0 {
		t.Errorf("GiniCoefficient(all zeros) = %v, want 0 (zero mean must not divide)", got)
	}
}

func TestGiniCoefficient_PerfectEquality(t *testing.T) {
	for _, values := range [][]float64{
		{5},
		{3, 3},
		{7, 7, 7, 7, 7},
	} {
		if got := GiniCoefficient(values); math.Abs(got) > giniTolerance {
			t.Errorf("GiniCoefficient(%v) = %v, want 0", values, got)
		}
	}
}

func TestGiniCoefficient_SingleScorer(t *testing.T) {
	// n=4, mean=2.5, rank-weighted sum = 4*10 = 40:
	// G = 2*40/(16*2.5) - 5/4 = 0.75
	got := GiniCoefficient([]float64{0, 0, 0, 10})
	if math.Abs(got-0.75) > giniTolerance {
		t.Errorf("GiniCoefficient([0,0,0,10]) = %v, want 0.75", got)
	}
}

func TestGiniCoefficient_PermutationInvariant(t *testing.T) {
	values := []float64{4, 0, 9, 2, 2, 7, 1}
	want := GiniCoefficient(values)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]float64, len(values))
		copy(shuffled, values)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		if got := GiniCoefficient(shuffled); math.Abs(got-want) > giniTolerance {
			t.Fatalf("GiniCoefficient(%v) = %v, want %v (permutation invariant)", shuffled, got, want)
		}
	}
}

func TestGiniCoefficient_DoesNotMutateInput(t *testing.T) {
	values := []float64{9, 1, 5}
	GiniCoefficient(values)
	if values[0] != 9 || values[1] != 1 || values[2] != 5 {
		t.Errorf("input mutated: %v", values)
	}
}

func TestGoalDistributionStats_SeasonTotalsPerPlayer(t *testing.T) {
	// X scores 3 then 2: the distribution sample for A must be a single
	// value 5 per player, not one entry per appearance.
	c := corpusOf(
		game("g1", 1, side("A", scorer("X", 3), scorer("Y", 0)), side("B", scorer("Z", 1))),
		game("g2", 2, side("B", scorer("Z", 2)), side("A", scorer("X", 2), scorer("Y", 5))),
	)

	dist := GoalDistributionStats(c)
	if len(dist) != 2 {
		t.Fatalf("distribution len = %d, want 2", len(dist))
	}

	var a *TeamGoalDistribution
	for i := range dist {
		if dist[i].Team == "A" {
			a = &dist[i]
		}
	}
	if a == nil {
		t.Fatal("team A missing from distribution")
	}

	// samples for A: X=5, Y=5 → mean 5, median 5, gini 0
	if math.Abs(a.AvgGoalsPerPlayer-5) > giniTolerance {
		t.Errorf("A avg = %v, want 5", a.AvgGoalsPerPlayer)
	}
	if math.Abs(a.MedianGoalsPerPlayer-5) > giniTolerance {
		t.Errorf("A median = %v, want 5", a.MedianGoalsPerPlayer)
	}
	if math.Abs(a.GiniCoefficient) > giniTolerance {
		t.Errorf("A gini = %v, want 0 (equal season totals)", a.GiniCoefficient)
	}
}

func TestGoalDistributionStats_SortedByAverageDesc(t *testing.T) {
	c := corpusOf(
		game("g1", 1, side("Low", scorer("L", 1)), side("High", scorer("H", 9))),
	)

	dist := GoalDistributionStats(c)
	if len(dist) != 2 || dist[0].Team != "High" {
		t.Errorf("distribution order = %v, want High first", dist)
	}
}

func TestMedianOf_EvenCount(t *testing.T) {
	if got := medianOf([]float64{1, 2, 3, 4}); math.Abs(got-2.5) > giniTolerance {
		t.Errorf("medianOf(even) = %v, want 2.5", got)
	}
	if got := medianOf([]float64{5, 1, 3}); math.Abs(got-3) > giniTolerance {
		t.Errorf("medianOf(odd unsorted) = %v, want 3", got)
	}
}
