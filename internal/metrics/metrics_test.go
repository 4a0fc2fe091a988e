package metrics_test

import (
	"testing"

	"portview/internal/domain"
	"portview/internal/metrics"
	"portview/internal/store"
)

func TestComputeSeed(t *testing.T) {
	s := metrics.Compute(store.Seed())
	if s.TotalActions != 5 || s.TotalActors != 6 || s.TotalAssets != 6 {
		t.Fatalf("totals: %+v", s)
	}
	if s.CompletedActions != 1 {
		t.Fatalf("completed: %d", s.CompletedActions)
	}
	if s.InProgressActions != 2 {
		t.Fatalf("in progress: %d", s.InProgressActions)
	}
	if s.TotalBudget != 89800000 {
		t.Fatalf("budget: %v", s.TotalBudget)
	}
	// only funding-type assets count, not the whole asset book
	if s.TotalFunding != 15000000 {
		t.Fatalf("funding: %v", s.TotalFunding)
	}
	if s.FormattedFunding != "$15,000,000" {
		t.Fatalf("formatted funding: %q", s.FormattedFunding)
	}
	if s.SynergisticSolutions != 2 {
		t.Fatalf("synergies: %d", s.SynergisticSolutions)
	}
	if s.CrossSectorCollaborations != 0 {
		t.Fatalf("collaborations: %d", s.CrossSectorCollaborations)
	}
}

func TestCrossSectorCollaborationsDistinctPairs(t *testing.T) {
	p := domain.Portfolio{
		Connections: []domain.Connection{
			{ID: "1", SourceID: "actor-1", SourceType: domain.KindActor, TargetID: "actor-2", TargetType: domain.KindActor},
			{ID: "2", SourceID: "actor-1", SourceType: domain.KindActor, TargetID: "actor-2", TargetType: domain.KindActor},
			{ID: "3", SourceID: "actor-2", SourceType: domain.KindActor, TargetID: "actor-3", TargetType: domain.KindActor},
			{ID: "4", SourceID: "actor-1", SourceType: domain.KindActor, TargetID: "asset-1", TargetType: domain.KindAsset},
		},
	}
	s := metrics.Compute(p)
	if s.CrossSectorCollaborations != 2 {
		t.Fatalf("expected 2 distinct actor pairs, got %d", s.CrossSectorCollaborations)
	}
}

func TestComputeEmpty(t *testing.T) {
	s := metrics.Compute(domain.Portfolio{})
	if s != (metrics.Summary{FormattedFunding: "$0"}) {
		t.Fatalf("empty summary: %+v", s)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:       "$0",
		1500:    "$1,500",
		2500000: "$2,500,000",
	}
	for in, want := range cases {
		if got := metrics.FormatCurrency(in); got != want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}
