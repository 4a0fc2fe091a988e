package timeline_test

import (
	"testing"

	"portview/internal/domain"
	"portview/internal/store"
	"portview/internal/timeline"
)

func actionWithMilestones(id string, ms ...domain.Milestone) domain.Action {
	return domain.Action{ID: id, Name: "Action " + id, Timeline: domain.Timeline{Milestones: ms}}
}

func TestDeriveSortsByDueDate(t *testing.T) {
	p := domain.Portfolio{Actions: []domain.Action{
		actionWithMilestones("a1",
			domain.Milestone{ID: "late", DueDate: "2025-06-01", Status: domain.MilestonePending},
			domain.Milestone{ID: "early", DueDate: "2024-01-01", Status: domain.MilestoneCompleted},
		),
		actionWithMilestones("a2",
			domain.Milestone{ID: "mid", DueDate: "2024-08-15", Status: domain.MilestonePending},
		),
	}}
	v := timeline.Derive(p)
	if v.TotalMilestones != 3 || v.CompletedMilestones != 1 {
		t.Fatalf("counts: %d/%d", v.CompletedMilestones, v.TotalMilestones)
	}
	order := []string{v.Milestones[0].ID, v.Milestones[1].ID, v.Milestones[2].ID}
	if order[0] != "early" || order[1] != "mid" || order[2] != "late" {
		t.Fatalf("wrong order: %v", order)
	}
	if v.RangeStart != "2024-01-01" || v.RangeEnd != "2025-06-01" {
		t.Fatalf("range: %s .. %s", v.RangeStart, v.RangeEnd)
	}
	if v.Milestones[0].ActionID != "a1" || v.Milestones[1].ActionName != "Action a2" {
		t.Fatalf("parent action tags lost: %+v", v.Milestones)
	}
}

func TestDeriveStableOrderOnTies(t *testing.T) {
	p := domain.Portfolio{Actions: []domain.Action{
		actionWithMilestones("a1",
			domain.Milestone{ID: "first", DueDate: "2024-05-01"},
			domain.Milestone{ID: "second", DueDate: "2024-05-01"},
		),
	}}
	v := timeline.Derive(p)
	if v.Milestones[0].ID != "first" || v.Milestones[1].ID != "second" {
		t.Fatalf("tie order not stable: %v", v.Milestones)
	}
}

func TestDeriveProgressPercent(t *testing.T) {
	p := domain.Portfolio{Actions: []domain.Action{
		actionWithMilestones("a1",
			domain.Milestone{ID: "1", DueDate: "2024-01-01", Status: domain.MilestoneCompleted},
			domain.Milestone{ID: "2", DueDate: "2024-02-01", Status: domain.MilestoneCompleted},
			domain.Milestone{ID: "3", DueDate: "2024-03-01", Status: domain.MilestoneDelayed},
			domain.Milestone{ID: "4", DueDate: "2024-04-01", Status: domain.MilestonePending},
		),
	}}
	v := timeline.Derive(p)
	if v.OverallProgressPercent != 50 {
		t.Fatalf("progress: %v", v.OverallProgressPercent)
	}
}

func TestDeriveEmptyPortfolio(t *testing.T) {
	v := timeline.Derive(domain.Portfolio{})
	if v.OverallProgressPercent != 0 || v.TotalMilestones != 0 {
		t.Fatalf("empty derivation: %+v", v)
	}
	if v.RangeStart != "" || v.RangeEnd != "" {
		t.Fatalf("range should be empty: %s %s", v.RangeStart, v.RangeEnd)
	}
}

func TestDerivePositions(t *testing.T) {
	p := domain.Portfolio{Actions: []domain.Action{
		actionWithMilestones("a1",
			domain.Milestone{ID: "start", DueDate: "2024-01-01"},
			domain.Milestone{ID: "middle", DueDate: "2024-01-03"},
			domain.Milestone{ID: "end", DueDate: "2024-01-05"},
		),
	}}
	v := timeline.Derive(p)
	for i, want := range []float64{0, 0.5, 1} {
		got := v.Milestones[i].Position
		if got == nil || *got != want {
			t.Fatalf("position %d: got %v, want %v", i, got, want)
		}
	}
}

func TestDeriveZeroSpanHasNoPositions(t *testing.T) {
	p := domain.Portfolio{Actions: []domain.Action{
		actionWithMilestones("a1",
			domain.Milestone{ID: "1", DueDate: "2024-01-01"},
			domain.Milestone{ID: "2", DueDate: "2024-01-01"},
		),
	}}
	v := timeline.Derive(p)
	for _, m := range v.Milestones {
		if m.Position != nil {
			t.Fatalf("zero-span timeline must not assign positions: %+v", m)
		}
	}
}

func TestDeriveSeed(t *testing.T) {
	v := timeline.Derive(store.Seed())
	if v.TotalMilestones == 0 {
		t.Fatal("seed has milestones")
	}
	prev := ""
	for _, m := range v.Milestones {
		if prev != "" && m.DueDate < prev {
			t.Fatalf("due dates not non-decreasing: %s after %s", m.DueDate, prev)
		}
		prev = m.DueDate
	}
}
