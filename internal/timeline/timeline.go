// Package timeline flattens action milestones into a single dated view
// for the progress bar and timeline axis.
package timeline

import (
	"sort"
	"time"

	"portview/internal/domain"
)

// MilestoneView is a milestone tagged with its parent action. Position is
// the relative place on a linear axis in [0,1]; it is nil when the
// portfolio's date range is empty or has zero span, and callers must pick
// their own fallback (e.g. center) rather than divide by zero here.
type MilestoneView struct {
	domain.Milestone
	ActionID   string   `json:"action_id"`
	ActionName string   `json:"action_name"`
	Position   *float64 `json:"position,omitempty"`
}

// View is the derived timeline. RangeStart and RangeEnd are empty strings
// when there are no milestones; that is a documented state, not an error,
// and callers must handle it explicitly.
type View struct {
	OverallProgressPercent float64         `json:"overall_progress_percent"`
	CompletedMilestones    int             `json:"completed_milestones"`
	TotalMilestones        int             `json:"total_milestones"`
	Milestones             []MilestoneView `json:"milestones"`
	RangeStart             string          `json:"range_start,omitempty"`
	RangeEnd               string          `json:"range_end,omitempty"`
}

// Derive flattens every action's milestones, sorts them ascending by due
// date (stable, so ties keep their original relative order) and computes
// the completion ratio and per-milestone axis positions.
func Derive(p domain.Portfolio) View {
	var views []MilestoneView
	completed := 0
	for _, action := range p.Actions {
		for _, m := range action.Timeline.Milestones {
			views = append(views, MilestoneView{Milestone: m, ActionID: action.ID, ActionName: action.Name})
			if m.Status == domain.MilestoneCompleted {
				completed++
			}
		}
	}

	total := len(views)
	v := View{
		CompletedMilestones: completed,
		TotalMilestones:     total,
		Milestones:          views,
	}
	if total == 0 {
		return v
	}
	v.OverallProgressPercent = 100 * float64(completed) / float64(total)

	sort.SliceStable(views, func(i, j int) bool {
		return parseDue(views[i].DueDate).Before(parseDue(views[j].DueDate))
	})

	start := parseDue(views[0].DueDate)
	end := parseDue(views[len(views)-1].DueDate)
	v.RangeStart = views[0].DueDate
	v.RangeEnd = views[len(views)-1].DueDate

	if span := end.Sub(start); span > 0 {
		for i := range views {
			pos := float64(parseDue(views[i].DueDate).Sub(start)) / float64(span)
			pos = clamp01(pos)
			views[i].Position = &pos
		}
	}
	v.Milestones = views
	return v
}

// parseDue accepts the date-only form used throughout the CSVs as well
// as full RFC3339 timestamps. Anything unparseable maps to the zero time
// and simply sorts first; derivation never rejects data.
func parseDue(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
