// Package metrics computes the dashboard summary figures from a
// portfolio snapshot.
package metrics

import (
	"math"

	"github.com/Rhymond/go-money"

	"portview/internal/domain"
)

type Summary struct {
	TotalActions              int     `json:"total_actions"`
	TotalActors               int     `json:"total_actors"`
	TotalAssets               int     `json:"total_assets"`
	CompletedActions          int     `json:"completed_actions"`
	InProgressActions         int     `json:"in_progress_actions"`
	TotalBudget               float64 `json:"total_budget"`
	TotalFunding              float64 `json:"total_funding"`
	FormattedFunding          string  `json:"formatted_funding"`
	SynergisticSolutions      int     `json:"synergistic_solutions"`
	CrossSectorCollaborations int     `json:"cross_sector_collaborations"`
}

// Compute derives all summary figures in one pass per collection. Total
// funding sums only funding-type assets; cross-sector collaborations
// count distinct actor-to-actor connection pairs.
func Compute(p domain.Portfolio) Summary {
	s := Summary{
		TotalActions: len(p.Actions),
		TotalActors:  len(p.Actors),
		TotalAssets:  len(p.Assets),
	}
	for _, a := range p.Actions {
		s.TotalBudget += a.Budget
		switch a.Status {
		case domain.ActionCompleted:
			s.CompletedActions++
		case domain.ActionInProgress:
			s.InProgressActions++
		}
	}
	for _, a := range p.Assets {
		if a.Type == domain.AssetFunding {
			s.TotalFunding += a.Value
		}
	}
	pairs := map[string]bool{}
	for _, c := range p.Connections {
		if c.RelationshipType == domain.RelSynergy {
			s.SynergisticSolutions++
		}
		if c.SourceType == domain.KindActor && c.TargetType == domain.KindActor {
			pairs[c.SourceID+"-"+c.TargetID] = true
		}
	}
	s.CrossSectorCollaborations = len(pairs)
	s.FormattedFunding = FormatCurrency(s.TotalFunding)
	return s
}

// FormatCurrency renders an amount as whole US dollars ($2,500,000).
func FormatCurrency(amount float64) string {
	m := money.New(int64(math.Round(amount))*100, money.USD)
	display := m.Display()
	// whole-dollar presentation, matching the dashboard cards
	if len(display) > 3 && display[len(display)-3] == '.' {
		display = display[:len(display)-3]
	}
	return display
}
