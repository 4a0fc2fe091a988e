package importer

import (
	"strconv"
	"strings"
	"time"

	"portview/internal/domain"
)

// fieldIndex maps column names to their first position in the header row.
// Lookup is by name, never by position; an unknown name reads as an empty
// cell so the field-level defaults apply.
type fieldIndex map[string]int

func indexFields(header []string) fieldIndex {
	ix := make(fieldIndex, len(header))
	for i, name := range header {
		if _, ok := ix[name]; !ok {
			ix[name] = i
		}
	}
	return ix
}

func (ix fieldIndex) cell(row []string, name string) string {
	i, ok := ix[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// No data row is ever rejected: every row yields exactly one entity, with
// absent or unparseable cells replaced by the documented defaults.

func (im Importer) mapActions(header []string, rows [][]string) []domain.Action {
	ix := indexFields(header)
	now := im.now().UTC()
	ts := now.Format(time.RFC3339)
	today := now.Format("2006-01-02")
	actions := make([]domain.Action, 0, len(rows))
	for _, row := range rows {
		actions = append(actions, domain.Action{
			ID:             im.newID(),
			Name:           textOr(ix.cell(row, "name"), "Unnamed Action"),
			Description:    ix.cell(row, "description"),
			TargetOutcomes: splitList(ix.cell(row, "targetOutcomes")),
			Status:         domain.ParseActionStatus(ix.cell(row, "status")),
			Timeline: domain.Timeline{
				StartDate:  textOr(ix.cell(row, "startDate"), today),
				EndDate:    textOr(ix.cell(row, "endDate"), today),
				Milestones: []domain.Milestone{},
			},
			Sector:     textOr(ix.cell(row, "sector"), "General"),
			ImpactArea: textOr(ix.cell(row, "impactArea"), "General"),
			Budget:     floatOr(ix.cell(row, "budget"), 0),
			CreatedAt:  ts,
			UpdatedAt:  ts,
		})
	}
	return actions
}

func (im Importer) mapActors(header []string, rows [][]string) []domain.Actor {
	ix := indexFields(header)
	ts := im.now().UTC().Format(time.RFC3339)
	actors := make([]domain.Actor, 0, len(rows))
	for _, row := range rows {
		actors = append(actors, domain.Actor{
			ID:     im.newID(),
			Name:   textOr(ix.cell(row, "name"), "Unnamed Actor"),
			Type:   domain.ParseActorType(ix.cell(row, "type")),
			Sector: textOr(ix.cell(row, "sector"), "General"),
			Role:   textOr(ix.cell(row, "role"), "Stakeholder"),
			ContactInfo: domain.ContactInfo{
				Email:   ix.cell(row, "email"),
				Phone:   ix.cell(row, "phone"),
				Website: ix.cell(row, "website"),
			},
			Capacity:  intOr(ix.cell(row, "capacity"), 5),
			Influence: intOr(ix.cell(row, "influence"), 5),
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	return actors
}

func (im Importer) mapAssets(header []string, rows [][]string) []domain.Asset {
	ix := indexFields(header)
	ts := im.now().UTC().Format(time.RFC3339)
	assets := make([]domain.Asset, 0, len(rows))
	for _, row := range rows {
		assets = append(assets, domain.Asset{
			ID:           im.newID(),
			Name:         textOr(ix.cell(row, "name"), "Unnamed Asset"),
			Type:         domain.ParseAssetType(ix.cell(row, "type")),
			Description:  ix.cell(row, "description"),
			Value:        floatOr(ix.cell(row, "value"), 0),
			Availability: domain.ParseAvailability(ix.cell(row, "availability")),
			Owner:        ix.cell(row, "owner"),
			Location:     ix.cell(row, "location"),
			CreatedAt:    ts,
			UpdatedAt:    ts,
		})
	}
	return assets
}

// Connections are the one mapper that reads ids literally from the CSV:
// sourceId and targetId are foreign-key references into the portfolio,
// resolved later at graph-build time.
func (im Importer) mapConnections(header []string, rows [][]string) []domain.Connection {
	ix := indexFields(header)
	ts := im.now().UTC().Format(time.RFC3339)
	conns := make([]domain.Connection, 0, len(rows))
	for _, row := range rows {
		conns = append(conns, domain.Connection{
			ID:               im.newID(),
			SourceID:         ix.cell(row, "sourceId"),
			SourceType:       domain.ParseEntityKind(ix.cell(row, "sourceType"), domain.KindAction),
			TargetID:         ix.cell(row, "targetId"),
			TargetType:       domain.ParseEntityKind(ix.cell(row, "targetType"), domain.KindActor),
			RelationshipType: domain.ParseRelationshipType(ix.cell(row, "relationshipType")),
			Strength:         intOr(ix.cell(row, "strength"), 5),
			Description:      ix.cell(row, "description"),
			CreatedAt:        ts,
		})
	}
	return conns
}

// --- cell coercion helpers ---

func textOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func floatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func intOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// splitList splits a semicolon-delimited cell, dropping empty segments
// and preserving order. An absent cell yields an empty list, not nil, so
// JSON output stays an array.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ";") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
