// Package graph derives the node/edge structure consumed by the
// rendering engine. The engine itself is opaque to us: it accepts nodes,
// edges, and the style hints and reports an initialization fault; nothing
// here depends on how it lays the graph out.
package graph

import (
	"github.com/sirupsen/logrus"

	"portview/internal/domain"
)

// Node carries one action, actor, or asset with the category-specific
// attributes the renderer keys styling off. Impacts and connections never
// become nodes.
type Node struct {
	ID           string              `json:"id"`
	Label        string              `json:"label"`
	Type         domain.EntityKind   `json:"type" enum:"action,actor,asset"`
	Status       domain.ActionStatus `json:"status,omitempty"`
	Sector       string              `json:"sector,omitempty"`
	ActorType    domain.ActorType    `json:"actor_type,omitempty"`
	AssetType    domain.AssetType    `json:"asset_type,omitempty"`
	Availability domain.Availability `json:"availability,omitempty"`
}

type Edge struct {
	ID               string                  `json:"id"`
	Source           string                  `json:"source"`
	Target           string                  `json:"target"`
	RelationshipType domain.RelationshipType `json:"relationship_type"`
	Strength         int                     `json:"strength"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Style Style  `json:"style"`
}

// Builder derives graphs; Log receives the dropped-connection
// diagnostics. Building has no failure mode beyond empty output.
type Builder struct {
	Log *logrus.Logger
}

func (b Builder) log() *logrus.Logger {
	if b.Log != nil {
		return b.Log
	}
	return logrus.StandardLogger()
}

// Build produces one node per action, actor, and asset and one edge per
// connection whose endpoints both resolve. A connection referencing an id
// outside the portfolio is dropped silently from the user's perspective:
// partial CSV imports (connections uploaded before the entities they
// reference) are expected, so a dangling reference is an operator
// diagnostic, never a failure.
func (b Builder) Build(p domain.Portfolio) Graph {
	nodes := make([]Node, 0, len(p.Actions)+len(p.Actors)+len(p.Assets))
	valid := make(map[string]bool, cap(nodes))

	for _, a := range p.Actions {
		nodes = append(nodes, Node{ID: a.ID, Label: a.Name, Type: domain.KindAction, Status: a.Status, Sector: a.Sector})
		valid[a.ID] = true
	}
	for _, a := range p.Actors {
		nodes = append(nodes, Node{ID: a.ID, Label: a.Name, Type: domain.KindActor, ActorType: a.Type, Sector: a.Sector})
		valid[a.ID] = true
	}
	for _, a := range p.Assets {
		nodes = append(nodes, Node{ID: a.ID, Label: a.Name, Type: domain.KindAsset, AssetType: a.Type, Availability: a.Availability})
		valid[a.ID] = true
	}

	edges := make([]Edge, 0, len(p.Connections))
	for _, conn := range p.Connections {
		if !valid[conn.SourceID] || !valid[conn.TargetID] {
			b.log().WithFields(logrus.Fields{
				"connection":     conn.ID,
				"source":         conn.SourceID,
				"source_missing": !valid[conn.SourceID],
				"target":         conn.TargetID,
				"target_missing": !valid[conn.TargetID],
			}).Warn("skipping connection with dangling endpoint")
			continue
		}
		edges = append(edges, Edge{
			ID:               conn.ID,
			Source:           conn.SourceID,
			Target:           conn.TargetID,
			RelationshipType: conn.RelationshipType,
			Strength:         conn.Strength,
		})
	}

	return Graph{Nodes: nodes, Edges: edges, Style: DefaultStyle()}
}
