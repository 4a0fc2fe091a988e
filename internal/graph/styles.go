package graph

import "portview/internal/domain"

// Style hints for the rendering engine: color and size keyed by node
// category, edge color keyed by relationship type. These are data handed
// across the boundary, not rendering logic.

type NodeStyle struct {
	Color       string `json:"color"`
	BorderColor string `json:"border_color"`
	Size        int    `json:"size"`
}

type EdgeStyle struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

type Style struct {
	Nodes map[domain.EntityKind]NodeStyle       `json:"nodes"`
	Edges map[domain.RelationshipType]EdgeStyle `json:"edges"`
}

func DefaultStyle() Style {
	return Style{
		Nodes: map[domain.EntityKind]NodeStyle{
			domain.KindAction: {Color: "#0ea5e9", BorderColor: "#0284c7", Size: 20},
			domain.KindActor:  {Color: "#22c55e", BorderColor: "#16a34a", Size: 16},
			domain.KindAsset:  {Color: "#eab308", BorderColor: "#ca8a04", Size: 14},
		},
		Edges: map[domain.RelationshipType]EdgeStyle{
			domain.RelDependency: {Color: "#ef4444", Width: 2},
			domain.RelSynergy:    {Color: "#22c55e", Width: 2},
			domain.RelSupport:    {Color: "#0ea5e9", Width: 2},
			domain.RelConflict:   {Color: "#f59e0b", Width: 2},
		},
	}
}
