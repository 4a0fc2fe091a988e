package graph_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"portview/internal/domain"
	"portview/internal/graph"
	"portview/internal/store"
)

func quietBuilder() graph.Builder {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return graph.Builder{Log: log}
}

func TestBuildSeedGraph(t *testing.T) {
	p := store.Seed()
	g := quietBuilder().Build(p)
	wantNodes := len(p.Actions) + len(p.Actors) + len(p.Assets)
	if len(g.Nodes) != wantNodes {
		t.Fatalf("expected %d nodes, got %d", wantNodes, len(g.Nodes))
	}
	// seed connections all resolve
	if len(g.Edges) != len(p.Connections) {
		t.Fatalf("expected %d edges, got %d", len(p.Connections), len(g.Edges))
	}
}

func TestBuildDropsDanglingConnections(t *testing.T) {
	p := domain.Portfolio{
		Actions: []domain.Action{{ID: "action-1", Name: "A"}},
		Actors:  []domain.Actor{{ID: "actor-1", Name: "B"}},
		Connections: []domain.Connection{
			{ID: "ok", SourceID: "action-1", TargetID: "actor-1", RelationshipType: domain.RelSupport, Strength: 3},
			{ID: "bad-source", SourceID: "ghost", TargetID: "actor-1"},
			{ID: "bad-target", SourceID: "action-1", TargetID: "ghost"},
		},
	}
	g := quietBuilder().Build(p)
	if len(g.Edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(g.Edges))
	}
	e := g.Edges[0]
	if e.ID != "ok" || e.Source != "action-1" || e.Target != "actor-1" {
		t.Fatalf("wrong surviving edge: %+v", e)
	}
	if e.RelationshipType != domain.RelSupport || e.Strength != 3 {
		t.Fatalf("edge attributes lost: %+v", e)
	}
}

func TestNodeCategoryAttributes(t *testing.T) {
	p := domain.Portfolio{
		Actions: []domain.Action{{ID: "a", Name: "Act", Status: domain.ActionCompleted, Sector: "Energy"}},
		Actors:  []domain.Actor{{ID: "b", Name: "Org", Type: domain.ActorGovernment}},
		Assets:  []domain.Asset{{ID: "c", Name: "Fund", Type: domain.AssetFunding, Availability: domain.Limited}},
	}
	g := quietBuilder().Build(p)
	byID := map[string]graph.Node{}
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	if n := byID["a"]; n.Type != domain.KindAction || n.Status != domain.ActionCompleted || n.Sector != "Energy" {
		t.Fatalf("action node: %+v", n)
	}
	if n := byID["b"]; n.Type != domain.KindActor || n.ActorType != domain.ActorGovernment {
		t.Fatalf("actor node: %+v", n)
	}
	if n := byID["c"]; n.Type != domain.KindAsset || n.AssetType != domain.AssetFunding || n.Availability != domain.Limited {
		t.Fatalf("asset node: %+v", n)
	}
}

func TestDefaultStyleCoversAllVariants(t *testing.T) {
	s := graph.DefaultStyle()
	for _, kind := range []domain.EntityKind{domain.KindAction, domain.KindActor, domain.KindAsset} {
		if _, ok := s.Nodes[kind]; !ok {
			t.Fatalf("missing node style for %s", kind)
		}
	}
	for _, rel := range []domain.RelationshipType{domain.RelDependency, domain.RelSynergy, domain.RelSupport, domain.RelConflict} {
		if _, ok := s.Edges[rel]; !ok {
			t.Fatalf("missing edge style for %s", rel)
		}
	}
}

func TestEmptyPortfolioBuildsEmptyGraph(t *testing.T) {
	g := quietBuilder().Build(domain.Portfolio{})
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Fatalf("expected empty graph: %+v", g)
	}
}
