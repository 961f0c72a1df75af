// Package graph provides the queryable dependency view over a validated
// schema: build order, reverse-dependency ("unlocks") lookup, and artifact
// membership. It is pure structure and performs no filesystem access.
package graph

import (
	"sort"

	"github.com/openspec-dev/openspec/internal/schema"
)

// Graph is a read-only dependency graph built from a validated schema.
// Construction assumes the schema passed reference and cycle validation.
type Graph struct {
	name       string
	order      []schema.ArtifactDefinition
	byID       map[string]schema.ArtifactDefinition
	dependents map[string][]string
}

// New builds a graph from a validated schema, precomputing the build order
// and the dependents adjacency.
func New(s *schema.Schema) *Graph {
	g := &Graph{
		name:       s.Name,
		byID:       make(map[string]schema.ArtifactDefinition, len(s.Artifacts)),
		dependents: make(map[string][]string),
	}

	for _, a := range s.Artifacts {
		g.byID[a.ID] = a
		for _, req := range a.Requires {
			g.dependents[req] = append(g.dependents[req], a.ID)
		}
	}

	g.order = buildOrder(s.Artifacts)
	return g
}

// Name returns the schema name.
func (g *Graph) Name() string {
	return g.name
}

// Artifact returns the definition for id, if it exists.
func (g *Graph) Artifact(id string) (schema.ArtifactDefinition, bool) {
	a, ok := g.byID[id]
	return a, ok
}

// Contains reports whether id names an artifact in this graph.
func (g *Graph) Contains(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// BuildOrder returns all artifacts ordered so every artifact appears after
// everything it requires. Artifacts at equal dependency depth keep their
// schema declaration order.
func (g *Graph) BuildOrder() []schema.ArtifactDefinition {
	return g.order
}

// Unlocks returns the artifacts whose requires list contains id, in
// declaration order. These become candidates for creation once id is done.
func (g *Graph) Unlocks(id string) []schema.ArtifactDefinition {
	ids := g.dependents[id]
	result := make([]schema.ArtifactDefinition, 0, len(ids))
	for _, depID := range ids {
		result = append(result, g.byID[depID])
	}
	return result
}

// buildOrder computes dependency depths with Kahn's algorithm and orders
// artifacts by depth. The sort is stable so declaration order breaks ties.
func buildOrder(artifacts []schema.ArtifactDefinition) []schema.ArtifactDefinition {
	depth := make(map[string]int, len(artifacts))
	inDegree := make(map[string]int, len(artifacts))
	dependents := make(map[string][]string)

	var queue []string
	for _, a := range artifacts {
		inDegree[a.ID] = len(a.Requires)
		for _, req := range a.Requires {
			dependents[req] = append(dependents[req], a.ID)
		}
		if len(a.Requires) == 0 {
			queue = append(queue, a.ID)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, dep := range dependents[id] {
			if depth[id]+1 > depth[dep] {
				depth[dep] = depth[id] + 1
			}
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	order := make([]schema.ArtifactDefinition, len(artifacts))
	copy(order, artifacts)
	sort.SliceStable(order, func(i, j int) bool {
		return depth[order[i].ID] < depth[order[j].ID]
	})
	return order
}
