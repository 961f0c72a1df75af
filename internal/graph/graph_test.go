package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openspec-dev/openspec/internal/graph"
	"github.com/openspec-dev/openspec/internal/schema"
)

func specDriven(t *testing.T) *schema.Schema {
	t.Helper()

	input := `name: spec-driven
version: 1
artifacts:
  - id: proposal
    generates: proposal.md
    template: proposal.md
  - id: specs
    generates: specs/*.md
    template: spec.md
    requires: [proposal]
  - id: design
    generates: design.md
    template: design.md
    requires: [proposal]
  - id: tasks
    generates: tasks.md
    template: tasks.md
    requires: [specs, design]
`
	s, err := schema.Parse([]byte(input), "schema.yaml")
	require.NoError(t, err)
	return s
}

func ids(artifacts []schema.ArtifactDefinition) []string {
	result := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		result = append(result, a.ID)
	}
	return result
}

func TestBuildOrder_RespectsRequires(t *testing.T) {
	t.Parallel()

	g := graph.New(specDriven(t))
	order := ids(g.BuildOrder())

	position := make(map[string]int)
	for i, id := range order {
		position[id] = i
	}

	for _, a := range g.BuildOrder() {
		for _, req := range a.Requires {
			assert.Less(t, position[req], position[a.ID],
				"%s must come after %s", a.ID, req)
		}
	}
}

func TestBuildOrder_DeclarationOrderTieBreak(t *testing.T) {
	t.Parallel()

	// specs and design sit at equal depth; declaration order holds.
	g := graph.New(specDriven(t))
	assert.Equal(t, []string{"proposal", "specs", "design", "tasks"}, ids(g.BuildOrder()))
}

func TestBuildOrder_IndependentArtifacts(t *testing.T) {
	t.Parallel()

	input := `name: flat
version: 1
artifacts:
  - id: c
    generates: c.md
    template: c.md
  - id: a
    generates: a.md
    template: a.md
  - id: b
    generates: b.md
    template: b.md
`
	s, err := schema.Parse([]byte(input), "schema.yaml")
	require.NoError(t, err)

	// No dependencies at all: declaration order is preserved wholesale.
	g := graph.New(s)
	assert.Equal(t, []string{"c", "a", "b"}, ids(g.BuildOrder()))
}

func TestUnlocks(t *testing.T) {
	t.Parallel()

	g := graph.New(specDriven(t))

	assert.Equal(t, []string{"specs", "design"}, ids(g.Unlocks("proposal")))
	assert.Equal(t, []string{"tasks"}, ids(g.Unlocks("specs")))
	assert.Empty(t, g.Unlocks("tasks"))
	assert.Empty(t, g.Unlocks("nonexistent"))
}

func TestArtifactLookup(t *testing.T) {
	t.Parallel()

	g := graph.New(specDriven(t))

	a, ok := g.Artifact("design")
	require.True(t, ok)
	assert.Equal(t, "design.md", a.Generates)

	_, ok = g.Artifact("ghost")
	assert.False(t, ok)

	assert.True(t, g.Contains("proposal"))
	assert.False(t, g.Contains("ghost"))
	assert.Equal(t, "spec-driven", g.Name())
}
