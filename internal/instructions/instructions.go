// Package instructions produces the enriched payload for creating one
// artifact: its template, dependency completion state, what it unlocks, and
// any project-wide context or per-artifact rules.
package instructions

import (
	"sort"
	"strings"

	"github.com/openspec-dev/openspec/internal/change"
	"github.com/openspec-dev/openspec/internal/diag"
	"github.com/openspec-dev/openspec/internal/errors"
	"github.com/openspec-dev/openspec/internal/project"
)

// Dependency is one required artifact with its completion state.
type Dependency struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
	Done        bool   `json:"done"`
}

// Instructions is the computed payload for creating one artifact. Context,
// Rules, and Template are independent fields; none is folded into another.
type Instructions struct {
	ArtifactID   string       `json:"artifactId"`
	OutputPath   string       `json:"outputPath"`
	Description  string       `json:"description,omitempty"`
	Instruction  string       `json:"instruction,omitempty"`
	Template     string       `json:"template"`
	Dependencies []Dependency `json:"dependencies"`
	Unlocks      []string     `json:"unlocks"`
	Context      string       `json:"context,omitempty"`
	Rules        []string     `json:"rules,omitempty"`
}

// Generate builds the instructions for artifactID within ctx. cfg may be
// nil when the project has no config. Unknown artifact ids fail with a
// descriptive error; a missing template file fails with a TemplateError
// carrying the attempted path.
func Generate(ctx *change.Context, artifactID string, cfg *project.Config, dc *diag.Collector) (*Instructions, error) {
	artifact, ok := ctx.Graph.Artifact(artifactID)
	if !ok {
		valid := ctx.Schema.ArtifactIDs()
		return nil, errors.UnknownArtifact(artifactID, ctx.Graph.Name(), valid)
	}

	template, err := ctx.Schema.Template(artifact.Template)
	if err != nil {
		return nil, err
	}

	result := &Instructions{
		ArtifactID:   artifact.ID,
		OutputPath:   ctx.ArtifactPath(artifact),
		Description:  artifact.Description,
		Instruction:  artifact.Instruction,
		Template:     template,
		Dependencies: []Dependency{},
		Unlocks:      []string{},
	}

	for _, reqID := range artifact.Requires {
		req, _ := ctx.Graph.Artifact(reqID)
		result.Dependencies = append(result.Dependencies, Dependency{
			ID:          req.ID,
			Path:        ctx.ArtifactPath(req),
			Description: req.Description,
			Done:        ctx.ArtifactDone(req),
		})
	}

	for _, unlocked := range ctx.Graph.Unlocks(artifact.ID) {
		result.Unlocks = append(result.Unlocks, unlocked.ID)
	}

	if cfg != nil {
		// Context is injected verbatim, multi-line content included.
		result.Context = cfg.Context
		result.Rules = rulesFor(ctx, artifact.ID, cfg, dc)
	}

	return result, nil
}

// rulesFor returns the rules for artifactID and warns once per unknown
// rules key. The warn-once behavior comes from the collector's dedup, so
// repeated Generate calls within one invocation do not repeat warnings.
func rulesFor(ctx *change.Context, artifactID string, cfg *project.Config, dc *diag.Collector) []string {
	for key := range cfg.Rules {
		if ctx.Graph.Contains(key) {
			continue
		}
		valid := ctx.Schema.ArtifactIDs()
		sort.Strings(valid)
		dc.Warnf(diag.KindRules, "rules."+key,
			"unknown artifact id %q in schema %q (valid: %s)",
			key, ctx.Graph.Name(), strings.Join(valid, ", "))
	}

	return cfg.Rules[artifactID]
}
