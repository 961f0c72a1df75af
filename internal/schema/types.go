// Package schema defines workflow schemas (artifacts and their dependencies),
// parses and validates them from YAML, and resolves them by name across the
// project, user, and built-in tiers.
package schema

import "strings"

// Schema is a named, versioned workflow definition. It is immutable once
// parsed; every command invocation parses it fresh from its source file.
type Schema struct {
	Name        string               `yaml:"name" json:"name" validate:"required"`
	Version     int                  `yaml:"version" json:"version" validate:"required,min=1"`
	Description string               `yaml:"description" json:"description,omitempty"`
	Artifacts   []ArtifactDefinition `yaml:"artifacts" json:"artifacts" validate:"required,min=1,dive"`
	Apply       *ApplyConfig         `yaml:"apply" json:"apply,omitempty"`
}

// ArtifactDefinition describes one document type in a workflow.
type ArtifactDefinition struct {
	ID          string   `yaml:"id" json:"id" validate:"required"`
	Generates   string   `yaml:"generates" json:"generates" validate:"required"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Template    string   `yaml:"template" json:"template" validate:"required"`
	Instruction string   `yaml:"instruction" json:"instruction,omitempty"`
	Requires    []string `yaml:"requires" json:"requires,omitempty"`
}

// ApplyConfig governs the implementation phase of a workflow.
type ApplyConfig struct {
	Requires    []string `yaml:"requires" json:"requires"`
	Tracks      string   `yaml:"tracks" json:"tracks,omitempty"`
	Instruction string   `yaml:"instruction" json:"instruction,omitempty"`
}

// Artifact returns the definition with the given id, if present.
func (s *Schema) Artifact(id string) (ArtifactDefinition, bool) {
	for _, a := range s.Artifacts {
		if a.ID == id {
			return a, true
		}
	}
	return ArtifactDefinition{}, false
}

// ArtifactIDs returns all artifact ids in declaration order.
func (s *Schema) ArtifactIDs() []string {
	ids := make([]string, 0, len(s.Artifacts))
	for _, a := range s.Artifacts {
		ids = append(ids, a.ID)
	}
	return ids
}

// NormalizeName strips a trailing .yaml or .yml suffix from a schema name,
// so "x", "x.yaml", and "x.yml" all resolve to the same schema.
func NormalizeName(name string) string {
	if strings.HasSuffix(name, ".yaml") {
		return strings.TrimSuffix(name, ".yaml")
	}
	return strings.TrimSuffix(name, ".yml")
}
