package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Parse deserializes and validates a schema definition. path is used only
// for error reporting. Malformed YAML fails with a LoadError; a structurally
// parseable but semantically invalid schema fails with a ValidationError.
func Parse(data []byte, path string) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if err := validateShape(&s); err != nil {
		return nil, err
	}
	if err := validateReferences(&s); err != nil {
		return nil, err
	}
	if err := detectCycles(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// validateShape checks required fields via struct tags.
func validateShape(s *Schema) error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return &ValidationError{Schema: s.Name, Detail: fmt.Sprintf("missing required fields: %v", err)}
	}
	return nil
}

// validateReferences checks artifact id uniqueness and that every requires
// entry (including the apply block's) names a defined artifact.
func validateReferences(s *Schema) error {
	ids := make(map[string]struct{}, len(s.Artifacts))
	for _, a := range s.Artifacts {
		if _, dup := ids[a.ID]; dup {
			return &ValidationError{Schema: s.Name, Detail: fmt.Sprintf("duplicate artifact id %q", a.ID)}
		}
		ids[a.ID] = struct{}{}
	}

	for _, a := range s.Artifacts {
		for _, req := range a.Requires {
			if _, ok := ids[req]; !ok {
				return &ValidationError{
					Schema: s.Name,
					Detail: fmt.Sprintf("artifact %q requires non-existent artifact %q", a.ID, req),
				}
			}
		}
	}

	if s.Apply != nil {
		for _, req := range s.Apply.Requires {
			if _, ok := ids[req]; !ok {
				return &ValidationError{
					Schema: s.Name,
					Detail: fmt.Sprintf("apply requires non-existent artifact %q", req),
				}
			}
		}
	}

	return nil
}

// nodeColor marks DFS traversal state during cycle detection.
type nodeColor int

const (
	white nodeColor = iota // not yet visited
	gray                   // on the current traversal path
	black                  // fully explored
)

// detectCycles runs a depth-first traversal with three-color marking over
// the requires adjacency. Reaching a gray node signals a cycle; the error
// names the artifacts along it. This runs at parse time so no graph query
// ever observes a cyclic schema.
func detectCycles(s *Schema) error {
	colors := make(map[string]nodeColor, len(s.Artifacts))
	requires := make(map[string][]string, len(s.Artifacts))
	for _, a := range s.Artifacts {
		requires[a.ID] = a.Requires
	}

	var visit func(id string, path []string) []string
	visit = func(id string, path []string) []string {
		colors[id] = gray
		path = append(path, id)

		for _, req := range requires[id] {
			switch colors[req] {
			case gray:
				return cyclePath(path, req)
			case white:
				if cycle := visit(req, path); cycle != nil {
					return cycle
				}
			}
		}

		colors[id] = black
		return nil
	}

	for _, a := range s.Artifacts {
		if colors[a.ID] != white {
			continue
		}
		if cycle := visit(a.ID, nil); cycle != nil {
			return &ValidationError{
				Schema: s.Name,
				Detail: fmt.Sprintf("cyclic requires chain: %s", strings.Join(cycle, " -> ")),
			}
		}
	}

	return nil
}

// cyclePath trims the DFS path to the cycle itself and closes the loop.
func cyclePath(path []string, start string) []string {
	for i, id := range path {
		if id == start {
			return append(path[i:], start)
		}
	}
	return append(path, start)
}
