package schema

import "fmt"

// LoadError reports an unreadable or syntactically invalid schema source.
// It carries the offending file path and the underlying cause, and is
// distinguishable from ValidationError via errors.As.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading schema %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError reports a schema that parsed but is semantically invalid:
// a dangling requires reference, a duplicate artifact id, or a cyclic
// requires graph.
type ValidationError struct {
	Schema string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("invalid schema: %s", e.Detail)
	}
	return fmt.Sprintf("invalid schema %q: %s", e.Schema, e.Detail)
}

// TemplateError reports a missing template file referenced by a valid
// artifact. Path is the location that was attempted.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("loading template %s: %v", e.Path, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
