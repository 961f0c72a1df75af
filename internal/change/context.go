// Package change resolves one unit of work against its schema and computes
// per-artifact status from on-disk artifact presence. Completion is always
// derived from the filesystem at call time; nothing here is cached or
// persisted.
package change

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openspec-dev/openspec/internal/fsio"
	"github.com/openspec-dev/openspec/internal/graph"
	"github.com/openspec-dev/openspec/internal/schema"
)

// DefaultSchema is used when neither the change metadata, the project
// config, nor an explicit argument names a schema.
const DefaultSchema = "spec-driven"

// metadataFileName is the optional per-change metadata file.
const metadataFileName = ".openspec.yaml"

// Context is one change's resolved workflow state. It is rebuilt on every
// command invocation and never cached across processes.
type Context struct {
	ProjectRoot string
	Name        string
	Schema      *schema.Resolved
	Graph       *graph.Graph

	fs fsio.FS
}

// metadata is the shape of a change's .openspec.yaml file.
type metadata struct {
	Schema string `yaml:"schema"`
}

// SchemaOverride reads the schema name from a change's .openspec.yaml, if
// the file exists and carries one. Any read or parse failure is treated as
// no override; the metadata file is advisory.
func SchemaOverride(fsys fsio.FS, projectRoot, changeName string) string {
	path := filepath.Join(projectRoot, "openspec", "changes", changeName, metadataFileName)
	data, err := fsys.ReadFile(path)
	if err != nil {
		return ""
	}
	var m metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return ""
	}
	return m.Schema
}

// SchemaName picks the schema for a change. Precedence: explicit argument,
// then the change's .openspec.yaml, then the project default, then the
// built-in default.
func SchemaName(fsys fsio.FS, projectRoot, changeName, explicit, projectDefault string) string {
	if explicit != "" {
		return explicit
	}
	if override := SchemaOverride(fsys, projectRoot, changeName); override != "" {
		return override
	}
	if projectDefault != "" {
		return projectDefault
	}
	return DefaultSchema
}

// NewContext resolves the named schema and wraps it in a graph for the
// given change. The change directory itself need not exist yet; status
// queries simply report nothing as done.
func NewContext(fsys fsio.FS, resolver *schema.Resolver, projectRoot, changeName, schemaName string) (*Context, error) {
	resolved, err := resolver.Resolve(schemaName)
	if err != nil {
		return nil, err
	}

	return &Context{
		ProjectRoot: projectRoot,
		Name:        changeName,
		Schema:      resolved,
		Graph:       graph.New(resolved.Schema),
		fs:          fsys,
	}, nil
}

// Dir returns the change's directory under openspec/changes.
func (c *Context) Dir() string {
	return filepath.Join(c.ProjectRoot, "openspec", "changes", c.Name)
}

// ArtifactPath returns where an artifact's generates target lives for this
// change. For glob patterns this is the pattern joined under the change dir.
func (c *Context) ArtifactPath(a schema.ArtifactDefinition) string {
	return filepath.Join(c.Dir(), filepath.FromSlash(a.Generates))
}

// ArtifactDone reports whether an artifact's generates target exists on
// disk right now. Literal paths check plain existence; patterns containing
// a wildcard use the narrow glob check.
func (c *Context) ArtifactDone(a schema.ArtifactDefinition) bool {
	if hasWildcard(a.Generates) {
		return globTargetExists(c.fs, c.Dir(), a.Generates)
	}
	return c.fs.Exists(c.ArtifactPath(a))
}

// ReadFile reads a file through the context's filesystem view.
func (c *Context) ReadFile(path string) ([]byte, error) {
	return c.fs.ReadFile(path)
}

// FindProjectRoot walks upward from startDir looking for a directory
// containing openspec/.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "openspec")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no openspec directory found in %s or any parent", startDir)
		}
		dir = parent
	}
}

// List returns the change names under openspec/changes in sorted order.
func List(fsys fsio.FS, projectRoot string) ([]string, error) {
	changesDir := filepath.Join(projectRoot, "openspec", "changes")
	entries, err := fsys.ReadDir(changesDir)
	if err != nil {
		return nil, fmt.Errorf("listing changes in %s: %w", changesDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Dir {
			names = append(names, e.Name)
		}
	}
	return names, nil
}
