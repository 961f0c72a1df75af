package schema

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openspec-dev/openspec/internal/schema/builtin"
)

// Tier identifies which schema source supplied a definition.
type Tier string

const (
	// TierProject is <projectRoot>/openspec/schemas.
	TierProject Tier = "project"
	// TierUser is $XDG_DATA_HOME/openspec/schemas.
	TierUser Tier = "user"
	// TierBuiltin is the packaged schema set shipped with the tool.
	TierBuiltin Tier = "builtin"
)

// schemaFileNames are tried in order when checking whether a directory
// holds a schema definition.
var schemaFileNames = []string{"schema.yaml", "schema.yml"}

// source is one tier's schema store. Resolution tries sources in order and
// the first match supplies the entire schema; tiers are never merged.
type source struct {
	tier Tier
	fsys fs.FS
	// root is the on-disk location for display; empty for the builtin tier.
	root string
}

// Resolver locates schemas by name across the three precedence tiers.
type Resolver struct {
	sources []source
}

// NewResolver builds a resolver for the given project root. Pass an empty
// projectRoot to skip the project tier.
func NewResolver(projectRoot string) *Resolver {
	var sources []source

	if projectRoot != "" {
		dir := filepath.Join(projectRoot, "openspec", "schemas")
		sources = append(sources, source{tier: TierProject, fsys: os.DirFS(dir), root: dir})
	}

	if userDir := userSchemasDir(); userDir != "" {
		sources = append(sources, source{tier: TierUser, fsys: os.DirFS(userDir), root: userDir})
	}

	sources = append(sources, source{tier: TierBuiltin, fsys: builtin.Schemas()})

	return &Resolver{sources: sources}
}

// userSchemasDir returns the user-global schema directory, honoring
// XDG_DATA_HOME with a ~/.local/share fallback.
func userSchemasDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "openspec", "schemas")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "openspec", "schemas")
}

// schemaFile returns the schema definition file under name, if present.
// A directory without one (including an empty directory) is not a match.
func (s source) schemaFile(name string) (string, bool) {
	for _, fileName := range schemaFileNames {
		candidate := name + "/" + fileName
		if info, err := fs.Stat(s.fsys, candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// displayPath renders a schema directory for error messages and listings.
func (s source) displayPath(name string) string {
	if s.root == "" {
		return fmt.Sprintf("builtin:%s", name)
	}
	return filepath.Join(s.root, name)
}

// Resolved is a parsed schema annotated with the tier and directory that
// supplied it. Template files are read from the same source.
type Resolved struct {
	*Schema
	Tier Tier
	Dir  string

	fsys fs.FS
	name string
}

// Template loads a template file from the schema's templates directory.
// A missing file fails with a TemplateError carrying the attempted path.
func (r *Resolved) Template(fileName string) (string, error) {
	rel := r.name + "/templates/" + fileName
	data, err := fs.ReadFile(r.fsys, rel)
	if err != nil {
		attempted := filepath.Join(r.Dir, "templates", fileName)
		return "", &TemplateError{Path: attempted, Err: err}
	}
	return string(data), nil
}

// SchemaDir returns the directory supplying the named schema, or false when
// no tier has it. The name is normalized before lookup.
func (r *Resolver) SchemaDir(name string) (string, Tier, bool) {
	name = NormalizeName(name)
	for _, s := range r.sources {
		if _, ok := s.schemaFile(name); ok {
			return s.displayPath(name), s.tier, true
		}
	}
	return "", "", false
}

// Resolve parses the named schema from the highest-precedence tier that has
// it. A name present in no tier fails with an error enumerating every
// discoverable schema name.
func (r *Resolver) Resolve(name string) (*Resolved, error) {
	name = NormalizeName(name)
	for _, s := range r.sources {
		file, ok := s.schemaFile(name)
		if !ok {
			continue
		}

		data, err := fs.ReadFile(s.fsys, file)
		if err != nil {
			return nil, &LoadError{Path: filepath.Join(s.displayPath(name), filepath.Base(file)), Err: err}
		}
		parsed, err := Parse(data, filepath.Join(s.displayPath(name), filepath.Base(file)))
		if err != nil {
			return nil, err
		}

		return &Resolved{
			Schema: parsed,
			Tier:   s.tier,
			Dir:    s.displayPath(name),
			fsys:   s.fsys,
			name:   name,
		}, nil
	}

	return nil, fmt.Errorf("schema %q not found; available schemas: %s",
		name, strings.Join(r.List(), ", "))
}

// List returns the deduplicated, sorted union of schema names across all
// tiers.
func (r *Resolver) List() []string {
	seen := make(map[string]struct{})
	for _, s := range r.sources {
		for _, name := range s.names() {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Info annotates a schema name with the tier and directory that win
// resolution for it.
type Info struct {
	Name string `json:"name"`
	Tier Tier   `json:"tier"`
	Dir  string `json:"dir"`
}

// ListWithInfo returns every visible schema with its winning tier.
func (r *Resolver) ListWithInfo() []Info {
	infos := make([]Info, 0)
	for _, name := range r.List() {
		dir, tier, ok := r.SchemaDir(name)
		if !ok {
			continue
		}
		infos = append(infos, Info{Name: name, Tier: tier, Dir: dir})
	}
	return infos
}

// names lists schema names visible in this source.
func (s source) names() []string {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, ok := s.schemaFile(e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	return names
}
