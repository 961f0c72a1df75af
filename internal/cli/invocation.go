package cli

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openspec-dev/openspec/internal/change"
	"github.com/openspec-dev/openspec/internal/config"
	"github.com/openspec-dev/openspec/internal/diag"
	clierrors "github.com/openspec-dev/openspec/internal/errors"
	"github.com/openspec-dev/openspec/internal/fsio"
	"github.com/openspec-dev/openspec/internal/project"
	"github.com/openspec-dev/openspec/internal/schema"
)

// invocation bundles the per-command state: tool config, project root,
// resolver, project config, and the diagnostics collector. It is created
// when a command starts and discarded when it exits, which is what scopes
// the warn-once behavior to a single invocation.
type invocation struct {
	cfg      *config.Configuration
	fsys     fsio.FS
	root     string
	resolver *schema.Resolver
	projCfg  *project.Config
	dc       *diag.Collector
	jsonOut  bool
}

// newInvocation loads configuration, locates the project root, and wires
// the shared collaborators for one command run.
func newInvocation(cmd *cobra.Command) (*invocation, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.Configuration)
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	if cfg.NoColor || noColor {
		color.NoColor = true
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.Runtime)
	}
	root, err := change.FindProjectRoot(wd)
	if err != nil {
		return nil, clierrors.ProjectNotFound(wd)
	}

	dc := diag.NewCollector(os.Stderr)
	if !color.NoColor && term.IsTerminal(int(os.Stderr.Fd())) {
		dc.EnableColor()
	}

	fsys := fsio.OS()
	jsonFlag, _ := cmd.Flags().GetBool("json")

	return &invocation{
		cfg:      cfg,
		fsys:     fsys,
		root:     root,
		resolver: schema.NewResolver(root),
		projCfg:  project.Load(fsys, root, dc),
		dc:       dc,
		jsonOut:  jsonFlag || cfg.JSON,
	}, nil
}

// schemaDefault is the project-level default schema name, with the tool
// config as fallback.
func (inv *invocation) schemaDefault() string {
	if inv.projCfg.Schema != "" {
		return inv.projCfg.Schema
	}
	return inv.cfg.DefaultSchema
}

// changeContext resolves the schema for a change and builds its context.
// Schema precedence: --schema flag > .openspec.yaml > project config >
// tool config > built-in default.
func (inv *invocation) changeContext(cmd *cobra.Command, changeName string) (*change.Context, error) {
	explicit, _ := cmd.Flags().GetString("schema")
	name := change.SchemaName(inv.fsys, inv.root, changeName, explicit, inv.schemaDefault())

	ctx, err := change.NewContext(inv.fsys, inv.resolver, inv.root, changeName, name)
	if err != nil {
		return nil, schemaError(name, err, inv.resolver)
	}
	return ctx, nil
}

// schemaError maps engine-level schema failures to categorized CLI errors.
func schemaError(name string, err error, resolver *schema.Resolver) error {
	var loadErr *schema.LoadError
	var valErr *schema.ValidationError
	switch {
	case asErr(err, &loadErr), asErr(err, &valErr):
		return clierrors.Wrap(err, clierrors.Configuration)
	default:
		return clierrors.SchemaNotFound(name, resolver.List())
	}
}

func asErr(err error, target any) bool {
	return stderrors.As(err, target)
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
