// Package cli provides the Cobra commands for the openspec workflow tool:
// change inspection (status, list), artifact creation support (instructions,
// templates), the apply phase, schema management (schemas, validate), and
// version reporting. Every command is a thin renderer over the engine
// packages; no workflow logic lives here.
package cli

import (
	"github.com/spf13/cobra"

	clierrors "github.com/openspec-dev/openspec/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "openspec",
	Short: "Schema-driven artifact workflows for changes",
	Long: `openspec tracks a change's document artifacts against a declarative
schema: which artifacts exist, which are ready to create, and which are
blocked on dependencies.`,
	Example: `  # Show artifact status for a change
  openspec status add-user-auth

  # Get enriched creation instructions for one artifact
  openspec instructions add-user-auth design

  # Check apply-phase readiness
  openspec apply add-user-auth

  # List schemas visible across all tiers
  openspec schemas`,
	SilenceErrors: true,
}

// Execute runs the root command, printing any error in categorized form.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		clierrors.PrintError(clierrors.Wrap(err, clierrors.Runtime))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Emit JSON output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringP("schema", "s", "", "Schema name (overrides change metadata and project config)")
}
