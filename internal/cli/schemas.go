package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List schemas visible across all tiers",
	Long: `List every resolvable schema with the tier supplying it. Tiers are
searched in precedence order: project, user, builtin. The first tier
containing a schema directory wins; tiers are never merged.`,
	SilenceUsage: true,
	RunE:         runSchemas,
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}

func runSchemas(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	infos := inv.resolver.ListWithInfo()
	if inv.jsonOut {
		return printJSON(infos)
	}

	for _, info := range infos {
		fmt.Printf("%-20s %-8s %s\n", info.Name, info.Tier, info.Dir)
	}
	return nil
}
