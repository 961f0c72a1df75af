package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:          "templates <schema-name>",
	Short:        "List a schema's artifacts and their templates",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

// templateInfo is one artifact's template listing entry.
type templateInfo struct {
	Artifact  string `json:"artifact"`
	Template  string `json:"template"`
	Generates string `json:"generates"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	resolved, err := inv.resolver.Resolve(args[0])
	if err != nil {
		return schemaError(args[0], err, inv.resolver)
	}

	infos := make([]templateInfo, 0, len(resolved.Artifacts))
	for _, a := range resolved.Artifacts {
		infos = append(infos, templateInfo{
			Artifact:  a.ID,
			Template:  a.Template,
			Generates: a.Generates,
		})
	}

	if inv.jsonOut {
		return printJSON(infos)
	}

	fmt.Printf("Schema %s (%s tier)\n\n", resolved.Name, resolved.Tier)
	for _, info := range infos {
		fmt.Printf("%-12s templates/%-16s -> %s\n", info.Artifact, info.Template, info.Generates)
	}
	return nil
}
