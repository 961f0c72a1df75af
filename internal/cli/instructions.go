package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openspec-dev/openspec/internal/instructions"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions <change-name> <artifact>",
	Short: "Emit creation instructions for one artifact",
	Long: `Produce the enriched payload for creating an artifact: its template,
the completion state of each dependency, the artifacts it unlocks, and any
project-wide context or per-artifact rules from openspec/config.yaml.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runInstructions,
}

func init() {
	rootCmd.AddCommand(instructionsCmd)
}

func runInstructions(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	ctx, err := inv.changeContext(cmd, args[0])
	if err != nil {
		return err
	}

	result, err := instructions.Generate(ctx, args[1], inv.projCfg, inv.dc)
	if err != nil {
		return err
	}

	if inv.jsonOut {
		return printJSON(result)
	}

	renderInstructions(result)
	return nil
}

func renderInstructions(ins *instructions.Instructions) {
	fmt.Printf("Artifact: %s\n", color.New(color.Bold).Sprint(ins.ArtifactID))
	fmt.Printf("Output:   %s\n", ins.OutputPath)
	if ins.Instruction != "" {
		fmt.Printf("\n%s\n", ins.Instruction)
	}

	if len(ins.Dependencies) > 0 {
		fmt.Println("\nDependencies:")
		for _, dep := range ins.Dependencies {
			mark := color.RedString("missing")
			if dep.Done {
				mark = color.GreenString("done")
			}
			fmt.Printf("  - %s (%s) %s\n", dep.ID, mark, dep.Path)
		}
	}

	if len(ins.Unlocks) > 0 {
		fmt.Println("\nUnlocks:")
		for _, id := range ins.Unlocks {
			fmt.Printf("  - %s\n", id)
		}
	}

	if ins.Context != "" {
		fmt.Printf("\nProject context:\n%s\n", ins.Context)
	}
	if len(ins.Rules) > 0 {
		fmt.Println("\nRules:")
		for _, rule := range ins.Rules {
			fmt.Printf("  - %s\n", rule)
		}
	}

	fmt.Printf("\nTemplate:\n%s\n", ins.Template)
}
