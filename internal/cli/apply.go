package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openspec-dev/openspec/internal/apply"
)

var applyCmd = &cobra.Command{
	Use:   "apply <change-name>",
	Short: "Show apply-phase readiness for a change",
	Long: `Evaluate the schema's apply block: whether the gating artifacts exist
and, when a task file is tracked, how many tasks remain. The state is one of
blocked, ready, or all_done.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	ctx, err := inv.changeContext(cmd, args[0])
	if err != nil {
		return err
	}

	result := apply.Generate(ctx)
	if inv.jsonOut {
		return printJSON(result)
	}

	renderApply(result)
	return nil
}

func renderApply(ins *apply.Instructions) {
	switch ins.State {
	case apply.StateBlocked:
		fmt.Printf("State: %s\n", color.RedString(string(ins.State)))
	case apply.StateReady:
		fmt.Printf("State: %s\n", color.YellowString(string(ins.State)))
	case apply.StateAllDone:
		fmt.Printf("State: %s\n", color.GreenString(string(ins.State)))
	}

	if len(ins.MissingArtifacts) > 0 {
		fmt.Printf("Missing artifacts: %s\n", strings.Join(ins.MissingArtifacts, ", "))
	}

	if ins.TracksFile != "" {
		fmt.Printf("Tracked file: %s\n", ins.TracksFile)
		fmt.Printf("Progress: %d/%d tasks complete, %d remaining\n",
			ins.Progress.Complete, ins.Progress.Total, ins.Progress.Remaining)

		for _, task := range ins.Tasks {
			box := "[ ]"
			if task.Done {
				box = "[x]"
			}
			fmt.Printf("  %s %d. %s\n", box, task.ID, task.Description)
		}
	}

	fmt.Printf("\n%s\n", ins.Instruction)
}
