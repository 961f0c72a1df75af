package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openspec-dev/openspec/internal/change"
)

var statusCmd = &cobra.Command{
	Use:   "status <change-name>",
	Short: "Show artifact completion for a change",
	Long: `Display each artifact of the change's schema in build order with its
status: done (the file exists), ready (all dependencies are done), or
blocked (with the unmet dependencies listed).`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	ctx, err := inv.changeContext(cmd, args[0])
	if err != nil {
		return err
	}

	status := ctx.Status()
	if inv.jsonOut {
		return printJSON(status)
	}

	renderStatus(status)
	return nil
}

func renderStatus(status *change.Status) {
	fmt.Printf("Change: %s (schema: %s)\n\n", status.Change, status.Schema)

	for _, a := range status.Artifacts {
		switch a.Status {
		case change.StateDone:
			fmt.Printf("  %s %s\n", color.GreenString("[done]   "), a.ID)
		case change.StateReady:
			fmt.Printf("  %s %s\n", color.YellowString("[ready]  "), a.ID)
		case change.StateBlocked:
			fmt.Printf("  %s %s (missing: %s)\n", color.RedString("[blocked]"),
				a.ID, strings.Join(a.MissingDeps, ", "))
		}
	}

	fmt.Println()
	if status.IsComplete {
		fmt.Println(color.GreenString("All artifacts are complete."))
	} else {
		fmt.Println("Create the next ready artifact with: openspec instructions " +
			status.Change + " <artifact>")
	}
}
