package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openspec-dev/openspec/internal/change"
	clierrors "github.com/openspec-dev/openspec/internal/errors"
)

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "List changes with their completion state",
	SilenceUsage: true,
	RunE:         runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// changeSummary is one change's listing entry.
type changeSummary struct {
	Name       string `json:"name"`
	Schema     string `json:"schema"`
	Done       int    `json:"done"`
	Total      int    `json:"total"`
	IsComplete bool   `json:"isComplete"`
}

func runList(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	names, err := change.List(inv.fsys, inv.root)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Prerequisite)
	}

	summaries := make([]changeSummary, 0, len(names))
	for _, name := range names {
		ctx, err := inv.changeContext(cmd, name)
		if err != nil {
			return err
		}

		status := ctx.Status()
		summary := changeSummary{
			Name:       name,
			Schema:     status.Schema,
			Total:      len(status.Artifacts),
			IsComplete: status.IsComplete,
		}
		for _, a := range status.Artifacts {
			if a.Status == change.StateDone {
				summary.Done++
			}
		}
		summaries = append(summaries, summary)
	}

	if inv.jsonOut {
		return printJSON(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No changes found. Create one under openspec/changes/.")
		return nil
	}

	for _, s := range summaries {
		progress := fmt.Sprintf("%d/%d", s.Done, s.Total)
		if s.IsComplete {
			progress = color.GreenString(progress)
		}
		fmt.Printf("%-30s %-14s %s\n", s.Name, s.Schema, progress)
	}
	return nil
}
