package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	clierrors "github.com/openspec-dev/openspec/internal/errors"
	"github.com/openspec-dev/openspec/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [change-name]",
	Short: "Validate the active schema and change artifacts",
	Long: `Without arguments, validates a single change. With --all, validates
every change under openspec/changes concurrently, bounded by --concurrency.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	validateCmd.Flags().Bool("all", false, "Validate every change in the project")
	validateCmd.Flags().Int("concurrency", 0, "Concurrent change validations (defaults to config)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	if !all {
		if len(args) == 0 {
			return clierrors.NewArgumentErrorWithUsage(
				"a change name is required unless --all is set",
				"openspec validate <change-name> | openspec validate --all",
				"pass a change name, or validate everything with --all")
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

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency == 0 {
		concurrency = inv.cfg.Concurrency
	}

	var spin *spinner.Spinner
	if !inv.jsonOut && !color.NoColor && term.IsTerminal(int(os.Stderr.Fd())) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr))
		spin.Suffix = " validating changes..."
		spin.Start()
	}

	results, err := validate.Changes(cmd.Context(), inv.fsys, inv.resolver,
		inv.root, inv.schemaDefault(), concurrency)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}

	if inv.jsonOut {
		return printJSON(results)
	}

	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Printf("%-30s %s\n", r.Change, color.RedString("error: %v", r.Err))
		case r.IsComplete:
			fmt.Printf("%-30s %s\n", r.Change, color.GreenString("complete (%d/%d)", r.Done, r.Total))
		default:
			fmt.Printf("%-30s %d/%d artifacts done\n", r.Change, r.Done, r.Total)
		}
	}

	if failed > 0 {
		return clierrors.NewConfigError(
			fmt.Sprintf("%d of %d changes failed validation", failed, len(results)),
			"inspect the errors above and fix the named schemas")
	}
	return nil
}
