package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fseof/store"
)

// errNoStore is returned by runs subcommands without a database.
var errNoStore = errors.New("no run store: set --store or FSEOF_STORE")

// NewRunsCommand creates the runs command and its subcommands.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored scan runs",
		Long: `List, show and delete scan runs saved with 'fseof scan --store'.

Examples:
  fseof runs --store runs.db
  fseof runs show 01928c1e-... --store runs.db
  fseof runs delete 01928c1e-... --store runs.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(st *store.Store) error {
				return listRuns(cmd, st)
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a run and its targets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(st *store.Store) error {
				return showRun(cmd, st, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(st *store.Store) error {
				if err := st.DeleteRun(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted run %s\n", args[0])
				rootOpts.Logger.Info("fseof: run deleted", "id", args[0])
				return nil
			})
		},
	})

	return cmd
}

func withStore(opts *RootOptions, fn func(*store.Store) error) error {
	if opts.StorePath == "" {
		return errNoStore
	}
	st, err := store.Open(opts.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(st)
}

func listRuns(cmd *cobra.Command, st *store.Store) error {
	out := cmd.OutOrStdout()
	th := newTheme(lipgloss.NewRenderer(out))

	runs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, th.hint.Render("No runs stored."))
		return nil
	}

	fmt.Fprintf(out, "Runs (%d):\n\n", len(runs))
	for _, r := range runs {
		fmt.Fprintf(out, "%s  %s  %s %s %s  %d steps  %d targets\n",
			th.title.Render(r.ID), r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Model, r.Enforced, r.Direction, r.NumSteps, r.Targets)
	}

	return nil
}

func showRun(cmd *cobra.Command, st *store.Store, id string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	th := newTheme(lipgloss.NewRenderer(out))

	run, err := st.Run(ctx, id)
	if err != nil {
		return err
	}
	targets, err := st.Targets(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", th.title.Render("Run"), run.ID)
	fmt.Fprintf(out, "  model:      %s\n", run.Model)
	fmt.Fprintf(out, "  enforced:   %s (%s)\n", run.Enforced, run.Direction)
	fmt.Fprintf(out, "  objective:  %s\n", run.Objective)
	fmt.Fprintf(out, "  schedule:   %g -> %g in %d steps\n", run.Baseline, run.Anchor, run.NumSteps)
	if run.InfeasibleSteps > 0 || run.FailedCells > 0 {
		fmt.Fprintf(out, "  %s\n", th.err.Render(fmt.Sprintf("missing: %d steps, %d variability cells",
			run.InfeasibleSteps, run.FailedCells)))
	}
	fmt.Fprintln(out)

	return writeTargets(out, th, targets)
}

func writeTargets(out io.Writer, th theme, targets []store.Classification) error {
	if len(targets) == 0 {
		_, err := fmt.Fprintln(out, th.hint.Render("no targets"))
		return err
	}
	fmt.Fprintf(out, "%-12s  %4s  %12s  %9s\n", "target", "rank", "net change", "monotonic")
	for _, t := range targets {
		if _, err := fmt.Fprintf(out, "%s  %4d  %12.6g  %4d/%-4d\n",
			th.success.Render(fmt.Sprintf("%-12s", t.Reaction)), t.Rank, t.NetChange, t.Monotonic, t.Scored); err != nil {
			return err
		}
	}

	return nil
}
