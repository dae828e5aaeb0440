package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fseof/builder"
)

// NewModelsCommand creates the models command.
func NewModelsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List built-in models",
		Long: `List the built-in models with their default enforced and objective
reactions.

Examples:
  fseof models`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			th := newTheme(lipgloss.NewRenderer(out))

			for _, e := range builder.Catalog() {
				m, err := e.Build()
				if err != nil {
					return fmt.Errorf("build %s: %w", e.Name, err)
				}
				fmt.Fprintf(out, "%s  %d reactions, %d metabolites  %s -> %s\n",
					th.title.Render(fmt.Sprintf("%-12s", e.Name)),
					m.ReactionCount(), m.MetaboliteCount(), e.Enforced, e.Objective)
				fmt.Fprintf(out, "  %s\n", th.hint.Render(e.Description))
			}
			rootOpts.Logger.Debug("fseof: models listed", "count", len(builder.Catalog()))

			return nil
		},
	}
}
