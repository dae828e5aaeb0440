package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/fseof/fseof"
)

// Theme holds the colors of the text report.
type Theme struct {
	Title  lipgloss.Color
	Target lipgloss.Color
	Hint   lipgloss.Color
	Error  lipgloss.Color
}

// DefaultTheme is used by the "text" writer.
var DefaultTheme = Theme{
	Title:  lipgloss.Color("#5FAFD7"),
	Target: lipgloss.Color("#00D787"),
	Hint:   lipgloss.Color("#6C6C6C"),
	Error:  lipgloss.Color("#FF005F"),
}

// writeText writes a human-readable report: a summary line, the step table
// and the ranked targets.
func writeText(w io.Writer, res *fseof.Result, opts Options) error {
	r := lipgloss.NewRenderer(w)
	if !opts.Color {
		r.SetColorProfile(termenv.Ascii)
	}
	th := DefaultTheme
	title := r.NewStyle().Foreground(th.Title).Bold(true)
	target := r.NewStyle().Foreground(th.Target)
	hint := r.NewStyle().Foreground(th.Hint).Italic(true)
	bad := r.NewStyle().Foreground(th.Error)

	var b strings.Builder
	arrow := "↑"
	if res.Direction() == fseof.Min {
		arrow = "↓"
	}
	missing := res.Missing()
	fmt.Fprintf(&b, "%s %s %s (objective %s)\n",
		title.Render("FSEOF"), res.Enforced(), arrow, res.Objective())
	fmt.Fprintf(&b, "%s\n\n", hint.Render(fmt.Sprintf("%d steps, %d infeasible, %d targets",
		len(res.Steps()), missing.Steps, len(res.Targets()))))

	fmt.Fprintf(&b, "%4s  %12s  %12s  %12s\n", "step", "value", res.Enforced(), res.Objective())
	for _, st := range res.Steps() {
		enf, obj := "-", "-"
		if st.Feasible {
			enf, obj = opts.format(st.EnforcedFlux), opts.format(st.ObjectiveFlux)
		}
		line := fmt.Sprintf("%4d  %12s  %12s  %12s", st.Step, opts.format(st.Value), enf, obj)
		if !st.Feasible {
			line = bad.Render(line)
		}
		b.WriteString(line + "\n")
	}

	ranked := res.Ranked()
	b.WriteString("\n")
	if len(ranked) == 0 {
		b.WriteString(hint.Render("no targets") + "\n")
	} else {
		fmt.Fprintf(&b, "%-12s  %4s  %12s  %11s\n", "target", "rank", "net change", "consistency")
		for _, t := range ranked {
			fmt.Fprintf(&b, "%s  %4d  %12s  %11s\n",
				target.Render(fmt.Sprintf("%-12s", t.Reaction)), t.Rank,
				opts.format(t.NetChange), opts.format(t.Consistency()))
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
