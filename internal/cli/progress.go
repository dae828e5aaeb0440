package cli

import (
	"context"
	"fmt"
	"io"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/fseof"
)

// stepMsg reports one completed step of a scan phase.
type stepMsg struct {
	phase       string
	step, total int
}

// doneMsg carries the scan outcome.
type doneMsg struct {
	res *fseof.Result
	err error
}

// progressModel is the bubbletea model shown while a scan runs.
type progressModel struct {
	progress progress.Model
	theme    theme
	label    string
	phase    string
	step     int
	total    int
	cancel   context.CancelFunc

	done     bool
	quitting bool
	res      *fseof.Result
	err      error
}

func newProgressModel(label string, th theme, cancel context.CancelFunc) progressModel {
	return progressModel{
		progress: progress.New(
			progress.WithDefaultBlend(),
			progress.WithWidth(40),
		),
		theme:  th,
		label:  label,
		phase:  "sweep",
		cancel: cancel,
	}
}

// Init starts the bar animation.
func (m progressModel) Init() tea.Cmd {
	return m.progress.Init()
}

// Update handles messages and returns the updated model.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case stepMsg:
		m.phase, m.step, m.total = msg.phase, msg.step, msg.total
		return m, nil

	case doneMsg:
		m.done = true
		m.res, m.err = msg.res, msg.err
		return m, tea.Quit

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the progress display.
func (m progressModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m progressModel) renderContent() string {
	if m.done {
		return m.finalView()
	}
	if m.quitting {
		return m.theme.hint.Render("cancelling scan...") + "\n"
	}

	var pct float64
	if m.total > 0 {
		pct = float64(m.step) / float64(m.total)
	}
	status := m.theme.title.Render(fmt.Sprintf("[%s]", m.phase))
	counts := fmt.Sprintf("%d/%d steps", m.step, m.total)
	hint := m.theme.hint.Render("Press Ctrl+C to cancel")

	return fmt.Sprintf("%s %s %s %s\n%s\n", status, m.label, m.progress.ViewAs(pct), counts, hint)
}

func (m progressModel) finalView() string {
	if m.err != nil {
		return m.theme.err.Render(fmt.Sprintf("✗ scan failed: %s", m.err)) + "\n"
	}
	if m.res == nil {
		return ""
	}
	missing := m.res.Missing()
	line := m.theme.success.Render("✓ scan complete")
	line += fmt.Sprintf("  %d targets", len(m.res.Targets()))
	if missing.Steps > 0 || missing.VariabilityCells > 0 {
		line += m.theme.hint.Render(fmt.Sprintf("  (%d infeasible steps, %d failed variability cells)",
			missing.Steps, missing.VariabilityCells))
	}

	return line + "\n"
}

// runWithProgress runs the scan while a progress bar is drawn on out.
// Ctrl+C cancels the scan through ctx.
func runWithProgress(ctx context.Context, out io.Writer, m *core.Model, cfg fseof.Config) (*fseof.Result, error) {
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	th := newTheme(lipgloss.NewRenderer(out))
	p := tea.NewProgram(
		newProgressModel(cfg.Enforced, th, cancel),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	)

	cfg.Progress = func(step, total int) {
		p.Send(stepMsg{phase: "sweep", step: step, total: total})
	}
	cfg.VariabilityProgress = func(step, total int) {
		p.Send(stepMsg{phase: "variability", step: step, total: total})
	}
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		res, err := fseof.Run(scanCtx, m, cfg)
		p.Send(doneMsg{res: res, err: err})
	}()

	final, err := p.Run()
	cancel()
	<-finished
	if err != nil {
		return nil, fmt.Errorf("progress UI: %w", err)
	}
	pm, ok := final.(progressModel)
	if !ok {
		return nil, fmt.Errorf("progress UI: unexpected model %T", final)
	}
	if pm.quitting {
		return nil, context.Canceled
	}

	return pm.res, pm.err
}
