package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/fseof/builder"
	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/export"
	"github.com/katalvlaran/fseof/fseof"
	"github.com/katalvlaran/fseof/internal/config"
	"github.com/katalvlaran/fseof/store"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	ConfigPath  string
	Model       string
	Enforced    string
	Objective   string
	Steps       int
	Direction   string
	Frac        float64
	Anchor      string
	PinBounds   bool
	Reactions   []string
	FVA         bool
	FVAScope    string
	Format      string
	Out         string
	TargetsOnly bool
	Precision   int
	Color       bool
	NoProgress  bool
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}
	def := config.DefaultScan()

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run an FSEOF scan",
		Long: `Run an FSEOF scan on a built-in model and print the result.

Flags override values from --config. Enforced and objective reactions
default to the model's catalog entry.

Examples:
  fseof scan --model lycopene --steps 10
  fseof scan --model lycopene --enforced LYCOdem --objective BIOMASS --fva --format json
  fseof scan --config scan.yaml --store runs.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML scan file")
	f.StringVarP(&opts.Model, "model", "m", "", "built-in model (see 'fseof models')")
	f.StringVar(&opts.Enforced, "enforced", "", "enforced reaction ID")
	f.StringVar(&opts.Objective, "objective", "", "primary objective reaction ID")
	f.IntVarP(&opts.Steps, "steps", "n", def.Steps, "number of enforced steps")
	f.StringVar(&opts.Direction, "direction", def.Direction, "enforcement direction (max|min)")
	f.Float64Var(&opts.Frac, "frac", def.EnforcedFracOpt, "fraction of the optimum kept at the anchor")
	f.StringVar(&opts.Anchor, "anchor", def.Anchor, "anchor mode (constrained|scaled)")
	f.BoolVar(&opts.PinBounds, "pin", false, "fix both enforced bounds to the step value")
	f.StringSliceVar(&opts.Reactions, "reactions", nil, "tracked reactions (default: all internal)")
	f.BoolVar(&opts.FVA, "fva", false, "compute flux variability per step")
	f.StringVar(&opts.FVAScope, "fva-scope", def.FVAScope, "variability scope (targets|all)")
	f.StringVarP(&opts.Format, "format", "f", "text", "output format ("+strings.Join(export.Formats(), "|")+")")
	f.StringVarP(&opts.Out, "out", "o", "", "write output to file instead of stdout")
	f.BoolVar(&opts.TargetsOnly, "targets-only", false, "csv/tsv: only target columns")
	f.IntVar(&opts.Precision, "precision", export.DefaultPrecision, "significant digits")
	f.BoolVar(&opts.Color, "color", false, "styled text output")
	f.BoolVar(&opts.NoProgress, "no-progress", false, "disable the progress bar")

	return cmd
}

// resolveScan merges the scan file, the flags that were set and the catalog
// defaults.
func resolveScan(cmd *cobra.Command, opts *ScanOptions) (config.Scan, builder.Entry, error) {
	s := config.DefaultScan()
	if opts.ConfigPath != "" {
		var err error
		if s, err = config.LoadScan(opts.ConfigPath); err != nil {
			return config.Scan{}, builder.Entry{}, err
		}
	}

	f := cmd.Flags()
	overlay := []struct {
		flag  string
		apply func()
	}{
		{"model", func() { s.Model = opts.Model }},
		{"enforced", func() { s.Enforced = opts.Enforced }},
		{"objective", func() { s.Objective = opts.Objective }},
		{"steps", func() { s.Steps = opts.Steps }},
		{"direction", func() { s.Direction = opts.Direction }},
		{"frac", func() { s.EnforcedFracOpt = opts.Frac }},
		{"anchor", func() { s.Anchor = opts.Anchor }},
		{"pin", func() { s.PinBounds = opts.PinBounds }},
		{"reactions", func() { s.Reactions = opts.Reactions }},
		{"fva", func() { s.FVA = opts.FVA }},
		{"fva-scope", func() { s.FVAScope = opts.FVAScope }},
	}
	for _, o := range overlay {
		if f.Changed(o.flag) {
			o.apply()
		}
	}

	if s.Model == "" {
		return config.Scan{}, builder.Entry{}, errors.New("no model: set --model or model in --config")
	}
	entry, err := builder.Lookup(s.Model)
	if err != nil {
		return config.Scan{}, builder.Entry{}, err
	}
	if s.Enforced == "" {
		s.Enforced = entry.Enforced
	}
	if s.Objective == "" {
		s.Objective = entry.Objective
	}
	if err := s.Validate(); err != nil {
		return config.Scan{}, builder.Entry{}, err
	}

	return s, entry, nil
}

func runScan(cmd *cobra.Command, opts *ScanOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger

	s, entry, err := resolveScan(cmd, opts)
	if err != nil {
		return err
	}
	m, err := entry.Build()
	if err != nil {
		return fmt.Errorf("build model %s: %w", entry.Name, err)
	}
	if err := s.Apply(m); err != nil {
		return err
	}
	cfg, err := s.EngineConfig()
	if err != nil {
		return err
	}
	cfg.Logger = log
	log.Info("fseof: scan", "model", s.Model, "enforced", cfg.Enforced, "objective", cfg.Objective,
		"steps", cfg.NumSteps, "direction", cfg.Direction.String(), "fva", cfg.ComputeVariability)

	res, err := scan(ctx, cmd.ErrOrStderr(), m, cfg, opts.NoProgress)
	if err != nil {
		return err
	}
	if perr := res.Err(); perr != nil {
		log.Warn("fseof: partial result", "error", perr)
	}

	if err := writeResult(cmd.OutOrStdout(), opts, res); err != nil {
		return err
	}

	if opts.StorePath != "" {
		st, err := store.Open(opts.StorePath)
		if err != nil {
			return err
		}
		defer st.Close()
		run, err := st.SaveRun(ctx, s.Model, res)
		if err != nil {
			return err
		}
		th := newTheme(lipgloss.NewRenderer(cmd.ErrOrStderr()))
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", th.hint.Render("saved run"), run.ID)
		log.Info("fseof: run saved", "id", run.ID, "store", opts.StorePath)
	}

	return nil
}

// scan runs the engine, with a progress bar when stderr is a terminal.
func scan(ctx context.Context, stderr io.Writer, m *core.Model, cfg fseof.Config, noProgress bool) (*fseof.Result, error) {
	if !noProgress && isTerminal(stderr) {
		return runWithProgress(ctx, stderr, m, cfg)
	}

	return fseof.Run(ctx, m, cfg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeResult(stdout io.Writer, opts *ScanOptions, res *fseof.Result) (err error) {
	w := stdout
	if opts.Out != "" {
		f, ferr := os.Create(opts.Out)
		if ferr != nil {
			return fmt.Errorf("create output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}

	return export.Write(opts.Format, w, res, export.Options{
		Precision:   opts.Precision,
		Color:       opts.Color,
		TargetsOnly: opts.TargetsOnly,
	})
}
