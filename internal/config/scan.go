package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/fseof"
)

// ErrInvalidScan is returned, wrapped with the offending field, for an
// unusable scan file.
var ErrInvalidScan = errors.New("config: invalid scan")

// Scan is the YAML scan file.
//
//	model: lycopene
//	enforced: LYCOdem
//	objective: BIOMASS
//	steps: 10
//	direction: max
//	enforced_frac_opt: 0.9
//	fva: true
//	medium:
//	  EX_glc__D_e: 10
//	additions:
//	  metabolites:
//	    - {id: ggpp_c, compartment: c}
//	  reactions:
//	    - id: GGPPdem
//	      stoichiometry: {ggpp_c: -1}
type Scan struct {
	Model             string             `yaml:"model"`
	Enforced          string             `yaml:"enforced"`
	Objective         string             `yaml:"objective"`
	Steps             int                `yaml:"steps"`
	Direction         string             `yaml:"direction"`
	EnforcedFracOpt   float64            `yaml:"enforced_frac_opt"`
	Anchor            string             `yaml:"anchor,omitempty"`
	PinBounds         bool               `yaml:"pin_bounds,omitempty"`
	MaxInfeasibleFrac float64            `yaml:"max_infeasible_frac,omitempty"`
	Reactions         []string           `yaml:"reactions,omitempty"`
	FVA               bool               `yaml:"fva"`
	FVAScope          string             `yaml:"fva_scope,omitempty"`
	Medium            map[string]float64 `yaml:"medium,omitempty"`
	Additions         Additions          `yaml:"additions,omitempty"`
	Classifier        Classifier         `yaml:"classifier,omitempty"`
}

// Additions are metabolites and reactions injected into the model before
// the scan, metabolites first.
type Additions struct {
	Metabolites []Metabolite `yaml:"metabolites,omitempty"`
	Reactions   []Reaction   `yaml:"reactions,omitempty"`
}

// Metabolite is a metabolite to add.
type Metabolite struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name,omitempty"`
	Formula     string `yaml:"formula,omitempty"`
	Charge      int    `yaml:"charge,omitempty"`
	Compartment string `yaml:"compartment,omitempty"`
}

// Reaction is a reaction to add. Missing bounds default to [0, 1000].
type Reaction struct {
	ID            string             `yaml:"id"`
	Name          string             `yaml:"name,omitempty"`
	Lower         *float64           `yaml:"lower,omitempty"`
	Upper         *float64           `yaml:"upper,omitempty"`
	Stoichiometry map[string]float64 `yaml:"stoichiometry"`
	GeneRule      string             `yaml:"gene_rule,omitempty"`
}

// Classifier holds trend classifier tolerances; zero means default.
type Classifier struct {
	Mode               string  `yaml:"mode,omitempty"`
	Tolerance          float64 `yaml:"tolerance,omitempty"`
	MinNetChange       float64 `yaml:"min_net_change,omitempty"`
	RankWidthTolerance float64 `yaml:"rank_width_tolerance,omitempty"`
}

// DefaultScan returns the values used for fields a scan file leaves out.
func DefaultScan() Scan {
	return Scan{
		Steps:           10,
		Direction:       fseof.Max.String(),
		EnforcedFracOpt: fseof.DefaultEnforcedFracOpt,
		Anchor:          fseof.AnchorConstrained.String(),
		FVAScope:        "targets",
	}
}

// LoadScan reads and validates the scan file at path. Unknown fields are
// rejected.
func LoadScan(path string) (Scan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scan{}, fmt.Errorf("read scan file: %w", err)
	}

	return ParseScan(bytes.NewReader(data))
}

// ParseScan decodes a scan file from r on top of DefaultScan and validates it.
func ParseScan(r io.Reader) (Scan, error) {
	s := DefaultScan()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scan{}, fmt.Errorf("parse scan YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scan{}, err
	}

	return s, nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidScan, field, fmt.Sprintf(format, args...))
}

// Validate checks the fields that can be checked without a model.
func (s Scan) Validate() error {
	if s.Steps <= 0 {
		return invalid("steps", "must be > 0, got %d", s.Steps)
	}
	if _, err := fseof.ParseDirection(s.Direction); err != nil {
		return invalid("direction", "%q is not max or min", s.Direction)
	}
	if s.EnforcedFracOpt < 0 || s.EnforcedFracOpt > 1 {
		return invalid("enforced_frac_opt", "must be in (0, 1], got %g", s.EnforcedFracOpt)
	}
	if _, err := parseAnchor(s.Anchor); err != nil {
		return err
	}
	if _, err := parseScope(s.FVAScope); err != nil {
		return err
	}
	if _, err := parseMode(s.Classifier.Mode); err != nil {
		return err
	}
	for i, met := range s.Additions.Metabolites {
		if strings.TrimSpace(met.ID) == "" {
			return invalid(fmt.Sprintf("additions.metabolites[%d].id", i), "is empty")
		}
	}
	for i, r := range s.Additions.Reactions {
		if strings.TrimSpace(r.ID) == "" {
			return invalid(fmt.Sprintf("additions.reactions[%d].id", i), "is empty")
		}
		if len(r.Stoichiometry) == 0 {
			return invalid(fmt.Sprintf("additions.reactions[%d].stoichiometry", i), "is empty")
		}
	}

	return nil
}

// Apply injects the additions into m, then sets the medium when one is given.
func (s Scan) Apply(m *core.Model) error {
	for _, met := range s.Additions.Metabolites {
		if err := m.AddMetabolite(core.Metabolite{
			ID:          met.ID,
			Name:        met.Name,
			Formula:     met.Formula,
			Charge:      met.Charge,
			Compartment: met.Compartment,
		}); err != nil {
			return fmt.Errorf("additions: %w", err)
		}
	}
	for _, r := range s.Additions.Reactions {
		lo, hi := 0.0, core.DefaultUpperBound
		if r.Lower != nil {
			lo = *r.Lower
		}
		if r.Upper != nil {
			hi = *r.Upper
		}
		if err := m.AddReaction(core.Reaction{
			ID:            r.ID,
			Name:          r.Name,
			Lower:         lo,
			Upper:         hi,
			Stoichiometry: r.Stoichiometry,
			GeneRule:      r.GeneRule,
		}); err != nil {
			return fmt.Errorf("additions: %w", err)
		}
	}
	if len(s.Medium) > 0 {
		if err := m.SetMedium(s.Medium); err != nil {
			return fmt.Errorf("medium: %w", err)
		}
	}

	return nil
}

// EngineConfig translates s into an fseof.Config. Solver, logger and
// progress callbacks are left for the caller.
func (s Scan) EngineConfig() (fseof.Config, error) {
	if err := s.Validate(); err != nil {
		return fseof.Config{}, err
	}
	dir, _ := fseof.ParseDirection(s.Direction)
	anchor, _ := parseAnchor(s.Anchor)
	scope, _ := parseScope(s.FVAScope)
	mode, _ := parseMode(s.Classifier.Mode)

	cfg := fseof.DefaultConfig()
	cfg.NumSteps = s.Steps
	cfg.Enforced = s.Enforced
	cfg.Objective = s.Objective
	cfg.Direction = dir
	cfg.EnforcedFracOpt = s.EnforcedFracOpt
	cfg.Anchor = anchor
	cfg.PinBounds = s.PinBounds
	cfg.Reactions = append([]string(nil), s.Reactions...)
	cfg.ComputeVariability = s.FVA
	cfg.VariabilityScope = scope
	if s.MaxInfeasibleFrac != 0 {
		cfg.MaxInfeasibleFrac = s.MaxInfeasibleFrac
	}
	cfg.Classifier.Mode = mode
	if s.Classifier.Tolerance > 0 {
		cfg.Classifier.Tolerance = s.Classifier.Tolerance
	}
	if s.Classifier.MinNetChange > 0 {
		cfg.Classifier.MinNetChange = s.Classifier.MinNetChange
	}
	if s.Classifier.RankWidthTolerance > 0 {
		cfg.RankWidthTolerance = s.Classifier.RankWidthTolerance
	}

	return cfg, nil
}

func parseAnchor(s string) (fseof.AnchorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "constrained":
		return fseof.AnchorConstrained, nil
	case "scaled":
		return fseof.AnchorScaled, nil
	default:
		return 0, invalid("anchor", "%q is not constrained or scaled", s)
	}
}

func parseScope(s string) (fseof.VariabilityScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "targets":
		return fseof.ScopeTargets, nil
	case "all":
		return fseof.ScopeAll, nil
	default:
		return 0, invalid("fva_scope", "%q is not targets or all", s)
	}
}

func parseMode(s string) (fseof.ClassifierMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "value":
		return fseof.ModeValue, nil
	case "magnitude":
		return fseof.ModeMagnitude, nil
	default:
		return 0, invalid("classifier.mode", "%q is not value or magnitude", s)
	}
}
