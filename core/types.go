package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core model operations.
var (
	// ErrEmptyID indicates that an identifier is the empty string.
	ErrEmptyID = errors.New("core: identifier is empty")

	// ErrDuplicateMetabolite indicates an attempt to add an existing metabolite ID.
	ErrDuplicateMetabolite = errors.New("core: duplicate metabolite")

	// ErrDuplicateReaction indicates an attempt to add an existing reaction ID.
	ErrDuplicateReaction = errors.New("core: duplicate reaction")

	// ErrDuplicateGene indicates an attempt to add an existing gene ID.
	ErrDuplicateGene = errors.New("core: duplicate gene")

	// ErrMetaboliteNotFound indicates an operation referenced a non-existent metabolite.
	ErrMetaboliteNotFound = errors.New("core: metabolite not found")

	// ErrReactionNotFound indicates an operation referenced a non-existent reaction.
	ErrReactionNotFound = errors.New("core: reaction not found")

	// ErrInvalidBounds indicates lower > upper or a NaN bound.
	ErrInvalidBounds = errors.New("core: invalid flux bounds")

	// ErrNotExchange indicates a medium component that is not an exchange reaction.
	ErrNotExchange = errors.New("core: not an exchange reaction")

	// ErrNoObjective indicates that the model has no objective reaction.
	ErrNoObjective = errors.New("core: objective not set")

	// ErrModelBusy indicates that another scan currently holds the model.
	ErrModelBusy = errors.New("core: model is busy")
)

// Default flux bounds applied by builders when no explicit bounds are given.
// They mirror the customary ±1000 mmol/gDW/h "unbounded" convention.
const (
	DefaultLowerBound = -1000.0
	DefaultUpperBound = 1000.0
)

// ExtracellularCompartment is the compartment tag that marks exchange metabolites.
const ExtracellularCompartment = "e"

// Sense is the optimisation direction of an objective.
type Sense int

const (
	// Maximize drives the objective reaction flux up.
	Maximize Sense = iota

	// Minimize drives the objective reaction flux down.
	Minimize
)

// String returns "max" or "min".
func (s Sense) String() string {
	if s == Minimize {
		return "min"
	}

	return "max"
}

// Metabolite represents a chemical species balanced by the model.
type Metabolite struct {
	// ID uniquely identifies this Metabolite within its Model.
	ID string

	// Name is a human-readable label.
	Name string

	// Formula is the elemental formula, e.g. "C40H56".
	Formula string

	// Charge is the formal charge.
	Charge int

	// Compartment tags the location, e.g. "c" or "e".
	Compartment string
}

// Gene represents a gene referenced by reaction association rules.
type Gene struct {
	ID   string
	Name string
}

// Reaction represents a metabolic reaction: a hyperedge over metabolites.
//
// Stoichiometry maps metabolite ID to coefficient: negative for substrates,
// positive for products. A reaction with exactly one metabolite is a boundary
// reaction (exchange, demand or sink).
type Reaction struct {
	// ID uniquely identifies this reaction in the Model.
	ID string

	// Name is a human-readable label.
	Name string

	// Lower and Upper bound the flux; Lower <= Upper always holds.
	Lower float64
	Upper float64

	// Stoichiometry maps metabolite ID → coefficient.
	Stoichiometry map[string]float64

	// GeneRule is the gene-protein-reaction association, e.g. "b0001 and b0002".
	GeneRule string
}

// IsBoundary reports whether r has exactly one participating metabolite.
func (r Reaction) IsBoundary() bool {
	return len(r.Stoichiometry) == 1
}

// clone returns a deep copy of r (the stoichiometry map is copied).
func (r *Reaction) clone() Reaction {
	out := *r
	out.Stoichiometry = make(map[string]float64, len(r.Stoichiometry))
	for id, c := range r.Stoichiometry {
		out.Stoichiometry[id] = c
	}

	return out
}

// ModelOption configures behavior of a Model before creation.
type ModelOption func(m *Model)

// WithName sets a human-readable model name.
func WithName(name string) ModelOption {
	return func(m *Model) { m.name = name }
}

// WithAutoGenes makes AddReaction register every gene named in a reaction's
// GeneRule that is not yet known to the model.
func WithAutoGenes() ModelOption {
	return func(m *Model) { m.autoGenes = true }
}

// Model is the core in-memory metabolic model.
//
// mu guards catalogs, bounds and the objective; busy is the exclusive scan
// guard handed out by Acquire.
type Model struct {
	mu sync.RWMutex

	// Configuration
	name      string
	autoGenes bool

	// Storage
	metabolites map[string]*Metabolite
	reactions   map[string]*Reaction
	genes       map[string]*Gene

	// Primary objective
	objective string
	sense     Sense

	busy atomic.Bool
}

// NewModel creates an empty Model with the given options.
// Complexity: O(len(opts))
func NewModel(opts ...ModelOption) *Model {
	m := &Model{
		metabolites: make(map[string]*Metabolite),
		reactions:   make(map[string]*Reaction),
		genes:       make(map[string]*Gene),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
