// Package core provides a thread-safe in-memory constraint-based metabolic
// Model with a minimal, composable API surface.
//
// The Model M = (metabolites, reactions, genes, objective) supports:
//
//   - Validated builder operations: AddMetabolite, AddReaction, AddGene reject
//     empty and duplicate identifiers and dangling metabolite references.
//   - NFC-normalised identifiers, so "é" typed as one or two code points is
//     the same metabolite.
//   - Flux bounds per reaction with the invariant Lower ≤ Upper.
//   - A primary objective (reaction ID + Sense).
//   - Medium configuration through exchange lower bounds (SetMedium/Medium).
//   - Scoped mutation: WithBounds/WithObjective apply a change, run a callback
//     and restore the previous state on every exit path, panics included.
//   - Bit-identical bound snapshots (SnapshotBounds/RestoreBounds).
//   - Clone for independent concurrent scans; Acquire to reject interleaved
//     scans on one instance (ErrModelBusy).
//
// Deterministic iteration: Reactions(), Metabolites(), Genes(), ReactionIDs(),
// BoundaryReactions() and Exchanges() all return results sorted by ID.
//
// Core Methods:
//
//	// Catalog
//	AddMetabolite(Metabolite) error        // O(1)
//	AddReaction(Reaction) error            // O(k) participating metabolites
//	AddGene(Gene) error                    // O(1)
//	RemoveReaction(id) error               // O(1)
//
//	// Bounds & objective
//	Bounds(id) (lo, hi, error)             // O(1)
//	SetBounds(id, lo, hi) error            // O(1)
//	WithBounds(id, lo, hi, fn) error       // O(1) + fn
//	SetObjective(id, Sense) error          // O(1)
//	WithObjective(id, Sense, fn) error     // O(1) + fn
//
//	// Medium
//	SetMedium(map[string]float64) error    // O(R)
//
//	// Cloning
//	Clone() *Model                         // O(M + G + nnz)
//
// Example:
//
//	m := core.NewModel(core.WithName("toy"))
//	_ = m.AddMetabolite(core.Metabolite{ID: "a_c", Compartment: "c"})
//	_ = m.AddReaction(core.Reaction{ID: "EX_a", Lower: -10, Upper: 1000,
//		Stoichiometry: map[string]float64{"a_c": -1}})
//	_ = m.SetObjective("EX_a", core.Minimize)
package core
