// Package fseof implements Flux Scanning based on Enforced Objective Flux.
//
// A scan enforces an increasing (or decreasing) flux through one reaction of
// a constraint-based metabolic model while the primary objective (usually
// biomass) is re-optimised at every step. Reactions whose flux follows the
// enforcement are reported as targets: over-expression candidates for the
// product carried by the enforced reaction.
//
// Pipeline:
//
//	Config ─► baseline solve ─► anchor solve ─► Schedule ─► enforced steps ─► FluxTable
//	                                                                │
//	                                        Classify ◄──────────────┘
//	                                            │
//	                     (optional) variability ranges + Rank ─► Result
//
// Every bound and objective change made by Run is scoped; on return, success
// or error, the model carries exactly the bounds and objective it had before.
// A model is held exclusively by one Run at a time (core.Model.Acquire).
//
// Failures:
//   - Fatal: invalid config, infeasible baseline or anchor, degenerate
//     schedule, too many infeasible steps, cancellation.
//   - Recovered: an infeasible enforced step (its row is missing) and a failed
//     variability cell (the cell is missing). Both are listed on the Result.
package fseof
