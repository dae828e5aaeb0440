// Package store persists FSEOF scan results in SQLite.
//
// A saved run keeps its parameters, the per-step enforced and objective
// fluxes, the per-reaction classification and the full flux table, so
// targets can be listed and trends re-plotted without re-solving the model.
//
// Run IDs are UUIDv7: they sort in creation order.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON: deleting a run cascades to its rows
//
// All queries order their rows explicitly; empty results are empty slices,
// never nil.
package store
