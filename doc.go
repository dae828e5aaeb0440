// Package fseof is an in-memory toolkit for finding metabolic engineering
// targets with Flux Scanning based on Enforced Objective Flux.
//
// 🚀 What is FSEOF?
//
//	Given a metabolic model, a growth objective and a product reaction,
//	FSEOF enforces the product flux step by step, from its value at optimal
//	growth towards its maximum, re-optimises growth at every step and flags
//	every reaction whose flux rises with the product as an over-expression
//	target.
//
// ✨ What is inside?
//
//	core/     - thread-safe Model: metabolites, reactions, genes, bounds,
//	            objective, medium, scoped bound changes, Clone
//	matrix/   - dense matrices, stoichiometric matrix, row reduction
//	flux/     - flux balance and flux variability analysis on gonum's simplex
//	fseof/    - the scan engine: sweep, trend classifier, variability ranks
//	builder/  - ready-made models: toy networks, central carbon, lycopene
//	export/   - csv, tsv, json and styled text writers
//	store/    - SQLite persistence of scan runs
//	cmd/fseof - command line: scan, models, runs
//
// Quick example:
//
//	m, _ := builder.Build("lycopene")
//	cfg := fseof.DefaultConfig()
//	cfg.Enforced, cfg.Objective = "LYCOdem", "BIOMASS"
//	res, _ := fseof.Run(ctx, m, cfg)
//	fmt.Println(res.Targets())
//
//	go install github.com/katalvlaran/fseof/cmd/fseof@latest
package fseof
