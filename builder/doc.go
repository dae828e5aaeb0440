// SPDX-License-Identifier: MIT
// Package builder provides deterministic constructors for metabolic models.
//
// What:
//   - ThreeTrend, LinearChain: small test networks with known optima.
//   - CoreCarbon: a lumped central-carbon network (glycolysis, PDH, TCA, MEP
//     isoprenoid route) with a biomass objective.
//   - Lycopene: the crtE / crtB / crtI heterologous pathway plus the lycopene
//     demand reaction LYCOdem, on top of CoreCarbon precursors.
//   - LBMedium: opens the LB medium exchanges present in the model.
//   - Catalog: named ready-made models for the command line.
//
// How:
//
//	m, err := builder.BuildModel(
//		[]core.ModelOption{core.WithName("lyco"), core.WithAutoGenes()},
//		[]builder.BuilderOption{builder.WithUptake(10)},
//		builder.CoreCarbon(), builder.Lycopene(), builder.LBMedium(),
//	)
//
// Constructors run in order against one model; each validates its input and
// returns sentinel errors (errors.Is), never panics. Option constructors
// (WithX) panic on meaningless values.
//
// Determinism: equal options and constructor order give identical models.
package builder
