// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// constants.go: method names, fixed identifiers and numeric defaults.

package builder

// Method names used as error prefixes.
const (
	MethodThreeTrend  = "ThreeTrend"
	MethodLinearChain = "LinearChain"
	MethodCoreCarbon  = "CoreCarbon"
	MethodLycopene    = "Lycopene"
	MethodLBMedium    = "LBMedium"
	MethodObjective   = "Objective"
	MethodBuildModel  = "BuildModel"
)

// Reaction identifiers of the built-in networks that callers refer to.
const (
	BiomassReaction   = "BIOMASS"
	LycopeneDemand    = "LYCOdem"
	GlucoseExchange   = "EX_glc__D_e"
	MaintenanceATP    = "ATPM"
	ThreeTrendEnforce = "E"
	ThreeTrendBiomass = "BIO"
)

// MinChainLength is the smallest LinearChain (one internal reaction).
const MinChainLength = 1

// Defaults.
const (
	DefaultUptake      = 10.0 // mmol/gDW/h for every opened medium component
	DefaultMaintenance = 1.0  // ATPM lower bound
	DefaultLower       = -1000.0
	DefaultUpper       = 1000.0
)

// Compartments.
const (
	cytosol       = "c"
	extracellular = "e"
)
