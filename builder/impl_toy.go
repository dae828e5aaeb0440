// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// impl_toy.go: small networks with closed-form optima, used by tests,
// examples and the "three-trend" and "chain" catalog entries.

package builder

import (
	"strconv"

	"github.com/katalvlaran/fseof/core"
)

// ThreeTrend builds a network with one increasing, one constant and one
// decreasing reaction under enforcement of E (objective BIO, maximised):
//
//	UP:      → s        [0, uptake]
//	R_CONST: s → y      [2, upper]   DM_y: y →
//	R_DEC:   s → x                   BIO:  x →
//	R_INC:   s → p                   E:    p →
//
// With the default uptake of 10: BIO = 8 at E = 0, and R_INC = v,
// R_DEC = 8 − v at enforced flux v.
func ThreeTrend() Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if err := addMetabolites(m, MethodThreeTrend,
			met("s_c", "substrate", "", 0, cytosol),
			met("x_c", "biomass precursor", "", 0, cytosol),
			met("y_c", "maintenance sink", "", 0, cytosol),
			met("p_c", "product", "", 0, cytosol),
		); err != nil {
			return err
		}
		if err := addReactions(m, MethodThreeTrend,
			rxn("UP", "substrate uptake", 0, cfg.uptake, map[string]float64{"s_c": 1}, ""),
			rxn("R_CONST", "constant branch", 2, DefaultUpper, map[string]float64{"s_c": -1, "y_c": 1}, ""),
			rxn("DM_y", "maintenance demand", 0, DefaultUpper, map[string]float64{"y_c": -1}, ""),
			rxn("R_DEC", "growth branch", 0, DefaultUpper, map[string]float64{"s_c": -1, "x_c": 1}, ""),
			rxn(ThreeTrendBiomass, "biomass", 0, DefaultUpper, map[string]float64{"x_c": -1}, ""),
			rxn("R_INC", "product branch", 0, DefaultUpper, map[string]float64{"s_c": -1, "p_c": 1}, ""),
			rxn(ThreeTrendEnforce, "product export", 0, DefaultUpper, map[string]float64{"p_c": -1}, ""),
		); err != nil {
			return err
		}
		if err := m.SetObjective(ThreeTrendBiomass, core.Maximize); err != nil {
			return wrapf(MethodThreeTrend, "objective", err)
		}

		return nil
	}
}

// LinearChain builds IN → M0 → M1 → … → Mn → OUT with n internal reactions
// named by the configured IDFn, uptake bounded by the configured uptake and
// OUT maximised. The optimum equals the uptake.
//
// Errors: ErrTooFewReactions if n < MinChainLength.
// Complexity: O(n).
func LinearChain(n int) Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if err := validateMin(MethodLinearChain, n, MinChainLength); err != nil {
			return err
		}
		metID := func(i int) string { return "M" + strconv.Itoa(i) }
		for i := 0; i <= n; i++ {
			if err := addMetabolites(m, MethodLinearChain, met(metID(i), "", "", 0, cytosol)); err != nil {
				return err
			}
		}
		rs := make([]core.Reaction, 0, n+2)
		rs = append(rs, rxn("IN", "chain uptake", 0, cfg.uptake, map[string]float64{metID(0): 1}, ""))
		for i := 0; i < n; i++ {
			rs = append(rs, rxn(cfg.idFn(i), "", 0, DefaultUpper,
				map[string]float64{metID(i): -1, metID(i + 1): 1}, ""))
		}
		rs = append(rs, rxn("OUT", "chain drain", 0, DefaultUpper, map[string]float64{metID(n): -1}, ""))
		if err := addReactions(m, MethodLinearChain, rs...); err != nil {
			return err
		}
		if err := m.SetObjective("OUT", core.Maximize); err != nil {
			return wrapf(MethodLinearChain, "objective", err)
		}

		return nil
	}
}
