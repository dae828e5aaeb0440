// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// impl_core_carbon.go: lumped central-carbon network.
//
// Reactions (all irreversible unless noted):
//
//	EX_glc__D_e  glc__D_e ⇄                      [−uptake, 1000]
//	GLCpts       glc__D_e → glc__D_c
//	GLYC         glc__D_c → 2 g3p_c
//	GAPD         g3p_c + adp_c → pyr_c + atp_c
//	PDH          pyr_c → accoa_c + co2_c
//	CS           accoa_c + 3 adp_c → 2 co2_c + 3 atp_c          (lumped TCA + respiration)
//	MEP          pyr_c + g3p_c + 3 atp_c → ipdp_c + co2_c + 3 adp_c
//	IPDDI        ipdp_c ⇄ dmpp_c                                 (reversible)
//	FPPS         dmpp_c + 2 ipdp_c → frdp_c + 2 ppi_c
//	DM_ppi_c     ppi_c →
//	FADH2OX      fadh2_c + 2 adp_c → fad_c + 2 atp_c
//	CO2t         co2_c → co2_e          EX_co2_e  co2_e →
//	ATPM         atp_c → adp_c          [maintenance, 1000]
//	BIOMASS      3 accoa_c + 2 g3p_c + pyr_c + 20 atp_c → 20 adp_c   (objective, max)
//
// With uptake 10 and maintenance 1 the growth optimum is 1.975.

package builder

import (
	"github.com/katalvlaran/fseof/core"
)

// CoreCarbon adds the lumped central-carbon network and sets BIOMASS as the
// maximised objective. It provides the isoprenoid precursors (ipdp_c, frdp_c,
// ppi_c) and the fad_c / fadh2_c pair that Lycopene attaches to.
func CoreCarbon() Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if err := addMetabolites(m, MethodCoreCarbon,
			met("glc__D_e", "D-glucose", "C6H12O6", 0, extracellular),
			met("glc__D_c", "D-glucose", "C6H12O6", 0, cytosol),
			met("g3p_c", "glyceraldehyde 3-phosphate", "C3H5O6P", -2, cytosol),
			met("pyr_c", "pyruvate", "C3H3O3", -1, cytosol),
			met("accoa_c", "acetyl-CoA", "C23H34N7O17P3S", -4, cytosol),
			met("co2_c", "CO2", "CO2", 0, cytosol),
			met("co2_e", "CO2", "CO2", 0, extracellular),
			met("atp_c", "ATP", "C10H12N5O13P3", -4, cytosol),
			met("adp_c", "ADP", "C10H12N5O10P2", -3, cytosol),
			met("ipdp_c", "isopentenyl diphosphate", "C5H9O7P2", -3, cytosol),
			met("dmpp_c", "dimethylallyl diphosphate", "C5H9O7P2", -3, cytosol),
			met("frdp_c", "farnesyl diphosphate", "C15H25O7P2", -3, cytosol),
			met("ppi_c", "diphosphate", "HO7P2", -3, cytosol),
			met("fad_c", "FAD", "C27H30N9O15P2", -3, cytosol),
			met("fadh2_c", "FADH2", "C27H32N9O15P2", -3, cytosol),
		); err != nil {
			return err
		}

		const hi = DefaultUpper
		if err := addReactions(m, MethodCoreCarbon,
			rxn(GlucoseExchange, "D-glucose exchange", -cfg.uptake, hi, map[string]float64{"glc__D_e": -1}, ""),
			rxn("GLCpts", "glucose transport via PTS", 0, hi, map[string]float64{"glc__D_e": -1, "glc__D_c": 1}, "ptsG and crr"),
			rxn("GLYC", "glycolysis (upper, lumped)", 0, hi, map[string]float64{"glc__D_c": -1, "g3p_c": 2}, "pfkA or pfkB"),
			rxn("GAPD", "glycolysis (lower, lumped)", 0, hi,
				map[string]float64{"g3p_c": -1, "adp_c": -1, "pyr_c": 1, "atp_c": 1}, "gapA"),
			rxn("PDH", "pyruvate dehydrogenase", 0, hi,
				map[string]float64{"pyr_c": -1, "accoa_c": 1, "co2_c": 1}, "aceE and aceF and lpd"),
			rxn("CS", "TCA cycle and respiration (lumped)", 0, hi,
				map[string]float64{"accoa_c": -1, "adp_c": -3, "co2_c": 2, "atp_c": 3}, "gltA"),
			rxn("MEP", "MEP pathway (lumped)", 0, hi,
				map[string]float64{"pyr_c": -1, "g3p_c": -1, "atp_c": -3, "ipdp_c": 1, "co2_c": 1, "adp_c": 3}, "dxs and ispC"),
			rxn("IPDDI", "isopentenyl-diphosphate isomerase", cfg.revLower, cfg.revUpper,
				map[string]float64{"ipdp_c": -1, "dmpp_c": 1}, "idi"),
			rxn("FPPS", "farnesyl diphosphate synthase", 0, hi,
				map[string]float64{"dmpp_c": -1, "ipdp_c": -2, "frdp_c": 1, "ppi_c": 2}, "ispA"),
			rxn("DM_ppi_c", "diphosphate demand", 0, hi, map[string]float64{"ppi_c": -1}, ""),
			rxn("FADH2OX", "FADH2 oxidation", 0, hi,
				map[string]float64{"fadh2_c": -1, "adp_c": -2, "fad_c": 1, "atp_c": 2}, "sdhC"),
			rxn("CO2t", "CO2 transport", 0, hi, map[string]float64{"co2_c": -1, "co2_e": 1}, ""),
			rxn("EX_co2_e", "CO2 exchange", 0, hi, map[string]float64{"co2_e": -1}, ""),
			rxn(MaintenanceATP, "ATP maintenance", cfg.maintenance, hi, map[string]float64{"atp_c": -1, "adp_c": 1}, ""),
			rxn(BiomassReaction, "biomass (lumped)", 0, hi,
				map[string]float64{"accoa_c": -3, "g3p_c": -2, "pyr_c": -1, "atp_c": -20, "adp_c": 20}, ""),
		); err != nil {
			return err
		}
		if err := m.SetObjective(BiomassReaction, core.Maximize); err != nil {
			return wrapf(MethodCoreCarbon, "objective", err)
		}

		return nil
	}
}
