// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// impl_lycopene.go: heterologous lycopene pathway.
//
//	ZCRTE   ipdp_c + frdp_c → ggpp + ppi_c        (crtE, reversible)
//	ZCRTB   2 ggpp → phyto + ppi_c                (crtB, reversible)
//	ZCRTI   phyto + 8 fad_c → lyco + 8 fadh2_c    (crtI, reversible)
//	LYCOdem lyco →                                [0, 1000]

package builder

import (
	"fmt"

	"github.com/katalvlaran/fseof/core"
)

// lycopeneGene pairs a gene with the single reaction it encodes.
type lycopeneGene struct {
	gene     string
	reaction string
	name     string
	stoich   map[string]float64
}

var lycopeneGenes = []lycopeneGene{
	{"crtE", "ZCRTE", "Synthesis of geranylgeranyl pyrophosphate",
		map[string]float64{"ipdp_c": -1, "frdp_c": -1, "ggpp": 1, "ppi_c": 1}},
	{"crtB", "ZCRTB", "Synthesis of phytoene",
		map[string]float64{"ggpp": -2, "phyto": 1, "ppi_c": 1}},
	{"crtI", "ZCRTI", "Synthesis of lycopene from phytoene (dehydrogenation)",
		map[string]float64{"phyto": -1, "fad_c": -8, "lyco": 1, "fadh2_c": 8}},
}

// Lycopene adds the crtE / crtB / crtI genes with their reactions and the
// LYCOdem demand reaction. The host model must carry ipdp_c, frdp_c, ppi_c,
// fad_c and fadh2_c (CoreCarbon does).
//
// Errors:
//   - ErrMissingPrecursor when a host metabolite is absent.
//   - ErrConstructFailed when a gene or reaction already exists.
func Lycopene() Constructor {
	return func(m *core.Model, cfg builderConfig) error {
		if err := requireMetabolites(m, MethodLycopene, "ipdp_c", "frdp_c", "ppi_c", "fad_c", "fadh2_c"); err != nil {
			return err
		}
		if err := addMetabolites(m, MethodLycopene,
			met("ggpp", "geranylgeranyl diphosphate", "C20H33O7P2", -3, cytosol),
			met("phyto", "phytoene", "C40H64", 0, cytosol),
			met("lyco", "lycopene", "C40H56", 0, cytosol),
		); err != nil {
			return err
		}
		for _, lg := range lycopeneGenes {
			if err := addGeneReactionPair(m, cfg, lg); err != nil {
				return err
			}
		}

		return addReactions(m, MethodLycopene,
			rxn(LycopeneDemand, "Lycopene demand", 0, DefaultUpper, map[string]float64{"lyco": -1}, ""))
	}
}

// addGeneReactionPair inserts one gene and the reaction it alone encodes.
func addGeneReactionPair(m *core.Model, cfg builderConfig, lg lycopeneGene) error {
	if m.HasGene(lg.gene) {
		return fmt.Errorf("%s: gene %q: %w: %w", MethodLycopene, lg.gene, ErrConstructFailed, core.ErrDuplicateGene)
	}
	if err := m.AddGene(core.Gene{ID: lg.gene}); err != nil {
		return wrapf(MethodLycopene, "gene "+lg.gene, err)
	}

	return addReactions(m, MethodLycopene, rxn(lg.reaction, lg.name, cfg.revLower, cfg.revUpper, lg.stoich, lg.gene))
}
