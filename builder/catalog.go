// SPDX-License-Identifier: MIT
// Package: fseof/builder
//
// catalog.go: named ready-made models.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fseof/core"
)

// Entry describes one catalog model and the scan it is meant for.
type Entry struct {
	Name        string
	Description string
	// Enforced and Objective are the default scan reactions ("" when the
	// model has no natural enforced reaction).
	Enforced  string
	Objective string

	cons []func() Constructor
}

// Build constructs a fresh model for e with bopts applied.
func (e Entry) Build(bopts ...BuilderOption) (*core.Model, error) {
	cons := make([]Constructor, len(e.cons))
	for i, c := range e.cons {
		cons[i] = c()
	}

	return BuildModel([]core.ModelOption{core.WithName(e.Name), core.WithAutoGenes()}, bopts, cons...)
}

var catalog = map[string]Entry{
	"three-trend": {
		Name:        "three-trend",
		Description: "toy network with increasing, constant and decreasing branches",
		Enforced:    ThreeTrendEnforce,
		Objective:   ThreeTrendBiomass,
		cons:        []func() Constructor{ThreeTrend},
	},
	"core-carbon": {
		Name:        "core-carbon",
		Description: "lumped central carbon metabolism with MEP isoprenoid route",
		Enforced:    "CS",
		Objective:   BiomassReaction,
		cons:        []func() Constructor{CoreCarbon, LBMedium},
	},
	"lycopene": {
		Name:        "lycopene",
		Description: "core-carbon with crtE/crtB/crtI and lycopene demand on LB medium",
		Enforced:    LycopeneDemand,
		Objective:   BiomassReaction,
		cons:        []func() Constructor{CoreCarbon, Lycopene, LBMedium},
	},
}

// Catalog returns every entry sorted by name.
func Catalog() []Entry {
	out := make([]Entry, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := catalog[name]
	if !ok {
		return Entry{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownModel)
	}

	return e, nil
}

// Build is Lookup(name) followed by Entry.Build(bopts...).
func Build(name string, bopts ...BuilderOption) (*core.Model, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return e.Build(bopts...)
}
