package core_test

import (
	"fmt"

	"github.com/katalvlaran/fseof/core"
)

// ExampleModel builds a two-reaction network and inspects it.
func ExampleModel() {
	m := core.NewModel(core.WithName("toy"))
	_ = m.AddMetabolite(core.Metabolite{ID: "a_e", Compartment: "e"})
	_ = m.AddReaction(core.Reaction{ID: "EX_a_e", Lower: -10, Upper: 1000,
		Stoichiometry: map[string]float64{"a_e": -1}})
	_ = m.SetObjective("EX_a_e", core.Minimize)

	fmt.Println("Reactions:", m.ReactionIDs())
	fmt.Println("Medium:", m.Medium())
	id, sense, _ := m.Objective()
	fmt.Println("Objective:", sense, id)

	// Output:
	// Reactions: [EX_a_e]
	// Medium: map[EX_a_e:10]
	// Objective: min EX_a_e
}

// ExampleModel_WithBounds shows the scoped "set, run, restore" pattern.
func ExampleModel_WithBounds() {
	m := core.NewModel()
	_ = m.AddMetabolite(core.Metabolite{ID: "x_c"})
	_ = m.AddReaction(core.Reaction{ID: "R", Upper: 1000, Stoichiometry: map[string]float64{"x_c": 1}})

	_ = m.WithBounds("R", 5, 5, func() error {
		lo, hi, _ := m.Bounds("R")
		fmt.Println("inside:", lo, hi)
		return nil
	})
	lo, hi, _ := m.Bounds("R")
	fmt.Println("after:", lo, hi)

	// Output:
	// inside: 5 5
	// after: 0 1000
}
