package store

import "time"

// Run is the summary row of one saved scan.
type Run struct {
	ID              string
	CreatedAt       time.Time
	Model           string
	Enforced        string
	Objective       string
	Direction       string
	NumSteps        int
	Baseline        float64
	Anchor          float64
	InfeasibleSteps int
	FailedCells     int
	Variability     bool
	Targets         int
}

// Step is one saved scan row. EnforcedFlux and ObjectiveFlux are NaN when
// the step was infeasible.
type Step struct {
	Step          int
	Value         float64
	EnforcedFlux  float64
	ObjectiveFlux float64
	Feasible      bool
}

// Classification is the saved verdict of one tracked reaction.
type Classification struct {
	Reaction  string
	Target    bool
	Rank      int
	Monotonic int
	Scored    int
	Min       float64
	Max       float64
	NetChange float64
}

// FluxPoint is the flux of one reaction at one available step.
type FluxPoint struct {
	Step int
	Flux float64
}

// RangePoint is the variability range of one reaction at one step.
type RangePoint struct {
	Step int
	Min  float64
	Max  float64
}

// timeLayout is fixed-width so created_at sorts lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
