package export

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/fseof/fseof"
)

type jsonStep struct {
	Step          int      `json:"step"`
	Value         float64  `json:"value"`
	EnforcedFlux  *float64 `json:"enforced_flux"`
	ObjectiveFlux *float64 `json:"objective_flux"`
	Feasible      bool     `json:"feasible"`
}

// jsonRange is one variability cell; nil in Ranges marks a missing cell.
type jsonRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type jsonReaction struct {
	Reaction    string       `json:"reaction"`
	Target      bool         `json:"target"`
	Rank        int          `json:"rank"`
	NetChange   float64      `json:"net_change"`
	Min         float64      `json:"min"`
	Max         float64      `json:"max"`
	Consistency float64      `json:"consistency"`
	Fluxes      []*float64   `json:"fluxes"`
	Ranges      []*jsonRange `json:"ranges,omitempty"`
}

type jsonMissing struct {
	Steps            int `json:"steps"`
	VariabilityCells int `json:"variability_cells"`
}

type jsonDocument struct {
	Enforced  string         `json:"enforced"`
	Objective string         `json:"objective"`
	Direction string         `json:"direction"`
	Schedule  []float64      `json:"schedule"`
	Steps     []jsonStep     `json:"steps"`
	Reactions []jsonReaction `json:"reactions"`
	Targets   []string       `json:"targets"`
	Missing   jsonMissing    `json:"missing"`
}

// writeJSON writes the whole result as one indented document.
func writeJSON(w io.Writer, res *fseof.Result, opts Options) error {
	ptr := func(v float64) *float64 {
		r := opts.round(v)
		return &r
	}

	sched := res.Schedule()
	doc := jsonDocument{
		Enforced:  res.Enforced(),
		Objective: res.Objective(),
		Direction: res.Direction().String(),
		Schedule:  make([]float64, len(sched.Points)),
		Targets:   res.Targets(),
		Missing:   jsonMissing(res.Missing()),
	}
	for i, p := range sched.Points {
		doc.Schedule[i] = opts.round(p)
	}
	for _, st := range res.Steps() {
		js := jsonStep{Step: st.Step, Value: opts.round(st.Value), Feasible: st.Feasible}
		if st.Feasible {
			js.EnforcedFlux, js.ObjectiveFlux = ptr(st.EnforcedFlux), ptr(st.ObjectiveFlux)
		}
		doc.Steps = append(doc.Steps, js)
	}

	scan := res.Scan()
	vt := res.Variability()
	cls := res.Classifications()
	for _, id := range scan.Reactions() {
		c := cls[id]
		jr := jsonReaction{
			Reaction:    id,
			Target:      c.Target,
			Rank:        c.Rank,
			NetChange:   opts.round(c.NetChange),
			Min:         opts.round(c.Min),
			Max:         opts.round(c.Max),
			Consistency: opts.round(c.Consistency()),
			Fluxes:      make([]*float64, scan.Steps()),
		}
		for s := range jr.Fluxes {
			if v, ok := scan.At(s, id); ok {
				jr.Fluxes[s] = ptr(v)
			}
		}
		if vt != nil {
			jr.Ranges = make([]*jsonRange, vt.Steps())
			for s := range jr.Ranges {
				if r, ok := vt.At(s, id); ok {
					jr.Ranges[s] = &jsonRange{Min: opts.round(r.Min), Max: opts.round(r.Max)}
				}
			}
		}
		doc.Reactions = append(doc.Reactions, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
