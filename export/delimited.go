package export

import (
	"encoding/csv"
	"io"

	"github.com/katalvlaran/fseof/fseof"
)

// writeDelimited writes the scan table: one row per step with the scheduled
// value, the solved enforced and objective fluxes, then one column per
// tracked (or target) reaction.
func writeDelimited(w io.Writer, res *fseof.Result, opts Options, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	scan := res.Scan()
	ids := scan.Reactions()
	if opts.TargetsOnly {
		ids = res.Targets()
	}

	header := append([]string{"step", "value", res.Enforced(), res.Objective()}, ids...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, st := range res.Steps() {
		row := make([]string, 0, len(header))
		row = append(row, opts.format(float64(st.Step)), opts.format(st.Value))
		if st.Feasible {
			row = append(row, opts.format(st.EnforcedFlux), opts.format(st.ObjectiveFlux))
		} else {
			row = append(row, "", "")
		}
		for _, id := range ids {
			if v, ok := scan.At(st.Step, id); ok {
				row = append(row, opts.format(v))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
