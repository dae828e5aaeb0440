package export

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of significant digits printed for fluxes.
const DefaultPrecision = 6

// zeroSnap is the magnitude below which values print as 0.
const zeroSnap = 1e-9

// Options tunes every writer.
//   - Precision: significant digits (0 means DefaultPrecision).
//   - Color: styled text output; ignored by the other formats.
//   - TargetsOnly: csv/tsv list only target columns.
type Options struct {
	Precision   int
	Color       bool
	TargetsOnly bool
}

// DefaultOptions returns Precision = DefaultPrecision, no color, all columns.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

func (o Options) withDefaults() Options {
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}

	return o
}

// format prints v with the configured precision.
func (o Options) format(v float64) string {
	if math.Abs(v) < zeroSnap {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', o.Precision, 64)
}

// round returns v rounded to the configured precision.
func (o Options) round(v float64) float64 {
	r, err := strconv.ParseFloat(o.format(v), 64)
	if err != nil {
		return v
	}

	return r
}
