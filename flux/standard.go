// File: standard.go
// Role: Conversion of a bounded flux LP to the standard form
//
//	minimize c·x  subject to  A·x = b,  x ≥ 0
//
// consumed by gonum's lp.Simplex, and mapping of x back to fluxes.
//
// Variable substitution per reaction bound type:
//   - lower == upper       v = lower                  (no column)
//   - finite lower         v = lower + y              (+ row y + s = upper − lower when upper is finite)
//   - only finite upper    v = upper − y
//   - free                 v = p − n
//
// Rows whose coefficients are linearly dependent (common in stoichiometric
// matrices with conserved moieties) are removed with matrix.RowReduce, since
// lp.Simplex rejects rank-deficient systems.

package flux

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/fseof/matrix"
)

// zeroSnap is the magnitude below which recovered fluxes are reported as 0.
const zeroSnap = 1e-10

// substitution expresses one reaction flux as offset + Σ sign_t·x[col_t].
type substitution struct {
	offset float64
	cols   []int
	signs  []float64
}

var _ matrix.Matrix = (*standardForm)(nil)

type standardForm struct {
	subs  []substitution
	ncols int
	rows  []map[int]float64
	rhs   []float64
	cost  []float64
}

func (sf *standardForm) newCol() int {
	sf.ncols++

	return sf.ncols - 1
}

// Rows, Cols and At expose the equality rows to matrix.RowReduce without
// materialising a dense copy first.
func (sf *standardForm) Rows() int { return len(sf.rows) }

func (sf *standardForm) Cols() int { return sf.ncols }

func (sf *standardForm) At(i, j int) (float64, error) {
	if i < 0 || i >= len(sf.rows) || j < 0 || j >= sf.ncols {
		return 0, fmt.Errorf("standard form At(%d, %d): %w", i, j, matrix.ErrOutOfRange)
	}

	return sf.rows[i][j], nil
}

func (sf *standardForm) addRow(entries map[int]float64, rhs float64) {
	sf.rows = append(sf.rows, entries)
	sf.rhs = append(sf.rhs, rhs)
}

// newStandardForm builds the standard form of p.
// Errors: ErrInfeasible for bounds that admit no value (e.g. lower = +Inf).
func newStandardForm(p *Problem) (*standardForm, error) {
	n := len(p.s.Reactions)
	sf := &standardForm{subs: make([]substitution, n)}

	for j := 0; j < n; j++ {
		lo, hi := p.lower[j], p.upper[j]
		loFinite, hiFinite := !math.IsInf(lo, 0), !math.IsInf(hi, 0)
		switch {
		case math.IsInf(lo, 1) || math.IsInf(hi, -1):
			return nil, fmt.Errorf("reaction %q bounds [%g, %g]: %w", p.s.Reactions[j], lo, hi, ErrInfeasible)
		case lo == hi:
			sf.subs[j] = substitution{offset: lo}
		case loFinite:
			k := sf.newCol()
			sf.subs[j] = substitution{offset: lo, cols: []int{k}, signs: []float64{1}}
			if hiFinite {
				s := sf.newCol()
				sf.addRow(map[int]float64{k: 1, s: 1}, hi-lo)
			}
		case hiFinite:
			k := sf.newCol()
			sf.subs[j] = substitution{offset: hi, cols: []int{k}, signs: []float64{-1}}
		default:
			kp, kn := sf.newCol(), sf.newCol()
			sf.subs[j] = substitution{cols: []int{kp, kn}, signs: []float64{1, -1}}
		}
	}

	// Mass balance S·v = 0 rewritten over x.
	a := p.s.Mat
	for i := 0; i < a.Rows(); i++ {
		entries := make(map[int]float64)
		var rhs float64
		for j := 0; j < n; j++ {
			coef, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			if coef == 0 {
				continue
			}
			sub := sf.subs[j]
			rhs -= coef * sub.offset
			for t, k := range sub.cols {
				entries[k] += coef * sub.signs[t]
			}
		}
		sf.addRow(entries, rhs)
	}

	sf.cost = make([]float64, sf.ncols)
	dir := -1.0
	if p.sense == Minimize {
		dir = 1.0
	}
	obj := sf.subs[p.objective]
	for t, k := range obj.cols {
		sf.cost[k] += dir * obj.signs[t]
	}

	return sf, nil
}

// solve returns x ≥ 0 minimising cost·x subject to the rows.
func (sf *standardForm) solve(tol float64) ([]float64, error) {
	x := make([]float64, sf.ncols)
	m, n := len(sf.rows), sf.ncols

	if n == 0 {
		// Every flux is fixed; only the constant rows remain to be checked.
		for i, rhs := range sf.rhs {
			if math.Abs(rhs) > matrix.DefaultEpsilon*math.Max(1, math.Abs(rhs)) {
				return nil, fmt.Errorf("row %d: 0 = %g: %w", i, rhs, ErrInfeasible)
			}
		}

		return x, nil
	}
	if m == 0 {
		return x, sf.unboundedIfImproving(tol, nil)
	}

	nonzero := make([]bool, n)
	for _, row := range sf.rows {
		for k, v := range row {
			if v != 0 {
				nonzero[k] = true
			}
		}
	}

	red, err := matrix.RowReduce(sf, sf.rhs)
	if err != nil {
		if errors.Is(err, matrix.ErrInconsistent) {
			return nil, fmt.Errorf("%w: %w", ErrInfeasible, err)
		}

		return nil, err
	}
	if red.Rank == 0 {
		return x, sf.unboundedIfImproving(tol, nil)
	}

	// Columns absent from every row are free of constraints: they stay at 0
	// unless decreasing the cost along them is possible.
	if err = sf.unboundedIfImproving(tol, nonzero); err != nil {
		return nil, err
	}
	keep := make([]int, 0, n)
	for k := 0; k < n; k++ {
		if nonzero[k] {
			keep = append(keep, k)
		}
	}

	A := mat.NewDense(red.Rank, len(keep), nil)
	b := make([]float64, red.Rank)
	c := make([]float64, len(keep))
	for t, k := range keep {
		c[t] = sf.cost[k]
	}
	for i := 0; i < red.Rank; i++ {
		row, err := red.A.Row(i)
		if err != nil {
			return nil, err
		}
		sign := 1.0
		if red.B[i] < 0 {
			sign = -1
		}
		b[i] = sign * red.B[i]
		for t, k := range keep {
			A.Set(i, t, sign*row[k])
		}
	}

	xk, err := simplex(c, A, b, tol)
	if err != nil {
		return nil, err
	}
	for t, k := range keep {
		x[k] = xk[t]
	}

	return x, nil
}

// unboundedIfImproving reports ErrUnbounded when a column outside every row
// (all columns when constrained is nil) has a negative cost.
func (sf *standardForm) unboundedIfImproving(tol float64, constrained []bool) error {
	for k, c := range sf.cost {
		if constrained != nil && constrained[k] {
			continue
		}
		if c < -tol {
			return ErrUnbounded
		}
	}

	return nil
}

// simplex calls lp.Simplex and translates its failures. gonum panics on
// malformed input instead of returning an error; such panics surface as
// ErrSolverFailed.
func simplex(c []float64, A mat.Matrix, b []float64, tol float64) (x []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			x, err = nil, fmt.Errorf("%w: %v", ErrSolverFailed, r)
		}
	}()

	_, x, err = lp.Simplex(c, A, b, tol, nil)
	switch {
	case err == nil:
		return x, nil
	case errors.Is(err, lp.ErrInfeasible):
		return nil, fmt.Errorf("%w: %w", ErrInfeasible, err)
	case errors.Is(err, lp.ErrUnbounded):
		return nil, fmt.Errorf("%w: %w", ErrUnbounded, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrSolverFailed, err)
	}
}

// fluxes maps x back to reaction fluxes keyed by ID.
func (sf *standardForm) fluxes(x []float64, ids []string) map[string]float64 {
	out := make(map[string]float64, len(ids))
	for j, id := range ids {
		sub := sf.subs[j]
		v := sub.offset
		for t, k := range sub.cols {
			v += sub.signs[t] * x[k]
		}
		if math.Abs(v) < zeroSnap {
			v = 0
		}
		out[id] = v
	}

	return out
}

// statusOf classifies a solve error.
func statusOf(err error) Status {
	switch {
	case err == nil:
		return Optimal
	case errors.Is(err, ErrInfeasible):
		return Infeasible
	case errors.Is(err, ErrUnbounded):
		return Unbounded
	default:
		return Failed
	}
}
