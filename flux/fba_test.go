package flux_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fseof/core"
	"github.com/katalvlaran/fseof/flux"
)

const delta = 1e-6

// OptimizeSuite exercises flux balance analysis under various bound shapes.
type OptimizeSuite struct {
	suite.Suite
	opts flux.Options
}

func (s *OptimizeSuite) SetupTest() {
	s.opts = flux.DefaultOptions()
}

// TestMaximize verifies the optimum routes everything through CONV.
func (s *OptimizeSuite) TestMaximize() {
	m := branchModel(s.T())
	sol, err := flux.Optimize(m, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), flux.Optimal, sol.Status)
	s.InDelta(20.0, sol.ObjectiveValue, delta)
	s.InDelta(10.0, sol.Fluxes["CONV"], delta)
	s.InDelta(0.0, sol.Fluxes["ALT"], delta)
	s.InDelta(10.0, sol.Flux("IN"), delta)
}

// TestSteadyState checks S·v ≈ 0 for the returned distribution.
func (s *OptimizeSuite) TestSteadyState() {
	m := branchModel(s.T())
	p, err := flux.NewProblem(m)
	require.NoError(s.T(), err)
	sol, err := p.Solve(s.opts)
	require.NoError(s.T(), err)
	s.Less(p.Stoichiometry().MaxImbalance(sol.Fluxes), 1e-8)
}

// TestMinimize forces OUT ≥ 4 and minimises the uptake.
func (s *OptimizeSuite) TestMinimize() {
	m := branchModel(s.T())
	require.NoError(s.T(), m.SetBounds("OUT", 4, 1000))
	require.NoError(s.T(), m.SetObjective("IN", core.Minimize))
	sol, err := flux.Optimize(m, s.opts)
	require.NoError(s.T(), err)
	s.InDelta(2.0, sol.ObjectiveValue, delta)
}

// TestFixedAndMirroredBounds covers lower == upper and (-Inf, u] bounds.
func (s *OptimizeSuite) TestFixedAndMirroredBounds() {
	m := branchModel(s.T())
	require.NoError(s.T(), m.SetBounds("IN", 5, 5))
	sol, err := flux.Optimize(m, s.opts)
	require.NoError(s.T(), err)
	s.InDelta(10.0, sol.ObjectiveValue, delta)

	require.NoError(s.T(), m.SetBounds("IN", math.Inf(-1), 3))
	sol, err = flux.Optimize(m, s.opts)
	require.NoError(s.T(), err)
	s.InDelta(6.0, sol.ObjectiveValue, delta)
}

// TestFreeVariable lets a reversible reaction run backwards.
func (s *OptimizeSuite) TestFreeVariable() {
	m := branchModel(s.T())
	require.NoError(s.T(), m.SetBounds("ALT", math.Inf(-1), math.Inf(1)))
	require.NoError(s.T(), m.SetObjective("ALT", core.Minimize))
	sol, err := flux.Optimize(m, s.opts)
	require.NoError(s.T(), err)
	// ALT backwards turns b into a; CONV doubles it again: bounded by CONV ≤ 1000.
	s.InDelta(-1000.0, sol.ObjectiveValue, delta)
}

// TestInfeasible demands more output than the uptake allows.
func (s *OptimizeSuite) TestInfeasible() {
	m := branchModel(s.T())
	require.NoError(s.T(), m.SetBounds("OUT", 30, 1000))
	sol, err := flux.Optimize(m, s.opts)
	require.ErrorIs(s.T(), err, flux.ErrInfeasible)
	s.Equal(flux.Infeasible, sol.Status)
	s.Nil(sol.Fluxes)
}

// TestUnbounded removes every finite limit on the objective.
func (s *OptimizeSuite) TestUnbounded() {
	sol, err := flux.Optimize(unboundedModel(s.T()), s.opts)
	require.ErrorIs(s.T(), err, flux.ErrUnbounded)
	s.Equal(flux.Unbounded, sol.Status)
}

// TestNoObjective requires an objective.
func (s *OptimizeSuite) TestNoObjective() {
	m := branchModel(s.T())
	require.NoError(s.T(), m.RemoveReaction("OUT"))
	_, err := flux.Optimize(m, s.opts)
	require.ErrorIs(s.T(), err, flux.ErrNoObjective)

	_, err = flux.Optimize(nil, s.opts)
	require.ErrorIs(s.T(), err, flux.ErrNilModel)
}

// TestModelUntouched verifies Optimize only reads the model.
func (s *OptimizeSuite) TestModelUntouched() {
	m := branchModel(s.T())
	before := m.SnapshotBounds()
	_, err := flux.DefaultSolver().Optimize(m)
	require.NoError(s.T(), err)
	s.Equal(before, m.SnapshotBounds())
}

func TestOptimizeSuite(t *testing.T) {
	suite.Run(t, new(OptimizeSuite))
}

func TestProblem_EditsStayDetached(t *testing.T) {
	m := branchModel(t)
	p, err := flux.NewProblem(m)
	require.NoError(t, err)
	require.NoError(t, p.SetBounds("IN", 0, 1))
	require.ErrorIs(t, p.SetBounds("IN", 2, 1), core.ErrInvalidBounds)
	require.ErrorIs(t, p.SetObjective("nope", core.Maximize), flux.ErrReactionNotFound)

	sol, err := p.Solve(flux.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sol.ObjectiveValue, delta)

	_, hi, err := m.Bounds("IN")
	require.NoError(t, err)
	assert.Equal(t, 10.0, hi)
	assert.Equal(t, []string{"ALT", "CONV", "IN", "OUT"}, p.Reactions())
}

func TestSolverFunc(t *testing.T) {
	calls := 0
	var s flux.Solver = flux.SolverFunc(func(m *core.Model) (flux.Solution, error) {
		calls++
		return flux.Solution{Status: flux.Optimal, ObjectiveValue: 1}, nil
	})
	sol, err := s.Optimize(core.NewModel())
	require.NoError(t, err)
	assert.Equal(t, 1.0, sol.ObjectiveValue)
	assert.Equal(t, 1, calls)
}

func TestStatusAndSolutionHelpers(t *testing.T) {
	assert.Equal(t, "optimal", flux.Optimal.String())
	assert.Equal(t, "infeasible", flux.Infeasible.String())
	assert.Equal(t, "unbounded", flux.Unbounded.String())
	assert.Equal(t, "failed", flux.Failed.String())
	assert.True(t, math.IsNaN(flux.Solution{}.Flux("x")))
	assert.Equal(t, 3.0, flux.Range{Min: 1, Max: 4}.Width())
	assert.Equal(t, "[1, 4]", flux.Range{Min: 1, Max: 4}.String())
}
