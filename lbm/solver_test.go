package lbm

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallConfig is a scaled-down version of the reference case that keeps the
// same physics (same Reynolds number, same inlet speed, proportional
// obstacle) but runs in test time.
func smallConfig() Config {
	nx, ny := 140, 63
	cfg := DefaultConfig()
	cfg.Grid = NewGridConfig(nx, ny)
	cfg.Obstacle.CenterX = float64(nx) / 4
	cfg.Obstacle.CenterY = float64(ny) / 2
	cfg.Obstacle.Radius = float64(ny) / 9
	cfg.Run = NewRunConfig(400, 100, 2)
	return cfg
}

func TestNewSolver_RejectsBadSetup(t *testing.T) {
	cfg := smallConfig()
	cfg.Flow.Omega = 2.0
	_, err := NewSolver(cfg)
	assert.ErrorIs(t, err, ErrInvalidRelaxationParameter)

	cfg = smallConfig()
	cfg.Flow.InletVelocity = 1.5
	_, err = NewSolver(cfg)
	assert.ErrorIs(t, err, ErrInletVelocityOutOfRange)
}

func TestNewSolver_InitializesAtEquilibrium(t *testing.T) {
	cfg := smallConfig()
	s, err := NewSolver(cfg)
	require.NoError(t, err)

	// initial populations are the equilibrium of (1, inlet profile):
	// extraction reproduces unit density and the broadcast profile
	rho := NewScalarField(cfg.Grid.NX, cfg.Grid.NY)
	u := NewVectorField(cfg.Grid.NX, cfg.Grid.NY)
	Macroscopic(D2Q9, s.Populations(), rho, u, 1)

	inlet := NewSinusoidalInlet(cfg.Flow.InletVelocity, cfg.Flow.Perturbation, cfg.Grid.NY)
	for x := 0; x < cfg.Grid.NX; x += 17 {
		for y := 0; y < cfg.Grid.NY; y++ {
			assert.InDelta(t, 1.0, rho.At(x, y), 1e-12)
			assert.InDelta(t, inlet.UX[y], u.X.At(x, y), 1e-12)
			assert.InDelta(t, 0.0, u.Y.At(x, y), 1e-12)
		}
	}
	assert.InDelta(t, float64(cfg.Grid.NX*cfg.Grid.NY), s.Metrics.InitialMass, 1e-6)
}

func TestSolver_RunOnce(t *testing.T) {
	s, err := NewSolver(smallConfig())
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	errAgain := s.Run(context.Background())
	assert.Error(t, errAgain, "a solver is single-use")
}

type countingProbe struct {
	iterations []int
}

func (p *countingProbe) Report(iteration int, rho *ScalarField, u *VectorField) {
	p.iterations = append(p.iterations, iteration)
}

func TestSolver_ProbeCadence(t *testing.T) {
	cfg := smallConfig()
	cfg.Run.MaxIter = 250
	cfg.Run.ReportEvery = 100
	s, err := NewSolver(cfg)
	require.NoError(t, err)

	probe := &countingProbe{}
	s.SetProbe(probe)
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []int{0, 100, 200}, probe.iterations)
	assert.Equal(t, 251, s.Metrics.Iterations)
	assert.Equal(t, 3, s.Metrics.Snapshots)
}

func TestSolver_CancelBetweenIterations(t *testing.T) {
	cfg := smallConfig()
	cfg.Run.MaxIter = 100000
	s, err := NewSolver(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Run(ctx), context.Canceled)
	assert.Equal(t, 0, s.Metrics.Iterations)
}

func TestSolver_DetectsDivergence(t *testing.T) {
	cfg := smallConfig()
	cfg.Run.MaxIter = 10
	cfg.Run.ReportEvery = 1
	s, err := NewSolver(cfg)
	require.NoError(t, err)

	s.Populations().Set(4, 20, 20, math.NaN())

	err = s.Run(context.Background())
	assert.ErrorIs(t, err, ErrNumericalDivergence)
	assert.Contains(t, err.Error(), "iteration 0")
}

func TestSolver_WakeForms(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping wake formation run in -short mode")
	}
	cfg := smallConfig()
	cfg.Run.MaxIter = 2000
	cfg.Run.ReportEvery = 500
	s, err := NewSolver(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	// everything stayed finite
	assert.Equal(t, -1, firstNonFinite(s.Populations()))

	// the wake: velocity-magnitude structure downstream of the obstacle
	// exceeds the near-uniform upstream variation
	nx := cfg.Grid.NX
	cx := int(cfg.Obstacle.CenterX)
	upstream := SpeedVariance(s.U(), 0, cx/2)
	downstream := SpeedVariance(s.U(), cx*2, nx-1)
	assert.Greater(t, downstream, upstream)

	// open boundaries leak mass slowly; drift stays small over 2001 steps
	drift := math.Abs(s.Metrics.FinalMass-s.Metrics.InitialMass) / s.Metrics.InitialMass
	assert.Less(t, drift, 0.05)
}

func TestSolver_MaskedObstacleIsReflective(t *testing.T) {
	// after one full step, populations at a solid cell came from the
	// bounce-back of the pre-collision field, then streamed; just pin that
	// the solid region stays populated and finite
	cfg := smallConfig()
	cfg.Run.MaxIter = 5
	cfg.Run.ReportEvery = 0
	s, err := NewSolver(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, -1, firstNonFinite(s.Populations()))
}
