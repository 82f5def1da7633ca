package lbm

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Probe consumes per-cadence solver snapshots. The fields are owned by the
// solver and valid only until the next iteration begins; implementations must
// copy anything they retain. render.Heatmap is the shipped implementation.
type Probe interface {
	Report(iteration int, rho *ScalarField, u *VectorField)
}

type solverState int

const (
	stateInitialized solverState = iota
	stateRunning
	stateCompleted
)

// Solver owns all population state and marches it through the per-iteration
// phase sequence. Construct with NewSolver, optionally attach a Probe, then
// Run. A Solver is single-use: Run may be called once.
type Solver struct {
	cfg   Config
	lat   *Lattice
	mask  *Mask
	inlet *InletProfile
	omega float64

	// fin holds the current (post-streaming) populations, fout the staging
	// buffer written by collision and bounce-back. Streaming reads fout and
	// writes fin, so the two persistent allocations alternate roles within
	// each iteration and are never read and written by the same phase.
	fin, fout *Populations
	feq       *Populations

	// rho and u are recomputed from fin every iteration; they are scratch
	// plus the read-only snapshot handed to the probe.
	rho *ScalarField
	u   *VectorField

	workers int
	state   solverState
	probe   Probe

	Metrics *Metrics
}

// NewSolver validates the configuration and builds a solver in the
// Initialized state: lattice constants, obstacle mask, inlet profile, and the
// population field set to the equilibrium of unit density and the inlet
// velocity extended across the whole domain.
func NewSolver(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	nx, ny := cfg.Grid.NX, cfg.Grid.NY

	shape, err := cfg.shape()
	if err != nil {
		return nil, err
	}
	mask, err := BuildMask(shape, nx, ny)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		cfg:     cfg,
		lat:     D2Q9,
		mask:    mask,
		inlet:   NewSinusoidalInlet(cfg.Flow.InletVelocity, cfg.Flow.Perturbation, ny),
		omega:   cfg.Omega(),
		fin:     NewPopulations(nx, ny),
		fout:    NewPopulations(nx, ny),
		feq:     NewPopulations(nx, ny),
		rho:     NewScalarField(nx, ny),
		u:       NewVectorField(nx, ny),
		workers: cfg.workers(),
		Metrics: NewMetrics(),
	}

	// Initial state: unit density everywhere, inlet velocity broadcast
	// across all columns.
	s.rho.Fill(1)
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			s.u.X.Set(x, y, s.inlet.UX[y])
			s.u.Y.Set(x, y, s.inlet.UY[y])
		}
	}
	Equilibrium(s.lat, s.rho, s.u, s.fin, s.workers)
	s.Metrics.InitialMass = TotalMass(s.fin)

	return s, nil
}

// SetProbe attaches the reporting collaborator. Pass nil to detach.
func (s *Solver) SetProbe(p Probe) {
	s.probe = p
}

// Omega returns the relaxation rate in effect.
func (s *Solver) Omega() float64 { return s.omega }

// Mask returns the obstacle mask.
func (s *Solver) Mask() *Mask { return s.mask }

// Rho returns the density field as of the last completed iteration.
func (s *Solver) Rho() *ScalarField { return s.rho }

// U returns the velocity field as of the last completed iteration.
func (s *Solver) U() *VectorField { return s.u }

// Populations returns the current population buffer. Exposed for tests and
// for callers that checkpoint state between runs.
func (s *Solver) Populations() *Populations { return s.fin }

// Step advances the solver by one iteration: outflow, macroscopic extraction,
// inflow density reconstruction, equilibrium, inflow population correction,
// collision, obstacle bounce-back, streaming. Each phase completes over the
// full grid before the next begins.
func (s *Solver) Step(iteration int) error {
	ApplyOutflow(s.lat, s.fin)
	Macroscopic(s.lat, s.fin, s.rho, s.u, s.workers)
	if err := ApplyInflowMacro(s.lat, s.fin, s.rho, s.u, s.inlet); err != nil {
		return fmt.Errorf("iteration %d: %w", iteration, err)
	}
	Equilibrium(s.lat, s.rho, s.u, s.feq, s.workers)
	ApplyInflowPopulations(s.lat, s.fin, s.feq)
	Collide(s.fin, s.feq, s.fout, s.omega, s.workers)
	ApplyBounceBack(s.lat, s.fin, s.fout, s.mask)
	Stream(s.lat, s.fout, s.fin, s.workers)
	return nil
}

// Run executes MaxIter+1 iterations, counting from 0. Iterations are atomic:
// the context is checked only between them. At the reporting cadence the
// solver scans for divergence, logs progress, and hands the (rho, u) snapshot
// to the probe. Per-iteration errors abort the run carrying the iteration
// index; there is no retry.
func (s *Solver) Run(ctx context.Context) error {
	if s.state != stateInitialized {
		return fmt.Errorf("solver already run")
	}
	s.state = stateRunning
	s.Metrics.start = time.Now()
	defer func() {
		s.Metrics.elapsed = time.Since(s.Metrics.start)
		s.Metrics.FinalMass = TotalMass(s.fin)
	}()

	logrus.Infof("starting solver: grid=%dx%d Re=%g inlet=%g omega=%.4f iterations=%d workers=%d",
		s.cfg.Grid.NX, s.cfg.Grid.NY, s.cfg.Flow.Reynolds, s.cfg.Flow.InletVelocity,
		s.omega, s.cfg.Run.MaxIter+1, s.workers)

	every := s.cfg.Run.ReportEvery
	for it := 0; it <= s.cfg.Run.MaxIter; it++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.Step(it); err != nil {
			return err
		}
		s.Metrics.Iterations++

		if every > 0 && it%every == 0 {
			if k := firstNonFinite(s.fin); k >= 0 {
				return fmt.Errorf("iteration %d: %w: population index %d is non-finite",
					it, ErrNumericalDivergence, k)
			}
			s.observe(it)
		}
	}

	s.state = stateCompleted
	logrus.Infof("solver completed after %d iterations", s.Metrics.Iterations)
	return nil
}

// observe logs progress and hands the current snapshot to the probe.
func (s *Solver) observe(iteration int) {
	peak := 0.0
	for k := range s.u.X.Data {
		ux := s.u.X.Data[k]
		uy := s.u.Y.Data[k]
		if sq := ux*ux + uy*uy; sq > peak {
			peak = sq
		}
	}
	peak = math.Sqrt(peak)
	if peak > s.Metrics.PeakSpeed {
		s.Metrics.PeakSpeed = peak
	}
	logrus.Infof("iteration = %d, peak |u| = %.5f", iteration, peak)

	if s.probe != nil {
		s.probe.Report(iteration, s.rho, s.u)
	}
	s.Metrics.Snapshots++
}

// firstNonFinite returns the index of the first NaN or Inf in the population
// buffer, or -1 if all values are finite.
func firstNonFinite(f *Populations) int {
	for k, v := range f.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return k
		}
	}
	return -1
}
