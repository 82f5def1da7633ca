package lbm

import (
	"fmt"
	"math"
	"runtime"
)

// GridConfig groups the lattice extents.
type GridConfig struct {
	NX int `yaml:"nx"` // columns (flow direction)
	NY int `yaml:"ny"` // rows
}

// FlowConfig groups the physical flow parameters in lattice units.
type FlowConfig struct {
	Reynolds      float64 `yaml:"reynolds"`       // Reynolds number over the obstacle length scale
	InletVelocity float64 `yaml:"inlet_velocity"` // mean inlet speed, must satisfy |u| < 1
	// Perturbation is the relative amplitude of the sinusoidal inlet
	// perturbation that triggers the wake instability.
	Perturbation float64 `yaml:"perturbation"`
	// Omega, when non-zero, fixes the relaxation rate directly instead of
	// deriving it from Reynolds, inlet speed, and obstacle radius.
	Omega float64 `yaml:"omega"`
}

// ObstacleConfig selects and parameterizes the solid shape. Shape is one of
// "ellipse" or "cylinder"; custom shapes are injected programmatically via
// Config.CustomShape.
type ObstacleConfig struct {
	Shape   string  `yaml:"shape"`
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	// Radius is the cylinder radius, or the ellipse size scale R in the
	// threshold R·11/2 (the reference ellipse geometry).
	Radius float64 `yaml:"radius"`
}

// RunConfig groups loop control: the iteration bound, the reporting cadence,
// and the worker count for the bulk phase sweeps.
type RunConfig struct {
	MaxIter     int `yaml:"max_iter"`     // loop runs MaxIter+1 iterations, counting from 0
	ReportEvery int `yaml:"report_every"` // probe cadence in iterations; 0 disables reporting
	Workers     int `yaml:"workers"`      // 0 means runtime.NumCPU()
}

// Config is the full solver configuration. One value is passed explicitly to
// NewSolver; there is no package-level state, so independent solvers coexist.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Flow     FlowConfig     `yaml:"flow"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Run      RunConfig      `yaml:"run"`

	// CustomShape overrides Obstacle when non-nil.
	CustomShape Shape `yaml:"-"`
}

// NewGridConfig creates a GridConfig from extents.
func NewGridConfig(nx, ny int) GridConfig {
	return GridConfig{NX: nx, NY: ny}
}

// NewFlowConfig creates a FlowConfig from Reynolds number, inlet speed, and
// perturbation amplitude.
func NewFlowConfig(re, inlet, perturbation float64) FlowConfig {
	return FlowConfig{Reynolds: re, InletVelocity: inlet, Perturbation: perturbation}
}

// NewRunConfig creates a RunConfig from loop parameters.
func NewRunConfig(maxIter, reportEvery, workers int) RunConfig {
	return RunConfig{MaxIter: maxIter, ReportEvery: reportEvery, Workers: workers}
}

// DefaultConfig returns the reference case: Re=220 flow around an elliptical
// cylinder in a 420×180 channel, 30000 iterations, reporting every 100.
func DefaultConfig() Config {
	nx, ny := 420, 180
	r := float64(ny) / 9
	return Config{
		Grid: NewGridConfig(nx, ny),
		Flow: NewFlowConfig(220.0, 0.04, 1e-4),
		Obstacle: ObstacleConfig{
			Shape:   ShapeEllipse,
			CenterX: float64(nx) / 4,
			CenterY: float64(ny) / 2,
			Radius:  r,
		},
		Run: NewRunConfig(30000, 100, 0),
	}
}

// Viscosity returns the lattice viscosity ν = u·R/Re derived from the inlet
// speed, the obstacle radius, and the Reynolds number.
func (c Config) Viscosity() float64 {
	return c.Flow.InletVelocity * c.Obstacle.Radius / c.Flow.Reynolds
}

// Omega returns the relaxation rate: the explicit Flow.Omega when set,
// otherwise the BGK rate ω = 1/(3ν + 0.5) derived from the viscosity.
func (c Config) Omega() float64 {
	if c.Flow.Omega != 0 {
		return c.Flow.Omega
	}
	return 1.0 / (3.0*c.Viscosity() + 0.5)
}

// workers resolves the configured worker count, defaulting to the CPU count.
func (c Config) workers() int {
	if c.Run.Workers > 0 {
		return c.Run.Workers
	}
	return runtime.NumCPU()
}

// Validate rejects configurations that would fail mid-run: non-positive
// extents, an inlet speed at or past the lattice limit, and a relaxation rate
// outside the stable interval. Called by NewSolver; setup errors are fatal
// before the first iteration.
func (c Config) Validate() error {
	if c.Grid.NX <= 0 || c.Grid.NY <= 0 {
		return fmt.Errorf("grid extents must be positive, got %dx%d", c.Grid.NX, c.Grid.NY)
	}
	// The outflow extrapolation reads the second-to-last column and the
	// inlet profile needs at least two rows to be a profile.
	if c.Grid.NX < 3 || c.Grid.NY < 2 {
		return fmt.Errorf("grid too small for boundary handling, got %dx%d", c.Grid.NX, c.Grid.NY)
	}
	if c.Run.MaxIter < 0 {
		return fmt.Errorf("max_iter must be non-negative, got %d", c.Run.MaxIter)
	}
	if c.Run.ReportEvery < 0 {
		return fmt.Errorf("report_every must be non-negative, got %d", c.Run.ReportEvery)
	}
	// The perturbed inlet profile peaks at u·(1+amplitude); the whole
	// profile must stay below the lattice speed limit.
	peak := math.Abs(c.Flow.InletVelocity) * (1 + math.Abs(c.Flow.Perturbation))
	if peak >= 1 || math.IsNaN(peak) {
		return fmt.Errorf("%w: |inlet velocity| %g reaches the lattice speed limit",
			ErrInletVelocityOutOfRange, peak)
	}
	omega := c.Omega()
	if !(omega > 0 && omega < 2) || math.IsNaN(omega) {
		return fmt.Errorf("%w: omega %g derived from Re=%g, u=%g, R=%g",
			ErrInvalidRelaxationParameter, omega, c.Flow.Reynolds,
			c.Flow.InletVelocity, c.Obstacle.Radius)
	}
	if c.CustomShape == nil {
		if _, err := c.shape(); err != nil {
			return err
		}
	}
	return nil
}
