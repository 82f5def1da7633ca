package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/latticeflow/latticeflow/lbm"
	"github.com/latticeflow/latticeflow/lbm/render"
)

var (
	// CLI flags for the solver configuration
	nx            int     // lattice columns
	ny            int     // lattice rows
	reynolds      float64 // Reynolds number over the obstacle radius
	inletVelocity float64 // inlet speed in lattice units
	perturbation  float64 // relative inlet perturbation amplitude
	omega         float64 // explicit relaxation rate (0 = derive from Reynolds)
	maxIter       int     // iteration bound; the loop runs maxIter+1 steps
	reportEvery   int     // reporting cadence in iterations
	workers       int     // parallel sweep workers (0 = NumCPU)
	logLevel      string  // log verbosity level

	// obstacle geometry
	obstacleShape string  // "ellipse", "cylinder", or "none"
	obstacleX     float64 // obstacle center, column
	obstacleY     float64 // obstacle center, row
	obstacleR     float64 // obstacle radius / size scale

	// reporting
	outputDir string // directory for velocity heatmap frames ("" disables)
	casePath  string // YAML case file; flags set explicitly override it
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "latticeflow",
	Short: "D2Q9 lattice-Boltzmann solver for 2D flow around an obstacle",
}

// runCmd executes the solver using parameters from the case file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the lattice-Boltzmann simulation",
	Long: `Run the lattice-Boltzmann simulation and write one velocity-magnitude
heatmap PNG per reporting interval into the output directory. The frame
sequence muxes into a video with e.g.:

  ffmpeg -framerate 24 -i out/vel.%04d.png wake.mp4`,
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := lbm.DefaultConfig()
		if casePath != "" {
			cfg, err = LoadCase(casePath)
			if err != nil {
				logrus.Fatalf("Failed to load case file: %v", err)
			}
		}
		applyFlagOverrides(cmd, &cfg)

		solver, err := lbm.NewSolver(cfg)
		if err != nil {
			logrus.Fatalf("Solver setup failed: %v", err)
		}

		if outputDir != "" {
			heatmap, err := render.NewHeatmap(outputDir)
			if err != nil {
				logrus.Fatalf("Failed to set up frame output: %v", err)
			}
			solver.SetProbe(heatmap)
		}

		// Ctrl-C stops the run between iterations.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := solver.Run(ctx); err != nil {
			solver.Metrics.Print()
			logrus.Fatalf("Run aborted: %v", err)
		}
		solver.Metrics.Print()
	},
}

// applyFlagOverrides copies every explicitly set flag over the loaded case so
// the precedence is: defaults < case file < flags.
func applyFlagOverrides(cmd *cobra.Command, cfg *lbm.Config) {
	set := func(name string, fn func()) {
		if cmd.Flags().Changed(name) {
			fn()
		}
	}
	set("nx", func() { cfg.Grid.NX = nx })
	set("ny", func() { cfg.Grid.NY = ny })
	set("reynolds", func() { cfg.Flow.Reynolds = reynolds })
	set("inlet-velocity", func() { cfg.Flow.InletVelocity = inletVelocity })
	set("perturbation", func() { cfg.Flow.Perturbation = perturbation })
	set("omega", func() { cfg.Flow.Omega = omega })
	set("max-iter", func() { cfg.Run.MaxIter = maxIter })
	set("report-every", func() { cfg.Run.ReportEvery = reportEvery })
	set("workers", func() { cfg.Run.Workers = workers })
	set("obstacle-shape", func() { cfg.Obstacle.Shape = obstacleShape })
	set("obstacle-x", func() { cfg.Obstacle.CenterX = obstacleX })
	set("obstacle-y", func() { cfg.Obstacle.CenterY = obstacleY })
	set("obstacle-radius", func() { cfg.Obstacle.Radius = obstacleR })
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	def := lbm.DefaultConfig()

	runCmd.Flags().IntVar(&nx, "nx", def.Grid.NX, "Number of lattice columns")
	runCmd.Flags().IntVar(&ny, "ny", def.Grid.NY, "Number of lattice rows")
	runCmd.Flags().Float64Var(&reynolds, "reynolds", def.Flow.Reynolds, "Reynolds number")
	runCmd.Flags().Float64Var(&inletVelocity, "inlet-velocity", def.Flow.InletVelocity, "Inlet speed in lattice units (must be < 1)")
	runCmd.Flags().Float64Var(&perturbation, "perturbation", def.Flow.Perturbation, "Relative inlet perturbation amplitude")
	runCmd.Flags().Float64Var(&omega, "omega", 0, "Explicit relaxation rate in (0,2); 0 derives it from Reynolds")
	runCmd.Flags().IntVar(&maxIter, "max-iter", def.Run.MaxIter, "Iteration bound (the loop runs max-iter+1 steps)")
	runCmd.Flags().IntVar(&reportEvery, "report-every", def.Run.ReportEvery, "Reporting cadence in iterations (0 disables)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Worker goroutines for bulk sweeps (0 = all CPUs)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&obstacleShape, "obstacle-shape", def.Obstacle.Shape, "Obstacle shape: ellipse, cylinder, none")
	runCmd.Flags().Float64Var(&obstacleX, "obstacle-x", def.Obstacle.CenterX, "Obstacle center column")
	runCmd.Flags().Float64Var(&obstacleY, "obstacle-y", def.Obstacle.CenterY, "Obstacle center row")
	runCmd.Flags().Float64Var(&obstacleR, "obstacle-radius", def.Obstacle.Radius, "Obstacle radius / size scale")

	runCmd.Flags().StringVar(&outputDir, "out", "out", "Directory for velocity heatmap frames (empty disables rendering)")
	runCmd.Flags().StringVar(&casePath, "case", "", "YAML case file (flags set explicitly override it)")

	rootCmd.AddCommand(runCmd)
}
