// Package render turns solver snapshots into velocity-magnitude heatmap PNGs,
// one file per reporting tick. It implements lbm.Probe and is entirely
// downstream of the solve: rendering failures are logged, never propagated
// into the solver.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/latticeflow/latticeflow/lbm"
)

// Heatmap writes one velocity-magnitude PNG per Report call into a directory,
// with zero-padded frame numbers (vel.0000.png, vel.0001.png, ...) so the
// sequence muxes directly into a video with ffmpeg.
type Heatmap struct {
	outputDir string
	frame     int
}

// NewHeatmap creates the output directory and returns a ready plotter.
func NewHeatmap(outputDir string) (*Heatmap, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Heatmap{outputDir: outputDir}, nil
}

// Report renders |u| for the current snapshot. Implements lbm.Probe.
func (h *Heatmap) Report(iteration int, rho *lbm.ScalarField, u *lbm.VectorField) {
	name := filepath.Join(h.outputDir, fmt.Sprintf("vel.%04d.png", h.frame))
	h.frame++

	if err := h.save(name, iteration, u); err != nil {
		logrus.Errorf("render frame %s: %v", name, err)
	}
}

func (h *Heatmap) save(name string, iteration int, u *lbm.VectorField) error {
	grid := newSpeedGrid(u)
	pal := moreland.SmoothBlueRed().Palette(255)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("iteration = %d", iteration)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewHeatMap(grid, pal))

	aspect := float64(u.X.NY) / float64(u.X.NX)
	w := 8 * vg.Inch
	return p.Save(w, vg.Length(float64(w)*aspect), name)
}

// speedGrid adapts a velocity field to plotter.GridXYZ, exposing |u| per cell.
type speedGrid struct {
	u *lbm.VectorField
}

func newSpeedGrid(u *lbm.VectorField) speedGrid {
	return speedGrid{u: u}
}

func (g speedGrid) Dims() (int, int) { return g.u.X.NX, g.u.X.NY }
func (g speedGrid) X(c int) float64  { return float64(c) }
func (g speedGrid) Y(r int) float64  { return float64(r) }

func (g speedGrid) Z(c, r int) float64 {
	ux := g.u.X.At(c, r)
	uy := g.u.Y.At(c, r)
	return math.Sqrt(ux*ux + uy*uy)
}
