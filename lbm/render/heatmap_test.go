package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeflow/latticeflow/lbm"
)

func TestHeatmap_WritesNumberedFrames(t *testing.T) {
	dir := t.TempDir()
	h, err := NewHeatmap(filepath.Join(dir, "frames"))
	require.NoError(t, err)

	u := lbm.NewVectorField(20, 10)
	for x := 0; x < 20; x++ {
		for y := 0; y < 10; y++ {
			u.X.Set(x, y, 0.04*float64(x)/20)
		}
	}
	rho := lbm.NewScalarField(20, 10)
	rho.Fill(1)

	h.Report(0, rho, u)
	h.Report(100, rho, u)

	for _, name := range []string{"vel.0000.png", "vel.0001.png"} {
		info, err := os.Stat(filepath.Join(dir, "frames", name))
		require.NoError(t, err, "expected frame %s", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestSpeedGrid_Adapter(t *testing.T) {
	u := lbm.NewVectorField(3, 2)
	u.X.Set(1, 1, 0.3)
	u.Y.Set(1, 1, 0.4)

	g := newSpeedGrid(u)
	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)
	assert.InDelta(t, 0.5, g.Z(1, 1), 1e-15)
	assert.Equal(t, 1.0, g.X(1))
	assert.Equal(t, 0.0, g.Z(0, 0))
}
