package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeflow/latticeflow/lbm"
)

func writeCase(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadCase_FullCase(t *testing.T) {
	path := writeCase(t, `
grid:
  nx: 210
  ny: 90
flow:
  reynolds: 150.0
  inlet_velocity: 0.03
obstacle:
  shape: cylinder
  center_x: 52
  center_y: 45
  radius: 10
run:
  max_iter: 5000
  report_every: 50
`)
	cfg, err := LoadCase(path)
	require.NoError(t, err)
	assert.Equal(t, 210, cfg.Grid.NX)
	assert.Equal(t, 90, cfg.Grid.NY)
	assert.Equal(t, 150.0, cfg.Flow.Reynolds)
	assert.Equal(t, 0.03, cfg.Flow.InletVelocity)
	assert.Equal(t, lbm.ShapeCylinder, cfg.Obstacle.Shape)
	assert.Equal(t, 5000, cfg.Run.MaxIter)
	assert.Equal(t, 50, cfg.Run.ReportEvery)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCase_PartialCaseKeepsDefaults(t *testing.T) {
	path := writeCase(t, `
flow:
  reynolds: 100.0
`)
	cfg, err := LoadCase(path)
	require.NoError(t, err)
	def := lbm.DefaultConfig()
	assert.Equal(t, 100.0, cfg.Flow.Reynolds)
	assert.Equal(t, def.Grid, cfg.Grid)
	assert.Equal(t, def.Run, cfg.Run)
	assert.Equal(t, def.Obstacle, cfg.Obstacle)
}

func TestLoadCase_ShippedReferenceCaseMatchesDefaults(t *testing.T) {
	cfg, err := LoadCase(filepath.Join("..", "cases", "cylinder.yaml"))
	require.NoError(t, err)
	assert.Equal(t, lbm.DefaultConfig(), cfg)
}

func TestLoadCase_MissingFile(t *testing.T) {
	_, err := LoadCase(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCase_Malformed(t *testing.T) {
	path := writeCase(t, "grid: [not a mapping")
	_, err := LoadCase(path)
	assert.Error(t, err)
}
