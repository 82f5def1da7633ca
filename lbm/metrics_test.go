package lbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalMass(t *testing.T) {
	f := NewPopulations(2, 2)
	for k := range f.Data {
		f.Data[k] = 0.5
	}
	assert.InDelta(t, 0.5*9*2*2, TotalMass(f), 1e-12)
}

func TestSpeedVariance(t *testing.T) {
	u := NewVectorField(4, 2)
	// columns 0-1 uniform, columns 2-3 varied
	for y := 0; y < 2; y++ {
		u.X.Set(0, y, 0.04)
		u.X.Set(1, y, 0.04)
	}
	u.X.Set(2, 0, 0.01)
	u.X.Set(2, 1, 0.08)
	u.X.Set(3, 0, 0.0)
	u.X.Set(3, 1, 0.1)

	assert.Equal(t, 0.0, SpeedVariance(u, 0, 2))
	assert.Greater(t, SpeedVariance(u, 2, 4), 0.0)
}
