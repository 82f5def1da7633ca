package lbm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomPopulations fills f with positive values of equilibrium-like scale.
func randomPopulations(rng *rand.Rand, nx, ny int) *Populations {
	f := NewPopulations(nx, ny)
	for k := range f.Data {
		f.Data[k] = 0.01 + rng.Float64()
	}
	return f
}

func TestMacroscopic_MatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	nx, ny := 7, 5
	f := randomPopulations(rng, nx, ny)

	rho := NewScalarField(nx, ny)
	u := NewVectorField(nx, ny)
	Macroscopic(D2Q9, f, rho, u, 1)

	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			var sum, mx, my float64
			for i := 0; i < 9; i++ {
				fi := f.At(i, x, y)
				sum += fi
				mx += float64(D2Q9.Velocities[i][0]) * fi
				my += float64(D2Q9.Velocities[i][1]) * fi
			}
			assert.InDelta(t, sum, rho.At(x, y), 1e-14)
			assert.InDelta(t, mx/sum, u.X.At(x, y), 1e-14)
			assert.InDelta(t, my/sum, u.Y.At(x, y), 1e-14)
		}
	}
}

func TestMacroscopic_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	nx, ny := 33, 17
	f := randomPopulations(rng, nx, ny)

	rho1 := NewScalarField(nx, ny)
	u1 := NewVectorField(nx, ny)
	Macroscopic(D2Q9, f, rho1, u1, 1)

	rho8 := NewScalarField(nx, ny)
	u8 := NewVectorField(nx, ny)
	Macroscopic(D2Q9, f, rho8, u8, 8)

	assert.Equal(t, rho1.Data, rho8.Data)
	assert.Equal(t, u1.X.Data, u8.X.Data)
	assert.Equal(t, u1.Y.Data, u8.Y.Data)
}
