package lbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarField_RoundTrip(t *testing.T) {
	f := NewScalarField(4, 3)
	f.Set(2, 1, 7.5)
	assert.Equal(t, 7.5, f.At(2, 1))
	assert.Equal(t, 7.5, f.Data[2*3+1])
}

func TestScalarField_Fill(t *testing.T) {
	f := NewScalarField(3, 3)
	f.Fill(1)
	for _, v := range f.Data {
		assert.Equal(t, 1.0, v)
	}
}

func TestPopulations_IdxLayout(t *testing.T) {
	p := NewPopulations(4, 3)
	p.Set(8, 3, 2, 0.25)
	assert.Equal(t, 0.25, p.At(8, 3, 2))
	assert.Equal(t, len(p.Data)-1, p.Idx(8, 3, 2))
	// direction slices are contiguous blocks of nx*ny
	assert.Equal(t, 4*3, p.Idx(1, 0, 0))
}
