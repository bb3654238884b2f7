package potentials

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangxi1209/pele/internal/landscape"
)

func TestHarmonicEnergyGradient(t *testing.T) {
	h, err := NewHarmonic([]float64{1, -1}, 2.0)
	require.NoError(t, err)

	grad := make(landscape.Coords, 2)
	e, err := h.EnergyGradient(landscape.Coords{2, 0}, grad)
	require.NoError(t, err)

	// E = k/2 (1 + 1) = 2, grad = k (x - x0).
	assert.InDelta(t, 2.0, e, 1e-15)
	assert.InDelta(t, 2.0, grad[0], 1e-15)
	assert.InDelta(t, 2.0, grad[1], 1e-15)
}

func TestHarmonicZeroAtOrigin(t *testing.T) {
	h, err := NewHarmonic([]float64{0.5, 0.5, 0.5}, 1.0)
	require.NoError(t, err)

	grad := make(landscape.Coords, 3)
	e, err := h.EnergyGradient(landscape.Coords{0.5, 0.5, 0.5}, grad)
	require.NoError(t, err)
	assert.Zero(t, e)
	for i, v := range grad {
		assert.Zero(t, v, "grad[%d]", i)
	}
}

func TestHarmonicHessianIsConstant(t *testing.T) {
	h, err := NewHarmonic([]float64{0, 0}, 3.0)
	require.NoError(t, err)

	grad := make(landscape.Coords, 2)
	hess := make(landscape.Coords, 4)
	_, err = h.EnergyGradientHessian(landscape.Coords{5, -7}, grad, hess)
	require.NoError(t, err)

	assert.Equal(t, landscape.Coords{3, 0, 0, 3}, hess)
}

func TestNewHarmonicValidation(t *testing.T) {
	_, err := NewHarmonic([]float64{0}, 0)
	assert.True(t, errors.Is(err, landscape.ErrInvalidParameter))

	_, err = NewHarmonic([]float64{0}, -1)
	assert.True(t, errors.Is(err, landscape.ErrInvalidParameter))
}
