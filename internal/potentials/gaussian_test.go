package potentials

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangxi1209/pele/internal/landscape"
)

func unitGaussian(t *testing.T, ndof int) *Gaussian {
	t.Helper()
	mean := make([]float64, ndof)
	cov := make([]float64, ndof)
	for i := range cov {
		cov[i] = 1
	}
	g, err := NewGaussian(mean, cov)
	require.NoError(t, err)
	return g
}

func TestGaussianEnergyAtMean(t *testing.T) {
	g := unitGaussian(t, 4)

	e, err := g.Energy(landscape.Coords{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, -1.0, e)
}

func TestGaussianEnergyKnownValues(t *testing.T) {
	tests := []struct {
		x landscape.Coords
		e float64
	}{
		{landscape.Coords{0, 0, 0, 0}, -1},
		{landscape.Coords{1, 1, 1, 1}, -0.1353352832366127},
		{landscape.Coords{2, 2, 2, 2}, -0.0003354626279025118},
		{landscape.Coords{1, 2, 3, 4}, -3.059023205018258e-7},
	}

	g := unitGaussian(t, 4)
	for _, tt := range tests {
		e, err := g.Energy(tt.x)
		require.NoError(t, err)
		assert.InDelta(t, tt.e, e, math.Abs(tt.e)*1e-14, "energy at %v", tt.x)
	}
}

func TestGaussianGradientZeroAtMean(t *testing.T) {
	g := unitGaussian(t, 4)

	grad := landscape.Coords{42, 42, 42, 42}
	e, err := g.EnergyGradient(landscape.Coords{0, 0, 0, 0}, grad)
	require.NoError(t, err)
	assert.Equal(t, -1.0, e)
	for i, v := range grad {
		assert.Zero(t, v, "grad[%d]", i)
	}
}

func TestGaussianGradientMatchesNumerical(t *testing.T) {
	mean := []float64{0.5, -1.0, 2.0}
	cov := []float64{1.0, 2.0, 0.5}
	g, err := NewGaussian(mean, cov)
	require.NoError(t, err)

	x := landscape.Coords{1.0, 0.0, 1.5}
	grad := make(landscape.Coords, 3)
	num := make(landscape.Coords, 3)

	_, err = g.EnergyGradient(x, grad)
	require.NoError(t, err)
	require.NoError(t, landscape.NumericalGradient(g, x, 1e-6, num))

	for i := range grad {
		assert.InDelta(t, num[i], grad[i], 1e-6, "component %d", i)
	}
}

func TestGaussianHessianAtMean(t *testing.T) {
	mean := []float64{0, 0}
	cov := []float64{2.0, 0.5}
	g, err := NewGaussian(mean, cov)
	require.NoError(t, err)

	grad := make(landscape.Coords, 2)
	hess := make(landscape.Coords, 4)
	e, err := g.EnergyGradientHessian(landscape.Coords{0, 0}, grad, hess)
	require.NoError(t, err)
	assert.Equal(t, -1.0, e)

	// At the mean the Hessian is diag(1/cov_i), positive definite.
	assert.InDelta(t, 0.5, hess[0], 1e-12)
	assert.InDelta(t, 0.0, hess[1], 1e-12)
	assert.InDelta(t, 0.0, hess[2], 1e-12)
	assert.InDelta(t, 2.0, hess[3], 1e-12)
}

func TestGaussianEnergyIdempotent(t *testing.T) {
	g := unitGaussian(t, 4)
	x := landscape.Coords{0.3, -0.7, 1.1, 0.2}

	e1, err := g.Energy(x)
	require.NoError(t, err)
	e2, err := g.Energy(x)
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
}

func TestGaussianDimensionMismatch(t *testing.T) {
	g := unitGaussian(t, 4)

	_, err := g.Energy(landscape.Coords{1, 2})
	assert.True(t, errors.Is(err, landscape.ErrDimensionMismatch))

	grad := make(landscape.Coords, 2)
	_, err = g.EnergyGradient(landscape.Coords{1, 2, 3, 4}, grad)
	assert.True(t, errors.Is(err, landscape.ErrDimensionMismatch))
}

func TestNewGaussianValidation(t *testing.T) {
	_, err := NewGaussian([]float64{0, 0}, []float64{1})
	assert.True(t, errors.Is(err, landscape.ErrDimensionMismatch))

	_, err = NewGaussian([]float64{0, 0}, []float64{1, 0})
	assert.True(t, errors.Is(err, landscape.ErrInvalidParameter))

	_, err = NewGaussian([]float64{0, 0}, []float64{1, -2})
	assert.True(t, errors.Is(err, landscape.ErrInvalidParameter))
}

func TestGaussianDoesNotAliasParameters(t *testing.T) {
	mean := []float64{1, 2}
	cov := []float64{1, 1}
	g, err := NewGaussian(mean, cov)
	require.NoError(t, err)

	mean[0] = 100
	e, err := g.Energy(landscape.Coords{1, 2})
	require.NoError(t, err)
	assert.Equal(t, -1.0, e)
}
