package potentials

import (
	"math"

	"github.com/yangxi1209/pele/internal/landscape"
)

// Gaussian is an attractive anisotropic well with diagonal covariance:
//
//	E(x) = -exp(-1/2 Σ (x_i - mean_i)² / cov_i)
//
// E(mean) = -1 exactly and E → 0 far from the mean. The well depth is
// fixed; cov sets the width along each axis.
type Gaussian struct {
	mean landscape.Coords
	cov  landscape.Coords
}

// NewGaussian builds a well centered at mean with per-axis variances cov.
// mean and cov must have equal length and every variance must be strictly
// positive.
func NewGaussian(mean, cov []float64) (*Gaussian, error) {
	if len(mean) != len(cov) {
		return nil, &landscape.EvalError{
			Op: "potentials.NewGaussian", Want: len(mean), Got: len(cov),
			Wrapped: landscape.ErrDimensionMismatch,
		}
	}
	for _, v := range cov {
		if v <= 0 {
			return nil, &landscape.EvalError{
				Op: "potentials.NewGaussian", Wrapped: landscape.ErrInvalidParameter,
			}
		}
	}
	return &Gaussian{
		mean: landscape.Coords(mean).Clone(),
		cov:  landscape.Coords(cov).Clone(),
	}, nil
}

func (g *Gaussian) NumDOF() int { return len(g.mean) }

// Mean returns a copy of the well center.
func (g *Gaussian) Mean() landscape.Coords { return g.mean.Clone() }

func (g *Gaussian) Energy(x landscape.Coords) (float64, error) {
	if err := landscape.CheckDOF("Gaussian.Energy", x, g.NumDOF()); err != nil {
		return 0, err
	}
	return g.energy(x), nil
}

func (g *Gaussian) EnergyGradient(x, grad landscape.Coords) (float64, error) {
	if err := landscape.CheckDOF("Gaussian.EnergyGradient", x, g.NumDOF()); err != nil {
		return 0, err
	}
	if err := landscape.CheckDOF("Gaussian.EnergyGradient", grad, g.NumDOF()); err != nil {
		return 0, err
	}
	e := g.energy(x)
	for i := range x {
		grad[i] = -e * (x[i] - g.mean[i]) / g.cov[i]
	}
	return e, nil
}

// EnergyGradientHessian additionally writes the analytic Hessian
//
//	h_ij = -E(x) (δ_ij/cov_i - (x_i-mean_i)(x_j-mean_j)/(cov_i cov_j))
//
// into hess, flattened row-major.
func (g *Gaussian) EnergyGradientHessian(x, grad, hess landscape.Coords) (float64, error) {
	n := g.NumDOF()
	if err := landscape.CheckDOF("Gaussian.EnergyGradientHessian", hess, n*n); err != nil {
		return 0, err
	}
	e, err := g.EnergyGradient(x, grad)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		di := (x[i] - g.mean[i]) / g.cov[i]
		for j := 0; j < n; j++ {
			dj := (x[j] - g.mean[j]) / g.cov[j]
			h := e * di * dj
			if i == j {
				h -= e / g.cov[i]
			}
			hess[i*n+j] = h
		}
	}
	return e, nil
}

func (g *Gaussian) energy(x landscape.Coords) float64 {
	arg := 0.0
	for i := range x {
		d := x[i] - g.mean[i]
		arg += d * d / g.cov[i]
	}
	return -math.Exp(-0.5 * arg)
}
