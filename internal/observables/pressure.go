// Package observables derives physical quantities from a potential and a
// configuration.
package observables

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yangxi1209/pele/internal/landscape"
)

// PressureTensor computes the configurational (virial) pressure tensor of
// x treated as len(x)/ndim particles in ndim dimensions:
//
//	t_ab = (1/V) Σ_i x_i[a] * f_i[b],  f = -∇E
//
// The scalar pressure is Trace(t)/ndim. Both vanish at any stationary
// point of the potential.
//
// Fails with ErrDimensionMismatch when len(x) is not a multiple of ndim
// and with ErrInvalidParameter when volume or ndim is non-positive.
func PressureTensor(p landscape.Potential, x landscape.Coords, volume float64, ndim int) (float64, *mat.Dense, error) {
	if ndim <= 0 || volume <= 0 {
		return 0, nil, &landscape.EvalError{
			Op: "observables.PressureTensor", Wrapped: landscape.ErrInvalidParameter,
		}
	}
	if len(x)%ndim != 0 {
		return 0, nil, &landscape.EvalError{
			Op: "observables.PressureTensor", Want: ndim, Got: len(x),
			Wrapped: landscape.ErrDimensionMismatch,
		}
	}

	grad := make(landscape.Coords, p.NumDOF())
	if _, err := p.EnergyGradient(x, grad); err != nil {
		return 0, nil, err
	}

	t := mat.NewDense(ndim, ndim, nil)
	nPart := len(x) / ndim
	for i := 0; i < nPart; i++ {
		for a := 0; a < ndim; a++ {
			for b := 0; b < ndim; b++ {
				// force = -gradient
				v := t.At(a, b) - x[i*ndim+a]*grad[i*ndim+b]
				t.Set(a, b, v)
			}
		}
	}
	t.Scale(1/volume, t)

	pressure := mat.Trace(t) / float64(ndim)
	return pressure, t, nil
}
