package landscape

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Coords is a configuration vector: one entry per degree of freedom.
// A raw []float64 converts without copying; Clone copies.
type Coords []float64

func (c Coords) Clone() Coords {
	out := make(Coords, len(c))
	copy(out, c)
	return out
}

func (c Coords) IsValid() bool {
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm.
func (c Coords) Norm() float64 {
	if len(c) == 0 {
		return 0
	}
	return floats.Norm(c, 2)
}

// RMS returns the root-mean-square magnitude, the convergence measure
// used by the minimizers.
func (c Coords) RMS() float64 {
	if len(c) == 0 {
		return 0
	}
	return c.Norm() / math.Sqrt(float64(len(c)))
}

func (c Coords) Dot(other Coords) float64 {
	return floats.Dot(c, other)
}

func (c Coords) Fill(v float64) {
	for i := range c {
		c[i] = v
	}
}

// Potential maps a configuration to a scalar energy and its analytic
// gradient. Implementations are pure functions of x: repeated evaluation
// with identical input yields bit-identical results.
type Potential interface {
	// Energy returns the energy of x. Fails with ErrDimensionMismatch
	// when len(x) != NumDOF().
	Energy(x Coords) (float64, error)

	// EnergyGradient returns the energy and writes dE/dx into grad,
	// which must be pre-allocated with length NumDOF().
	EnergyGradient(x Coords, grad Coords) (float64, error)

	// NumDOF reports the expected configuration length.
	NumDOF() int
}

// Hessian is implemented by potentials with analytic second derivatives.
// hess is flattened row-major, length NumDOF()*NumDOF().
type Hessian interface {
	EnergyGradientHessian(x Coords, grad Coords, hess Coords) (float64, error)
}
