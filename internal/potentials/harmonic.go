package potentials

import (
	"github.com/yangxi1209/pele/internal/landscape"
)

// Harmonic is an isotropic spring about an origin: E = k/2 |x - x0|².
// Its gradient k(x-x0) and constant Hessian k·I make it the analytic
// reference case for the virial pressure tensor.
type Harmonic struct {
	origin landscape.Coords
	k      float64
}

func NewHarmonic(origin []float64, k float64) (*Harmonic, error) {
	if k <= 0 {
		return nil, &landscape.EvalError{
			Op: "potentials.NewHarmonic", Wrapped: landscape.ErrInvalidParameter,
		}
	}
	return &Harmonic{origin: landscape.Coords(origin).Clone(), k: k}, nil
}

func (h *Harmonic) NumDOF() int { return len(h.origin) }

func (h *Harmonic) Energy(x landscape.Coords) (float64, error) {
	if err := landscape.CheckDOF("Harmonic.Energy", x, h.NumDOF()); err != nil {
		return 0, err
	}
	e := 0.0
	for i := range x {
		d := x[i] - h.origin[i]
		e += d * d
	}
	return 0.5 * h.k * e, nil
}

func (h *Harmonic) EnergyGradient(x, grad landscape.Coords) (float64, error) {
	if err := landscape.CheckDOF("Harmonic.EnergyGradient", x, h.NumDOF()); err != nil {
		return 0, err
	}
	if err := landscape.CheckDOF("Harmonic.EnergyGradient", grad, h.NumDOF()); err != nil {
		return 0, err
	}
	e := 0.0
	for i := range x {
		d := x[i] - h.origin[i]
		e += d * d
		grad[i] = h.k * d
	}
	return 0.5 * h.k * e, nil
}

func (h *Harmonic) EnergyGradientHessian(x, grad, hess landscape.Coords) (float64, error) {
	n := h.NumDOF()
	if err := landscape.CheckDOF("Harmonic.EnergyGradientHessian", hess, n*n); err != nil {
		return 0, err
	}
	e, err := h.EnergyGradient(x, grad)
	if err != nil {
		return 0, err
	}
	hess.Fill(0)
	for i := 0; i < n; i++ {
		hess[i*n+i] = h.k
	}
	return e, nil
}
