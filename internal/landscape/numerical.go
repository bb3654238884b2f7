package landscape

// NumericalGradient writes the central-difference gradient of p at x into
// grad. It is a cross-check for analytic gradients, not a substitute: two
// energy calls per degree of freedom.
func NumericalGradient(p Potential, x Coords, eps float64, grad Coords) error {
	if err := CheckDOF("landscape.NumericalGradient", x, p.NumDOF()); err != nil {
		return err
	}
	if err := CheckDOF("landscape.NumericalGradient", grad, p.NumDOF()); err != nil {
		return err
	}
	if eps <= 0 {
		return &EvalError{Op: "landscape.NumericalGradient", Wrapped: ErrInvalidParameter}
	}

	xw := x.Clone()
	for i := range xw {
		orig := xw[i]

		xw[i] = orig + eps
		ePlus, err := p.Energy(xw)
		if err != nil {
			return err
		}

		xw[i] = orig - eps
		eMinus, err := p.Energy(xw)
		if err != nil {
			return err
		}

		xw[i] = orig
		grad[i] = (ePlus - eMinus) / (2 * eps)
	}
	return nil
}
