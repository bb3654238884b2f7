package potentials

import (
	"github.com/yangxi1209/pele/internal/landscape"
)

// SumGaussian partitions the configuration into contiguous blocks of bdim
// entries and applies an independently parameterized Gaussian well to each.
// Blocks never interact: energy is the plain sum, the gradient is the
// concatenation of per-block gradients.
type SumGaussian struct {
	bdim  int
	wells []*Gaussian
}

// NewSumGaussian builds len(mean)/bdim wells, each owning its bdim-sized
// slice of mean and cov. len(mean) must equal len(cov) and be divisible
// by bdim.
func NewSumGaussian(bdim int, mean, cov []float64) (*SumGaussian, error) {
	if bdim <= 0 {
		return nil, &landscape.EvalError{
			Op: "potentials.NewSumGaussian", Wrapped: landscape.ErrInvalidParameter,
		}
	}
	if len(mean) != len(cov) {
		return nil, &landscape.EvalError{
			Op: "potentials.NewSumGaussian", Want: len(mean), Got: len(cov),
			Wrapped: landscape.ErrDimensionMismatch,
		}
	}
	if len(mean)%bdim != 0 {
		return nil, &landscape.EvalError{
			Op: "potentials.NewSumGaussian", Want: bdim, Got: len(mean),
			Wrapped: landscape.ErrInvalidParameter,
		}
	}

	npot := len(mean) / bdim
	wells := make([]*Gaussian, 0, npot)
	for k := 0; k < npot; k++ {
		lo, hi := k*bdim, (k+1)*bdim
		w, err := NewGaussian(mean[lo:hi], cov[lo:hi])
		if err != nil {
			return nil, err
		}
		wells = append(wells, w)
	}
	return &SumGaussian{bdim: bdim, wells: wells}, nil
}

func (s *SumGaussian) NumDOF() int { return s.bdim * len(s.wells) }

// NumWells reports the number of independent blocks.
func (s *SumGaussian) NumWells() int { return len(s.wells) }

func (s *SumGaussian) Energy(x landscape.Coords) (float64, error) {
	if err := landscape.CheckDOF("SumGaussian.Energy", x, s.NumDOF()); err != nil {
		return 0, err
	}
	total := 0.0
	for k, w := range s.wells {
		e, err := w.Energy(x[k*s.bdim : (k+1)*s.bdim])
		if err != nil {
			return 0, err
		}
		total += e
	}
	return total, nil
}

func (s *SumGaussian) EnergyGradient(x, grad landscape.Coords) (float64, error) {
	if err := landscape.CheckDOF("SumGaussian.EnergyGradient", x, s.NumDOF()); err != nil {
		return 0, err
	}
	if err := landscape.CheckDOF("SumGaussian.EnergyGradient", grad, s.NumDOF()); err != nil {
		return 0, err
	}
	total := 0.0
	for k, w := range s.wells {
		lo, hi := k*s.bdim, (k+1)*s.bdim
		e, err := w.EnergyGradient(x[lo:hi], grad[lo:hi])
		if err != nil {
			return 0, err
		}
		total += e
	}
	return total, nil
}
