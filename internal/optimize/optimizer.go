// Package optimize provides gradient-based local minimizers for
// potential-energy surfaces.
package optimize

import (
	"github.com/yangxi1209/pele/internal/landscape"
)

// Status is the terminal condition of a minimization run.
type Status int

const (
	StatusRunning Status = iota
	StatusConverged
	StatusMaxIterations
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max iterations reached"
	}
	return "unknown"
}

// Stats is a per-iteration snapshot handed to observers.
type Stats struct {
	Iter    int
	Energy  float64
	RMSGrad float64
	Dt      float64
	Alpha   float64
}

// Minimizer drives a Potential toward a local energy minimum.
//
// Run advances at most n iterations or until convergence; exhausting the
// budget is a normal terminal state, not an error. A Minimizer owns
// mutable per-run state and must not be shared between goroutines.
type Minimizer interface {
	Run(n int) error
	X() landscape.Coords
	Energy() float64
	Gradient() landscape.Coords
	RMSGrad() float64
	Iter() int
	Status() Status
	Converged() bool
}
