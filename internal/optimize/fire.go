package optimize

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yangxi1209/pele/internal/landscape"
)

// Config tunes the modified FIRE minimizer. Zero fields are replaced by
// the corresponding DefaultConfig value, except DtStart which is required.
type Config struct {
	// DtStart is the initial integration step size.
	DtStart float64
	// DtMax caps step-size growth.
	DtMax float64
	// MaxStep bounds the per-iteration displacement norm.
	MaxStep float64
	// NMin is the number of consecutive downhill steps required before
	// the step size is allowed to grow.
	NMin int
	// FInc and FDec scale the step size up on downhill streaks and down
	// on overshoot.
	FInc float64
	FDec float64
	// AlphaStart is the initial velocity/force mixing coefficient;
	// FAlpha decays it multiplicatively on each accepted downhill step.
	AlphaStart float64
	FAlpha     float64
	// Tol is the RMS-gradient convergence threshold.
	Tol float64
}

// DefaultConfig mirrors the conventional FIRE tuning.
func DefaultConfig() Config {
	return Config{
		NMin:       5,
		FInc:       1.1,
		FDec:       0.5,
		AlphaStart: 0.1,
		FAlpha:     0.99,
		Tol:        1e-4,
	}
}

// FIRE is a velocity-augmented adaptive steepest-descent minimizer
// (Fast Inertial Relaxation Engine, modified variant). While the velocity
// stays aligned with the force it grows the step size and leans the
// velocity into the force direction; on overshoot it zeroes the velocity
// and shrinks the step.
type FIRE struct {
	pot landscape.Potential
	cfg Config

	x        landscape.Coords
	lastGood landscape.Coords
	v        landscape.Coords
	grad     landscape.Coords
	force    landscape.Coords
	dx       landscape.Coords
	energy   float64
	rms      float64

	dt     float64
	alpha  float64
	streak int
	iter   int
	status Status

	// OnIteration, when set, receives a snapshot after every evaluation.
	OnIteration func(Stats)
}

var _ Minimizer = (*FIRE)(nil)

// NewFIRE builds a minimizer for pot starting from x0, which is copied.
// cfg.DtStart must be positive; DtMax defaults to 10*DtStart and MaxStep
// to DtMax when unset.
func NewFIRE(pot landscape.Potential, x0 landscape.Coords, cfg Config) (*FIRE, error) {
	if err := landscape.CheckDOF("optimize.NewFIRE", x0, pot.NumDOF()); err != nil {
		return nil, err
	}
	if cfg.DtStart <= 0 {
		return nil, &landscape.EvalError{Op: "optimize.NewFIRE", Wrapped: landscape.ErrInvalidParameter}
	}
	def := DefaultConfig()
	if cfg.DtMax <= 0 {
		cfg.DtMax = 10 * cfg.DtStart
	}
	if cfg.MaxStep <= 0 {
		cfg.MaxStep = cfg.DtMax
	}
	if cfg.NMin <= 0 {
		cfg.NMin = def.NMin
	}
	if cfg.FInc <= 1 {
		cfg.FInc = def.FInc
	}
	if cfg.FDec <= 0 || cfg.FDec >= 1 {
		cfg.FDec = def.FDec
	}
	if cfg.AlphaStart <= 0 {
		cfg.AlphaStart = def.AlphaStart
	}
	if cfg.FAlpha <= 0 || cfg.FAlpha >= 1 {
		cfg.FAlpha = def.FAlpha
	}
	if cfg.Tol <= 0 {
		cfg.Tol = def.Tol
	}

	n := pot.NumDOF()
	return &FIRE{
		pot:    pot,
		cfg:    cfg,
		x:      x0.Clone(),
		v:      make(landscape.Coords, n),
		grad:   make(landscape.Coords, n),
		force:  make(landscape.Coords, n),
		dx:     make(landscape.Coords, n),
		dt:     cfg.DtStart,
		alpha:  cfg.AlphaStart,
		status: StatusRunning,
	}, nil
}

// Run advances at most n iterations or until the RMS gradient drops below
// Tol. It is resumable: a subsequent Run continues from the current state.
// Evaluation errors abort the run; a non-finite energy or gradient aborts
// with ErrDiverged and the configuration rolls back to the last finite
// point.
func (f *FIRE) Run(n int) error {
	if f.status == StatusConverged {
		return nil
	}
	f.status = StatusRunning

	for i := 0; i < n; i++ {
		e, err := f.pot.EnergyGradient(f.x, f.grad)
		if err != nil {
			return err
		}
		if math.IsNaN(e) || math.IsInf(e, 0) || !f.grad.IsValid() {
			// Roll back to the last finite point before surfacing the error.
			if f.lastGood != nil {
				copy(f.x, f.lastGood)
			}
			return &landscape.EvalError{Op: "FIRE.Run", Wrapped: landscape.ErrDiverged}
		}
		if f.lastGood == nil {
			f.lastGood = make(landscape.Coords, len(f.x))
		}
		copy(f.lastGood, f.x)
		f.energy = e
		f.rms = f.grad.RMS()

		if f.OnIteration != nil {
			f.OnIteration(Stats{Iter: f.iter, Energy: f.energy, RMSGrad: f.rms, Dt: f.dt, Alpha: f.alpha})
		}

		if f.rms <= f.cfg.Tol {
			f.status = StatusConverged
			return nil
		}

		f.step()
		f.iter++
	}

	f.status = StatusMaxIterations
	return nil
}

// step applies one FIRE update to x and v using the already-evaluated
// gradient.
func (f *FIRE) step() {
	for i := range f.grad {
		f.force[i] = -f.grad[i]
	}

	power := f.force.Dot(f.v)
	if power > 0 {
		if f.streak > f.cfg.NMin {
			f.dt = math.Min(f.dt*f.cfg.FInc, f.cfg.DtMax)
			f.alpha *= f.cfg.FAlpha
		}
		f.streak++

		// Lean the velocity into the force direction, preserving speed.
		vnorm := f.v.Norm()
		fnorm := f.force.Norm()
		if fnorm > 0 {
			mix := f.alpha * vnorm / fnorm
			for i := range f.v {
				f.v[i] = (1-f.alpha)*f.v[i] + mix*f.force[i]
			}
		}
	} else {
		f.v.Fill(0)
		f.dt *= f.cfg.FDec
		f.alpha = f.cfg.AlphaStart
		f.streak = 0
	}

	floats.AddScaled(f.v, f.dt, f.force)

	copy(f.dx, f.v)
	floats.Scale(f.dt, f.dx)
	if norm := f.dx.Norm(); norm > f.cfg.MaxStep {
		floats.Scale(f.cfg.MaxStep/norm, f.dx)
	}
	floats.Add(f.x, f.dx)
}

// X returns a copy of the current configuration.
func (f *FIRE) X() landscape.Coords { return f.x.Clone() }

// Energy returns the energy at the most recent evaluation.
func (f *FIRE) Energy() float64 { return f.energy }

// Gradient returns a copy of the most recent gradient.
func (f *FIRE) Gradient() landscape.Coords { return f.grad.Clone() }

func (f *FIRE) RMSGrad() float64 { return f.rms }
func (f *FIRE) Iter() int        { return f.iter }
func (f *FIRE) Status() Status   { return f.status }

func (f *FIRE) Converged() bool { return f.status == StatusConverged }

// Dt and Alpha expose the adaptive state for observers.
func (f *FIRE) Dt() float64    { return f.dt }
func (f *FIRE) Alpha() float64 { return f.alpha }
