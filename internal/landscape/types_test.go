package landscape

import (
	"errors"
	"math"
	"testing"
)

func TestCoordsClone(t *testing.T) {
	x := Coords{1, 2, 3}
	y := x.Clone()
	y[0] = 100

	if x[0] != 1 {
		t.Errorf("Clone should not share backing array, got x[0]=%f", x[0])
	}
}

func TestCoordsNorm(t *testing.T) {
	x := Coords{3, 4}
	if n := x.Norm(); math.Abs(n-5) > 1e-12 {
		t.Errorf("expected norm 5, got %f", n)
	}

	var empty Coords
	if n := empty.Norm(); n != 0 {
		t.Errorf("expected zero norm for empty coords, got %f", n)
	}
}

func TestCoordsRMS(t *testing.T) {
	x := Coords{2, 2, 2, 2}
	if r := x.RMS(); math.Abs(r-2) > 1e-12 {
		t.Errorf("expected rms 2, got %f", r)
	}
}

func TestCoordsDot(t *testing.T) {
	a := Coords{1, 2, 3}
	b := Coords{4, 5, 6}
	if d := a.Dot(b); d != 32 {
		t.Errorf("expected dot 32, got %f", d)
	}
}

func TestCoordsIsValid(t *testing.T) {
	if !(Coords{1, 2, 3}).IsValid() {
		t.Error("finite coords should be valid")
	}
	if (Coords{1, math.NaN()}).IsValid() {
		t.Error("NaN coords should be invalid")
	}
	if (Coords{math.Inf(1), 0}).IsValid() {
		t.Error("Inf coords should be invalid")
	}
}

func TestCheckDOF(t *testing.T) {
	if err := CheckDOF("op", Coords{1, 2}, 2); err != nil {
		t.Errorf("expected nil for matching length, got %v", err)
	}

	err := CheckDOF("op", Coords{1, 2}, 3)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}

	var evalErr *EvalError
	if !errors.As(err, &evalErr) {
		t.Fatal("expected an EvalError")
	}
	if evalErr.Want != 3 || evalErr.Got != 2 {
		t.Errorf("expected want=3 got=2, have want=%d got=%d", evalErr.Want, evalErr.Got)
	}
}
