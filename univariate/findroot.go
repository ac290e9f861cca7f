package univariate

import (
	"errors"

	"github.com/jubranakram/root-finding-algorithms/common"
)

var (
	// ErrZeroDenominator is returned when an interpolation step would
	// divide by zero because the function values at the two interpolation
	// points are equal
	ErrZeroDenominator = errors.New("univariate: interpolation denominator is zero")

	// ErrZeroDerivative is returned by Newton-Raphson when the derivative
	// vanishes at the current iterate
	ErrZeroDerivative = errors.New("univariate: derivative is zero at iterate")
)

// Refiner represents a derivative-free root refinement method. Initial
// data (a bracket or guesses) is supplied when the refiner is constructed
type Refiner interface {
	Init(f Objective) error
	Status() common.Status
	// The loc and obj are what are passed to the convergence check
	Iterate() (loc float64, obj float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// DerivRefiner represents a refinement method that uses the derivative
// of the target function
type DerivRefiner interface {
	Init(f ObjDeriver) error
	Status() common.Status
	// The loc and obj are what are passed to the convergence check
	Iterate() (loc float64, obj float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// Wrapper is a convenience wrapper around a derivative-free refiner that
// allows more fine-grained control over the search progress. See FindRoot
// for example usage
type Wrapper struct {
	refiner Refiner
	helper  *Helper
}

func NewWrapper(refiner Refiner) *Wrapper {
	return &Wrapper{
		refiner: refiner,
		helper:  NewHelper(),
	}
}

func (w *Wrapper) Init(settings *Settings, fun Objective) error {
	w.helper.Init(settings, fun)
	return w.refiner.Init(fun)
}

func (w *Wrapper) Status() common.Status {
	return common.CheckStatus(w.helper, w.refiner)
}

func (w *Wrapper) Iterate() (loc, obj float64, err error) {
	var nFunEvals int
	loc, obj, nFunEvals, err = w.refiner.Iterate()
	if err != nil {
		return loc, obj, err
	}
	w.helper.Iterate(loc, obj, nFunEvals)
	return loc, obj, nil
}

func (w *Wrapper) Result(status common.Status) *Result {
	w.refiner.Result()
	return w.helper.Result(status)
}

// FindRoot runs a derivative-free refiner until it converges on a root or
// a termination limit trips.
//
// A convergence failure is not an error: the returned Result carries a
// negative Status (MaximumIterations and so on) and a nil error. A non-nil
// error means the refiner hit undefined arithmetic, such as
// ErrZeroDenominator, or rejected its initial data
func FindRoot(f Objective, settings *Settings, refiner Refiner) (*Result, error) {
	if refiner == nil {
		panic("univariate: no refiner provided")
	}

	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewWrapper(refiner)

	if err := wrapper.Init(settings, f); err != nil {
		return nil, err
	}

	var status common.Status
	for {
		// Check if it has converged
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		if _, _, err := wrapper.Iterate(); err != nil {
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}

// DerivWrapper is a convenience wrapper around a derivative-based refiner
// that allows more fine-grained control over the search progress. See
// FindRootDeriv for example usage
type DerivWrapper struct {
	refiner DerivRefiner
	helper  *Helper
}

func NewDerivWrapper(refiner DerivRefiner) *DerivWrapper {
	return &DerivWrapper{
		refiner: refiner,
		helper:  NewHelper(),
	}
}

func (w *DerivWrapper) Init(settings *Settings, fun ObjDeriver) error {
	w.helper.Init(settings, fun)
	return w.refiner.Init(fun)
}

func (w *DerivWrapper) Status() common.Status {
	return common.CheckStatus(w.helper, w.refiner)
}

func (w *DerivWrapper) Iterate() (loc, obj float64, err error) {
	var nFunEvals int
	loc, obj, nFunEvals, err = w.refiner.Iterate()
	if err != nil {
		return loc, obj, err
	}
	w.helper.Iterate(loc, obj, nFunEvals)
	return loc, obj, nil
}

func (w *DerivWrapper) Result(status common.Status) *Result {
	w.refiner.Result()
	return w.helper.Result(status)
}

// FindRootDeriv runs a derivative-based refiner until it converges on a
// root or a termination limit trips. The error contract matches FindRoot,
// with ErrZeroDerivative reported when the derivative vanishes at an
// iterate
func FindRootDeriv(f ObjDeriver, settings *Settings, refiner DerivRefiner) (*Result, error) {
	if refiner == nil {
		panic("univariate: no refiner provided")
	}

	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewDerivWrapper(refiner)

	if err := wrapper.Init(settings, f); err != nil {
		return nil, err
	}

	var status common.Status
	for {
		// Check if it has converged
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		if _, _, err := wrapper.Iterate(); err != nil {
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}
