// Package roots provides classical single-variable root-finding
// algorithms: an incremental-search scanner that brackets sign changes of
// a continuous function, and five refinement methods that converge on a
// root estimate from a bracket or initial guesses.
//
// The functions in this package accept plain closures and defaulted
// settings. The underlying machinery lives in the bracket and univariate
// subpackages, where each method is a reusable value with fine-grained
// control over the search loop.
//
// Every search ends in one of two distinct ways: a *univariate.Result
// whose Status reports either convergence (positive) or a failure to
// converge within the limits (negative), or a non-nil error for true
// precondition violations such as a vanishing derivative or a zero
// interpolation denominator. Running out of iterations is a normal
// outcome, not an error.
//
// Basic usage, bracketing the roots of a quadratic and refining them:
//
//	f := func(x float64) float64 { return x*x - 7*x + 10 }
//
//	n, intervals, err := roots.IncrementalSearch(f, -4, 8, 0.8)
//	if err != nil {
//		// non-positive increment
//	}
//	for _, iv := range intervals[:n] {
//		res, err := roots.Bisection(f, iv.Lower, iv.Upper, nil)
//		if err == nil && res.Status.Converged() {
//			fmt.Printf("root near %.3f\n", res.Root)
//		}
//	}
package roots

import (
	"github.com/jubranakram/root-finding-algorithms/bracket"
	"github.com/jubranakram/root-finding-algorithms/univariate"
)

// IncrementalSearch scans [lb, ub] in steps of incrementLength and returns
// the count and scan-ordered list of intervals bracketing a sign change or
// an exact zero of f. It returns bracket.ErrNonPositiveStep if
// incrementLength is not positive
func IncrementalSearch(f func(float64) float64, lb, ub, incrementLength float64) (int, []bracket.Interval, error) {
	return bracket.IncrementalSearch(univariate.ObjectiveFunc(f), lb, ub, incrementLength)
}

// Bisection finds a root of f inside the bracket [lb, ub] by interval
// halving. A nil settings runs with univariate.DefaultSettings
func Bisection(f func(float64) float64, lb, ub float64, settings *univariate.Settings) (*univariate.Result, error) {
	return univariate.FindRoot(univariate.ObjectiveFunc(f), settings, univariate.NewBisection(lb, ub))
}

// FalsePosition finds a root of f inside the bracket [lb, ub] by linear
// interpolation between the endpoints. A nil settings runs with
// univariate.DefaultSettings
func FalsePosition(f func(float64) float64, lb, ub float64, settings *univariate.Settings) (*univariate.Result, error) {
	return univariate.FindRoot(univariate.ObjectiveFunc(f), settings, univariate.NewFalsePosition(lb, ub))
}

// NewtonRaphson finds a root of f from the initial guess x0 using its
// derivative fder. A nil settings runs with univariate.DefaultSettings
func NewtonRaphson(f, fder func(float64) float64, x0 float64, settings *univariate.Settings) (*univariate.Result, error) {
	return univariate.FindRootDeriv(univariate.DerivFunc{F: f, FDer: fder}, settings, univariate.NewNewtonRaphson(x0))
}

// Secant finds a root of f from the two initial guesses x0 and x1. A nil
// settings runs with univariate.DefaultSettings
func Secant(f func(float64) float64, x0, x1 float64, settings *univariate.Settings) (*univariate.Result, error) {
	return univariate.FindRoot(univariate.ObjectiveFunc(f), settings, univariate.NewSecant(x0, x1))
}

// ModifiedSecant finds a root of f from the initial guess x0 with the
// fixed perturbation dx. The guess is not updated between iterations; see
// univariate.ModifiedSecant. A nil settings runs with
// univariate.DefaultSettings
func ModifiedSecant(f func(float64) float64, x0, dx float64, settings *univariate.Settings) (*univariate.Result, error) {
	return univariate.FindRoot(univariate.ObjectiveFunc(f), settings, univariate.NewModifiedSecant(x0, dx))
}
