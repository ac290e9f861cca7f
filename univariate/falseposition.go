package univariate

import (
	"errors"

	"github.com/jubranakram/root-finding-algorithms/common"
)

// FalsePosition finds a root by linear interpolation between the bracket
// endpoints: the next estimate is where the secant line through
// (lb, f(lb)) and (ub, f(ub)) crosses zero. The bracket-narrowing logic
// matches Bisection. One endpoint can stay fixed across many iterations,
// which slows convergence compared to bisection on skewed functions; that
// is inherent to the method
type FalsePosition struct {
	// Lower and Upper are the initial bracket. Lower must not exceed Upper
	Lower float64
	Upper float64

	f Objective

	lb  float64
	ub  float64
	flb float64
	fub float64
}

func NewFalsePosition(lower, upper float64) *FalsePosition {
	return &FalsePosition{Lower: lower, Upper: upper}
}

func (fp *FalsePosition) Init(f Objective) error {
	if fp.Lower > fp.Upper {
		return errors.New("falseposition: lower bound above upper bound")
	}
	fp.f = f

	fp.lb = fp.Lower
	fp.ub = fp.Upper
	fp.flb = f.Obj(fp.lb)
	fp.fub = f.Obj(fp.ub)
	return nil
}

func (fp *FalsePosition) Iterate() (loc, obj float64, nFunEvals int, err error) {
	if fp.flb == fp.fub {
		return fp.ub, fp.fub, 0, ErrZeroDenominator
	}
	xr := fp.ub - fp.fub*(fp.lb-fp.ub)/(fp.flb-fp.fub)
	fxr := fp.f.Obj(xr)

	switch {
	case fp.flb*fxr < 0:
		fp.ub = xr
		fp.fub = fxr
	case fp.fub*fxr < 0:
		fp.lb = xr
		fp.flb = fxr
	}
	return xr, fxr, 1, nil
}

func (fp *FalsePosition) Status() common.Status {
	if fp.lb > fp.ub {
		return common.BracketLost
	}
	return common.Continue
}

func (fp *FalsePosition) Result() {}
