package univariate

import (
	"errors"

	"github.com/jubranakram/root-finding-algorithms/common"
)

// Bisection finds a root by repeatedly halving a bracketing interval and
// keeping the half whose endpoints straddle a sign change. Convergence is
// guaranteed only if the initial bracket truly contains a sign change;
// otherwise the search runs until a termination limit trips and reports
// no root
type Bisection struct {
	// Lower and Upper are the initial bracket. Lower must not exceed Upper
	Lower float64
	Upper float64

	f Objective

	lb  float64
	ub  float64
	flb float64
	fub float64
}

func NewBisection(lower, upper float64) *Bisection {
	return &Bisection{Lower: lower, Upper: upper}
}

func (b *Bisection) Init(f Objective) error {
	if b.Lower > b.Upper {
		return errors.New("bisection: lower bound above upper bound")
	}
	b.f = f

	b.lb = b.Lower
	b.ub = b.Upper
	b.flb = f.Obj(b.lb)
	b.fub = f.Obj(b.ub)
	return nil
}

func (b *Bisection) Iterate() (loc, obj float64, nFunEvals int, err error) {
	mid := (b.lb + b.ub) / 2
	fmid := b.f.Obj(mid)

	switch {
	case b.flb*fmid < 0:
		b.ub = mid
		b.fub = fmid
	case b.fub*fmid < 0:
		b.lb = mid
		b.flb = fmid
	}
	// Neither half brackets a sign change: either fmid is exactly zero,
	// which the residual check picks up, or the bracket never contained
	// a root and the interval stays as it is
	return mid, fmid, 1, nil
}

func (b *Bisection) Status() common.Status {
	if b.lb > b.ub {
		return common.BracketLost
	}
	return common.Continue
}

func (b *Bisection) Result() {}
