package univariate

import "github.com/jubranakram/root-finding-algorithms/common"

// NewtonRaphson refines a single initial guess using the first derivative
// of the target function: x <- x - f(x)/f'(x). No bracket is maintained,
// so convergence is local and guess-dependent; a poor initial guess may
// diverge or oscillate until the iteration cap trips. A vanishing
// derivative at any iterate ends the search with ErrZeroDerivative
type NewtonRaphson struct {
	// X0 is the initial guess
	X0 float64

	f ObjDeriver

	x    float64
	fx   float64
	fder float64
}

func NewNewtonRaphson(x0 float64) *NewtonRaphson {
	return &NewtonRaphson{X0: x0}
}

func (n *NewtonRaphson) Init(f ObjDeriver) error {
	n.f = f

	n.x = n.X0
	n.fx, n.fder = f.ObjDeriv(n.x)
	return nil
}

func (n *NewtonRaphson) Iterate() (loc, obj float64, nFunEvals int, err error) {
	if n.fder == 0 {
		return n.x, n.fx, 0, ErrZeroDerivative
	}
	n.x -= n.fx / n.fder
	n.fx, n.fder = n.f.ObjDeriv(n.x)
	return n.x, n.fx, 1, nil
}

func (n *NewtonRaphson) Status() common.Status { return common.Continue }

func (n *NewtonRaphson) Result() {}
