package univariate

import "github.com/jubranakram/root-finding-algorithms/common"

// Secant refines two initial guesses using successive secant lines through
// the two most recent iterates. No bracket is maintained and the guesses
// need not straddle a root. Equal function values at the two iterates end
// the search with ErrZeroDenominator
type Secant struct {
	// X0 and X1 are the two initial guesses
	X0 float64
	X1 float64

	f Objective

	x0  float64
	x1  float64
	fx0 float64
	fx1 float64
}

func NewSecant(x0, x1 float64) *Secant {
	return &Secant{X0: x0, X1: x1}
}

func (s *Secant) Init(f Objective) error {
	s.f = f

	s.x0 = s.X0
	s.x1 = s.X1
	s.fx0 = f.Obj(s.x0)
	s.fx1 = f.Obj(s.x1)
	return nil
}

func (s *Secant) Iterate() (loc, obj float64, nFunEvals int, err error) {
	if s.fx1 == s.fx0 {
		return s.x1, s.fx1, 0, ErrZeroDenominator
	}
	x := s.x1 - s.fx1*(s.x1-s.x0)/(s.fx1-s.fx0)
	fx := s.f.Obj(x)

	s.x0, s.fx0 = s.x1, s.fx1
	s.x1, s.fx1 = x, fx
	return x, fx, 1, nil
}

func (s *Secant) Status() common.Status { return common.Continue }

func (s *Secant) Result() {}
