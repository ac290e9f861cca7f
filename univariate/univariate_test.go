package univariate

// quadratic is x^2 - 7x + 10, with roots at 2 and 5.
type quadratic struct{}

func (quadratic) Obj(x float64) float64 {
	return x*x - 7*x + 10
}

func (quadratic) ObjDeriv(x float64) (float64, float64) {
	return x*x - 7*x + 10, 2*x - 7
}

// quadraticBrackets each contain exactly one root of quadratic,
// in the order of quadraticRoots.
var quadraticBrackets = [][2]float64{{1.6, 2.4}, {4.8, 5.6}}

var quadraticRoots = []float64{2, 5}

// line is 2x - 6, with a root at 3.
type line struct{}

func (line) Obj(x float64) float64 {
	return 2*x - 6
}
