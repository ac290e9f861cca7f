// Package bracket locates intervals that bracket roots of a scalar function
// by scanning a domain in fixed increments and recording sign changes.
package bracket

import "errors"

// Objective is a scalar function whose roots are sought. The function is
// assumed continuous over the scanned domain; this is not checked.
type Objective interface {
	Obj(x float64) float64
}

// ErrNonPositiveStep is returned by IncrementalSearch when the increment
// length is zero or negative, since such a scan could never terminate.
var ErrNonPositiveStep = errors.New("bracket: increment length must be positive")

// Interval is a closed interval [Lower, Upper]. Intervals returned by
// IncrementalSearch either contain a sign change of the function or
// surround a sample point where the function was exactly zero.
type Interval struct {
	Lower float64
	Upper float64
}

// IncrementalSearch scans [lb, ub] in steps of incrementLength and returns
// the number of bracketing intervals found along with the intervals in scan
// order. A sample point x where f(x) is exactly zero emits the heuristic
// interval [x-incrementLength, x+incrementLength]; a strict sign change
// between x and x+incrementLength emits [x, x+incrementLength].
//
// The comparison against zero is exact, so a root between sample points
// that the function only touches without crossing is missed. The scan
// samples one increment past ub when checking the final sign change.
func IncrementalSearch(f Objective, lb, ub, incrementLength float64) (int, []Interval, error) {
	if incrementLength <= 0 {
		return 0, nil, ErrNonPositiveStep
	}

	var intervals []Interval
	for x := lb; x <= ub; x += incrementLength {
		fx := f.Obj(x)
		if fx == 0 {
			intervals = append(intervals, Interval{Lower: x - incrementLength, Upper: x + incrementLength})
		}
		if fx*f.Obj(x+incrementLength) < 0 {
			intervals = append(intervals, Interval{Lower: x, Upper: x + incrementLength})
		}
	}
	return len(intervals), intervals, nil
}
