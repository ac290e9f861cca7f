package univariate

import (
	"testing"

	"github.com/gonum/floats"

	"github.com/jubranakram/root-finding-algorithms/common"
)

func TestBisection(t *testing.T) {
	q := quadratic{}
	for i, b := range quadraticBrackets {
		result, err := FindRoot(q, nil, NewBisection(b[0], b[1]))
		if err != nil {
			t.Fatalf("error finding root in bracket %d: %v", i, err)
		}
		if !result.Status.Converged() {
			t.Errorf("bracket %d did not converge. Status %v", i, result.Status)
		}
		if !floats.EqualWithinAbs(result.Root, quadraticRoots[i], 1e-3) {
			t.Errorf("root doesn't match. Expected: %v, Found: %v. Status %v", quadraticRoots[i], result.Root, result.Status)
		}
		if !(result.Residual < 1e-3 && result.Residual > -1e-3) {
			t.Errorf("residual above threshold: %v", result.Residual)
		}
	}
}

func TestBisectionNoSignChange(t *testing.T) {
	// quadratic is positive over all of [6, 8]
	result, err := FindRoot(quadratic{}, nil, NewBisection(6, 8))
	if err != nil {
		t.Fatalf("error finding root: %v", err)
	}
	if result.Status != common.MaximumIterations {
		t.Errorf("expected MaximumIterations, got %v", result.Status)
	}
	if result.Status.Converged() {
		t.Errorf("same-sign bracket reported convergence")
	}
}

func TestBisectionBadBracket(t *testing.T) {
	_, err := FindRoot(quadratic{}, nil, NewBisection(2.4, 1.6))
	if err == nil {
		t.Errorf("expected an error for an inverted bracket")
	}
}

func TestBisectionIdempotent(t *testing.T) {
	b := quadraticBrackets[0]
	first, err := FindRoot(quadratic{}, nil, NewBisection(b[0], b[1]))
	if err != nil {
		t.Fatalf("error finding root: %v", err)
	}
	second, err := FindRoot(quadratic{}, nil, NewBisection(b[0], b[1]))
	if err != nil {
		t.Fatalf("error finding root: %v", err)
	}
	if first.Root != second.Root || first.Iterations != second.Iterations || first.Status != second.Status {
		t.Errorf("identical inputs gave different results: %v/%v vs %v/%v",
			first.Root, first.Status, second.Root, second.Status)
	}
}
