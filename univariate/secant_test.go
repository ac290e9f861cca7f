package univariate

import (
	"errors"
	"testing"

	"github.com/gonum/floats"
)

func TestSecant(t *testing.T) {
	q := quadratic{}
	for i, b := range quadraticBrackets {
		result, err := FindRoot(q, nil, NewSecant(b[0], b[1]))
		if err != nil {
			t.Fatalf("error finding root from guesses %v: %v", b, err)
		}
		if !result.Status.Converged() {
			t.Errorf("guesses %v did not converge. Status %v", b, result.Status)
		}
		if !floats.EqualWithinAbs(result.Root, quadraticRoots[i], 1e-3) {
			t.Errorf("root doesn't match. Expected: %v, Found: %v. Status %v", quadraticRoots[i], result.Root, result.Status)
		}
	}
}

func TestSecantEqualValues(t *testing.T) {
	// f(1) == f(6) for the symmetric quadratic
	_, err := FindRoot(quadratic{}, nil, NewSecant(1, 6))
	if !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("expected ErrZeroDenominator, got %v", err)
	}
}
