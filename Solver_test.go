package go_aeroflow_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ponceRuhan/go_aeroflow"
)

func TestNewtonSolverFindsRoot(t *testing.T) {
	solver := go_aeroflow.CreateNewtonSolver()

	root, err := solver.Solve(func(x float64) float64 { return x*x - 4 }, 3)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	assertRel(t, root, 2, 1e-9, "Root of x^2-4 from above")

	root, err = solver.Solve(func(x float64) float64 { return x*x - 4 }, 1)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	assertRel(t, root, 2, 1e-9, "Root of x^2-4 from below")

	root, err = solver.Solve(math.Cos, 1.5)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	assertRel(t, root, math.Pi/2, 1e-9, "Root of cos")
}

func TestNewtonSolverReportsNoRoot(t *testing.T) {
	solver := go_aeroflow.CreateNewtonSolver()

	//no real root and a stationary point at the seed
	if _, err := solver.Solve(func(x float64) float64 { return 1 + x*x }, 0); !errors.Is(err, go_aeroflow.ErrNonConvergence) {
		t.Errorf("Flat seed accepted, got %v", err)
	}

	//no real root anywhere; the iteration budget must stop the search
	if _, err := solver.Solve(func(x float64) float64 { return math.Exp(-x*x) + 1 }, 1); !errors.Is(err, go_aeroflow.ErrNonConvergence) {
		t.Errorf("Rootless function accepted, got %v", err)
	}
}
