package go_aeroflow

import (
	"errors"
	"fmt"
	"math"
)

//ErrNonConvergence is returned when the root solver exhausts its iteration
//budget or the residual stops being finite.
var ErrNonConvergence = errors.New("root finding did not converge")

//RootSolver finds a zero of a scalar function near an initial guess.
//
//The airspeed conversions use it for the transonic and supersonic branches
//that have no closed-form inverse; any implementation must cap its
//iterations and report failure instead of looping.
type RootSolver interface {
	Solve(f func(float64) float64, x0 float64) (float64, error)
}

const cSolverAccuracy float64 = 1e-12
const cSolverMaxIterations int = 60
const cSolverStepFraction float64 = 1e-7
const cSolverMaxDampings int = 20

//newtonSolver is a damped Newton iteration with a central-difference
//derivative. The conversion residuals are smooth and well conditioned near
//the closed-form seed, so no bracketing is required.
type newtonSolver struct {
	accuracy      float64
	maxIterations int
}

//CreateNewtonSolver creates the default root solver used by the airspeed
//conversions.
func CreateNewtonSolver() RootSolver {
	return newtonSolver{accuracy: cSolverAccuracy, maxIterations: cSolverMaxIterations}
}

func (v newtonSolver) Solve(f func(float64) float64, x0 float64) (float64, error) {
	var x = x0
	var fx = f(x)
	for i := 0; i < v.maxIterations; i++ {
		if math.Abs(fx) <= v.accuracy*math.Max(1.0, math.Abs(x)) {
			return x, nil
		}

		var h = cSolverStepFraction * math.Max(1.0, math.Abs(x))
		var derivative = (f(x+h) - f(x-h)) / (2 * h)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return 0, fmt.Errorf("%w: flat residual near x=%g", ErrNonConvergence, x)
		}

		var step = fx / derivative
		var next = x - step
		var fNext = f(next)
		for j := 0; j < cSolverMaxDampings && (math.IsNaN(fNext) || math.Abs(fNext) >= math.Abs(fx)); j++ {
			step /= 2
			next = x - step
			fNext = f(next)
		}
		if math.IsNaN(fNext) {
			return 0, fmt.Errorf("%w: residual is not finite near x=%g", ErrNonConvergence, x)
		}
		x, fx = next, fNext
	}
	return 0, fmt.Errorf("%w: %d iterations spent, last x=%g residual=%g",
		ErrNonConvergence, v.maxIterations, x, fx)
}
