package main

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

const (
	// lateral planner solution length
	CONTROL_N = 17

	DT_MDL = 0.05

	MIN_SPEED = 1.0

	// about 1.0m/s^2 of lateral acceleration change per 0.2s
	MAX_LATERAL_JERK = 5.0

	// time between the steer command and the tires actually moving, added on
	// top of the car's actuator delay
	lagExtraSec = 0.2
)

// ModelTIdxs is the model's prediction time grid, t[i] = 10*(i/32)^2 seconds.
var ModelTIdxs = modelTIdxs()

func modelTIdxs() []float64 {
	const n = 33
	t := make([]float64, n)
	for i := range t {
		x := float64(i) / float64(n-1)
		t[i] = 10 * x * x
	}
	return t
}

// Plan holds the lateral planner solution resampled onto the model time grid.
type Plan struct {
	Psis           []float64
	Curvatures     []float64
	CurvatureRates []float64
	SolutionValid  bool
}

// LagAdjustedCurvature computes the curvature command compensating for the
// total actuation delay by looking ahead along the planned heading. Any
// malformed plan yields a zero command.
func LagAdjustedCurvature(cp CarParams, vEgo float64, plan *Plan) (desiredCurvature, desiredCurvatureRate float64) {
	if len(plan.Psis) != CONTROL_N || len(plan.Curvatures) != CONTROL_N || len(plan.CurvatureRates) != CONTROL_N {
		return 0, 0
	}

	vEgo = math.Max(MIN_SPEED, vEgo)
	delay := cp.SteerActuatorDelay + lagExtraSec

	// MPC can plan to turn the wheel and turn back before t_delay. This means
	// desired_curvature might not be requested before delay, compute average
	// over delay to avoid this
	var pwl interp.PiecewiseLinear
	if err := pwl.Fit(ModelTIdxs[:CONTROL_N], plan.Psis); err != nil {
		return 0, 0
	}
	t := Clip(delay, ModelTIdxs[0], ModelTIdxs[CONTROL_N-1])
	psi := pwl.Predict(t)
	averageCurvatureDesired := psi / (vEgo * delay)
	desiredCurvature = 2*averageCurvatureDesired - plan.Curvatures[0]

	// This is the "desired rate of the setpoint" not an actual desired rate
	desiredCurvatureRate = plan.CurvatureRates[0]
	maxCurvatureRate := MAX_LATERAL_JERK / (vEgo * vEgo)
	safeDesiredCurvatureRate := Clip(desiredCurvatureRate, -maxCurvatureRate, maxCurvatureRate)
	safeDesiredCurvature := Clip(desiredCurvature,
		plan.Curvatures[0]-maxCurvatureRate*DT_MDL,
		plan.Curvatures[0]+maxCurvatureRate*DT_MDL)

	return safeDesiredCurvature, safeDesiredCurvatureRate
}
