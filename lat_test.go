package main

import (
	"math"
	"testing"
)

func constantPlan(psiRate, curvature, curvatureRate float64) *Plan {
	p := &Plan{SolutionValid: true}
	for i := 0; i < CONTROL_N; i++ {
		p.Psis = append(p.Psis, psiRate*ModelTIdxs[i])
		p.Curvatures = append(p.Curvatures, curvature)
		p.CurvatureRates = append(p.CurvatureRates, curvatureRate)
	}
	return p
}

func TestModelTIdxs(t *testing.T) {
	if len(ModelTIdxs) != 33 {
		t.Fatalf("expected 33 grid points, got %d", len(ModelTIdxs))
	}
	if ModelTIdxs[0] != 0 {
		t.Errorf("expected the grid to start at 0, got %v", ModelTIdxs[0])
	}
	if ModelTIdxs[32] != 10 {
		t.Errorf("expected the grid to end at 10s, got %v", ModelTIdxs[32])
	}
	for i := 1; i < len(ModelTIdxs); i++ {
		if ModelTIdxs[i] <= ModelTIdxs[i-1] {
			t.Fatalf("expected a strictly increasing grid at %d", i)
		}
	}
}

func TestLagAdjustedCurvature(t *testing.T) {
	cp := CarParams{SteerActuatorDelay: 0.2}
	// heading grows at 0.2 rad/s, so psi at the 0.4s total delay is 0.08
	plan := constantPlan(0.2, 0.008, 0)

	curvature, curvatureRate := LagAdjustedCurvature(cp, 20, plan)

	// average desired curvature over the delay is 0.01, twice that minus the
	// current plan curvature is 0.012, the per step bound pulls it back to
	// 0.008 + (5/20^2)*0.05
	if math.Abs(curvature-0.008625) > 1e-9 {
		t.Errorf("expected curvature 0.008625, got %v", curvature)
	}
	if curvatureRate != 0 {
		t.Errorf("expected zero curvature rate, got %v", curvatureRate)
	}
}

func TestLagAdjustedCurvatureRateBound(t *testing.T) {
	cp := CarParams{SteerActuatorDelay: 0.2}
	plan := constantPlan(0, 0, 1)

	vEgo := 20.0
	_, curvatureRate := LagAdjustedCurvature(cp, vEgo, plan)

	maxRate := MAX_LATERAL_JERK / (vEgo * vEgo)
	if curvatureRate != maxRate {
		t.Errorf("expected curvature rate clamped to %v, got %v", maxRate, curvatureRate)
	}

	plan = constantPlan(0, 0, -1)
	_, curvatureRate = LagAdjustedCurvature(cp, vEgo, plan)
	if curvatureRate != -maxRate {
		t.Errorf("expected curvature rate clamped to %v, got %v", -maxRate, curvatureRate)
	}
}

func TestLagAdjustedCurvatureSpeedFloor(t *testing.T) {
	cp := CarParams{SteerActuatorDelay: 0.2}
	plan := constantPlan(0.2, 0, 0)

	stopped, _ := LagAdjustedCurvature(cp, 0, plan)
	floor, _ := LagAdjustedCurvature(cp, MIN_SPEED, plan)

	if stopped != floor {
		t.Errorf("expected the standstill command to use the speed floor, got %v and %v", stopped, floor)
	}
	if math.IsNaN(stopped) || math.IsInf(stopped, 0) {
		t.Errorf("expected a finite command at standstill, got %v", stopped)
	}
}

func TestLagAdjustedCurvatureMalformedPlan(t *testing.T) {
	cp := CarParams{SteerActuatorDelay: 0.2}

	short := constantPlan(0.2, 0.008, 0.001)
	short.Psis = short.Psis[:CONTROL_N-1]
	curvature, curvatureRate := LagAdjustedCurvature(cp, 20, short)
	if curvature != 0 || curvatureRate != 0 {
		t.Errorf("expected a zero command for a short plan, got %v %v", curvature, curvatureRate)
	}

	empty := &Plan{}
	curvature, curvatureRate = LagAdjustedCurvature(cp, 20, empty)
	if curvature != 0 || curvatureRate != 0 {
		t.Errorf("expected a zero command for an empty plan, got %v %v", curvature, curvatureRate)
	}
}
