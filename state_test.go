package main

import (
	"testing"

	"capnproto.org/go/capnp/v3"

	"github.com/kikiyinfu/cruised/cereal/custom"
)

func newLateralPlan(t *testing.T, n int32) custom.LateralPlan {
	t.Helper()
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		t.Fatal(err)
	}
	plan, err := custom.NewLateralPlan(seg)
	if err != nil {
		t.Fatal(err)
	}
	plan.SetSolutionValid(true)

	psis, err := plan.NewPsis(n)
	if err != nil {
		t.Fatal(err)
	}
	curvatures, err := plan.NewCurvatures(n)
	if err != nil {
		t.Fatal(err)
	}
	rates, err := plan.NewCurvatureRates(n)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < int(n); i++ {
		psis.Set(i, float32(i))
		curvatures.Set(i, 0.01)
		rates.Set(i, 0.001)
	}
	return plan
}

func TestUpdatePlanCopiesSolution(t *testing.T) {
	s := State{}
	s.UpdatePlan(newLateralPlan(t, CONTROL_N))

	if !s.Plan.SolutionValid {
		t.Error("expected the solution valid flag to be copied")
	}
	if len(s.Plan.Psis) != CONTROL_N || len(s.Plan.Curvatures) != CONTROL_N || len(s.Plan.CurvatureRates) != CONTROL_N {
		t.Fatalf("expected full length plan buffers, got %d %d %d",
			len(s.Plan.Psis), len(s.Plan.Curvatures), len(s.Plan.CurvatureRates))
	}
	if s.Plan.Psis[3] != 3 {
		t.Errorf("expected psi 3, got %v", s.Plan.Psis[3])
	}
}

func TestUpdatePlanReplacesBuffers(t *testing.T) {
	s := State{}
	s.UpdatePlan(newLateralPlan(t, CONTROL_N))
	s.UpdatePlan(newLateralPlan(t, 4))

	if len(s.Plan.Psis) != 4 {
		t.Errorf("expected the shorter plan to replace the old one, got %d", len(s.Plan.Psis))
	}

	// a short plan must zero the curvature command
	curvature, curvatureRate := LagAdjustedCurvature(CarParams{SteerActuatorDelay: 0.2}, 20, &s.Plan)
	if curvature != 0 || curvatureRate != 0 {
		t.Errorf("expected a zero command, got %v %v", curvature, curvatureRate)
	}
}
