package main

import (
	"capnproto.org/go/capnp/v3"

	"github.com/kikiyinfu/cruised/cereal/custom"
)

// State is the daemon's working state, owned by the control loop.
type State struct {
	Frame uint64

	Car  CarState
	Plan Plan

	IsMetric        bool
	EnabledLastLoop bool

	VCruise        float64
	VCruiseCluster float64

	DesiredCurvature     float64
	DesiredCurvatureRate float64
}

func floatList(l capnp.Float32List, dst []float64) []float64 {
	dst = dst[:0]
	for i := 0; i < l.Len(); i++ {
		dst = append(dst, float64(l.At(i)))
	}
	return dst
}

// UpdatePlan refreshes the plan buffers from a freshly read lateralPlan
// message. A list that fails to decode leaves its buffer empty so the
// curvature path treats the whole plan as malformed.
func (s *State) UpdatePlan(data custom.LateralPlan) {
	s.Plan.SolutionValid = data.SolutionValid()

	s.Plan.Psis = s.Plan.Psis[:0]
	s.Plan.Curvatures = s.Plan.Curvatures[:0]
	s.Plan.CurvatureRates = s.Plan.CurvatureRates[:0]

	if psis, err := data.Psis(); err == nil {
		s.Plan.Psis = floatList(psis, s.Plan.Psis)
	}
	if curvatures, err := data.Curvatures(); err == nil {
		s.Plan.Curvatures = floatList(curvatures, s.Plan.Curvatures)
	}
	if rates, err := data.CurvatureRates(); err == nil {
		s.Plan.CurvatureRates = floatList(rates, s.Plan.CurvatureRates)
	}
}
