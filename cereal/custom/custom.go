// Package custom contains hand-maintained bindings for the cruised input,
// output and lateral plan structs in cereal/cruised.capnp.
package custom

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

type InputType uint16

const (
	InputType_unknown InputType = iota
	InputType_reloadSettings
	InputType_saveSettings
	InputType_loadDefaultSettings
	InputType_loadRecommendedSettings
	InputType_setLogLevel
	InputType_setSteerActuatorDelay
	InputType_setCarBrand
	InputType_setPcmCruise
	InputType_setPcmCruiseSpeed
	InputType_setReverseAccChange
	InputType_setIsMetric
	InputType_setDebugServer
	InputType_setDebugServerPort
)

type LateralPlan capnp.Struct

func NewLateralPlan(s *capnp.Segment) (LateralPlan, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 3})
	return LateralPlan(st), err
}

func (s LateralPlan) SolutionValid() bool {
	return capnp.Struct(s).Bit(0)
}

func (s LateralPlan) SetSolutionValid(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s LateralPlan) Psis() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Float32List(p.List()), err
}

func (s LateralPlan) NewPsis(n int32) (capnp.Float32List, error) {
	return s.newFloats(0, n)
}

func (s LateralPlan) Curvatures() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return capnp.Float32List(p.List()), err
}

func (s LateralPlan) NewCurvatures(n int32) (capnp.Float32List, error) {
	return s.newFloats(1, n)
}

func (s LateralPlan) CurvatureRates() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return capnp.Float32List(p.List()), err
}

func (s LateralPlan) NewCurvatureRates(n int32) (capnp.Float32List, error) {
	return s.newFloats(2, n)
}

func (s LateralPlan) newFloats(i uint16, n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(i, l.ToPtr())
	return l, err
}

type CruisedIn capnp.Struct

func NewCruisedIn(s *capnp.Segment) (CruisedIn, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 1})
	return CruisedIn(st), err
}

func (s CruisedIn) Type() InputType {
	return InputType(capnp.Struct(s).Uint16(0))
}

func (s CruisedIn) SetType(v InputType) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s CruisedIn) Bool() bool {
	return capnp.Struct(s).Bit(16)
}

func (s CruisedIn) SetBool(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s CruisedIn) Float() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s CruisedIn) SetFloat(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s CruisedIn) Str() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s CruisedIn) SetStr(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

type CruisedOut capnp.Struct

func NewCruisedOut(s *capnp.Segment) (CruisedOut, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 24, PointerCount: 1})
	return CruisedOut(st), err
}

func (s CruisedOut) VCruise() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s CruisedOut) SetVCruise(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s CruisedOut) VCruiseCluster() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s CruisedOut) SetVCruiseCluster(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s CruisedOut) DesiredCurvature() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s CruisedOut) SetDesiredCurvature(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s CruisedOut) DesiredCurvatureRate() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s CruisedOut) SetDesiredCurvatureRate(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s CruisedOut) FastMode() bool {
	return capnp.Struct(s).Bit(128)
}

func (s CruisedOut) SetFastMode(v bool) {
	capnp.Struct(s).SetBit(128, v)
}

func (s CruisedOut) Initialized() bool {
	return capnp.Struct(s).Bit(129)
}

func (s CruisedOut) SetInitialized(v bool) {
	capnp.Struct(s).SetBit(129, v)
}

func (s CruisedOut) Settings() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s CruisedOut) SetSettings(v string) error {
	return capnp.Struct(s).SetText(0, v)
}
