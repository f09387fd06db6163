// Package car contains hand-maintained bindings for the vehicle state
// structs in cereal/cruised.capnp.
package car

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

type ButtonType uint16

const (
	ButtonTypeUnknown ButtonType = iota
	ButtonTypeLeftBlinker
	ButtonTypeRightBlinker
	ButtonTypeAccelCruise
	ButtonTypeDecelCruise
	ButtonTypeCancel
	ButtonTypeAltButton1
	ButtonTypeAltButton2
	ButtonTypeAltButton3
	ButtonTypeSetCruise
	ButtonTypeResumeCruise
	ButtonTypeGapAdjustCruise
)

func (t ButtonType) String() string {
	switch t {
	case ButtonTypeLeftBlinker:
		return "leftBlinker"
	case ButtonTypeRightBlinker:
		return "rightBlinker"
	case ButtonTypeAccelCruise:
		return "accelCruise"
	case ButtonTypeDecelCruise:
		return "decelCruise"
	case ButtonTypeCancel:
		return "cancel"
	case ButtonTypeAltButton1:
		return "altButton1"
	case ButtonTypeAltButton2:
		return "altButton2"
	case ButtonTypeAltButton3:
		return "altButton3"
	case ButtonTypeSetCruise:
		return "setCruise"
	case ButtonTypeResumeCruise:
		return "resumeCruise"
	case ButtonTypeGapAdjustCruise:
		return "gapAdjustCruise"
	}
	return "unknown"
}

type ButtonEvent capnp.Struct

func NewButtonEvent(s *capnp.Segment) (ButtonEvent, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8})
	return ButtonEvent(st), err
}

func (s ButtonEvent) Pressed() bool {
	return capnp.Struct(s).Bit(0)
}

func (s ButtonEvent) SetPressed(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s ButtonEvent) Type() ButtonType {
	return ButtonType(capnp.Struct(s).Uint16(2))
}

func (s ButtonEvent) SetType(v ButtonType) {
	capnp.Struct(s).SetUint16(2, uint16(v))
}

type ButtonEvent_List = capnp.StructList[ButtonEvent]

func NewButtonEvent_List(s *capnp.Segment, sz int32) (ButtonEvent_List, error) {
	l, err := capnp.NewCompositeList(s, capnp.ObjectSize{DataSize: 8}, sz)
	return ButtonEvent_List(l), err
}

type CarState capnp.Struct

func NewCarState(s *capnp.Segment) (CarState, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 24, PointerCount: 1})
	return CarState(st), err
}

func NewRootCarState(s *capnp.Segment) (CarState, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 24, PointerCount: 1})
	return CarState(st), err
}

func (s CarState) VEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(0))
}

func (s CarState) SetVEgo(v float32) {
	capnp.Struct(s).SetUint32(0, math.Float32bits(v))
}

func (s CarState) AEgo() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(4))
}

func (s CarState) SetAEgo(v float32) {
	capnp.Struct(s).SetUint32(4, math.Float32bits(v))
}

func (s CarState) CruiseSpeed() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s CarState) SetCruiseSpeed(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

func (s CarState) CruiseSpeedCluster() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(12))
}

func (s CarState) SetCruiseSpeedCluster(v float32) {
	capnp.Struct(s).SetUint32(12, math.Float32bits(v))
}

func (s CarState) GasPressed() bool {
	return capnp.Struct(s).Bit(128)
}

func (s CarState) SetGasPressed(v bool) {
	capnp.Struct(s).SetBit(128, v)
}

func (s CarState) Standstill() bool {
	return capnp.Struct(s).Bit(129)
}

func (s CarState) SetStandstill(v bool) {
	capnp.Struct(s).SetBit(129, v)
}

func (s CarState) CruiseEnabled() bool {
	return capnp.Struct(s).Bit(130)
}

func (s CarState) SetCruiseEnabled(v bool) {
	capnp.Struct(s).SetBit(130, v)
}

func (s CarState) CruiseAvailable() bool {
	return capnp.Struct(s).Bit(131)
}

func (s CarState) SetCruiseAvailable(v bool) {
	capnp.Struct(s).SetBit(131, v)
}

func (s CarState) CruiseStandstill() bool {
	return capnp.Struct(s).Bit(132)
}

func (s CarState) SetCruiseStandstill(v bool) {
	capnp.Struct(s).SetBit(132, v)
}

func (s CarState) ButtonEvents() (ButtonEvent_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return ButtonEvent_List(p.List()), err
}

func (s CarState) HasButtonEvents() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s CarState) NewButtonEvents(n int32) (ButtonEvent_List, error) {
	l, err := NewButtonEvent_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return ButtonEvent_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}
