// Package log contains the hand-maintained binding for the Event envelope in
// cereal/cruised.capnp. Every msgq channel carries one Event per message.
package log

import (
	"capnproto.org/go/capnp/v3"

	"github.com/kikiyinfu/cruised/cereal/car"
	"github.com/kikiyinfu/cruised/cereal/custom"
)

type Event capnp.Struct

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 4})
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

func (s Event) CarState() (car.CarState, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return car.CarState(p.Struct()), err
}

func (s Event) NewCarState() (car.CarState, error) {
	ss, err := car.NewCarState(capnp.Struct(s).Segment())
	if err != nil {
		return car.CarState{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) LateralPlan() (custom.LateralPlan, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return custom.LateralPlan(p.Struct()), err
}

func (s Event) NewLateralPlan() (custom.LateralPlan, error) {
	ss, err := custom.NewLateralPlan(capnp.Struct(s).Segment())
	if err != nil {
		return custom.LateralPlan{}, err
	}
	err = capnp.Struct(s).SetPtr(1, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) CruisedIn() (custom.CruisedIn, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return custom.CruisedIn(p.Struct()), err
}

func (s Event) NewCruisedIn() (custom.CruisedIn, error) {
	ss, err := custom.NewCruisedIn(capnp.Struct(s).Segment())
	if err != nil {
		return custom.CruisedIn{}, err
	}
	err = capnp.Struct(s).SetPtr(2, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s Event) CruisedOut() (custom.CruisedOut, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return custom.CruisedOut(p.Struct()), err
}

func (s Event) NewCruisedOut() (custom.CruisedOut, error) {
	ss, err := custom.NewCruisedOut(capnp.Struct(s).Segment())
	if err != nil {
		return custom.CruisedOut{}, err
	}
	err = capnp.Struct(s).SetPtr(3, capnp.Struct(ss).ToPtr())
	return ss, err
}
