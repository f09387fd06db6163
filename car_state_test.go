package main

import (
	"testing"

	"capnproto.org/go/capnp/v3"

	"github.com/kikiyinfu/cruised/cereal/car"
)

func TestCarStateUpdate(t *testing.T) {
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		t.Fatal(err)
	}
	data, err := car.NewRootCarState(seg)
	if err != nil {
		t.Fatal(err)
	}
	data.SetVEgo(12.5)
	data.SetAEgo(-0.5)
	data.SetCruiseSpeed(25)
	data.SetCruiseSpeedCluster(26)
	data.SetCruiseAvailable(true)
	data.SetCruiseEnabled(true)
	data.SetGasPressed(true)

	events, err := data.NewButtonEvents(2)
	if err != nil {
		t.Fatal(err)
	}
	events.At(0).SetType(car.ButtonTypeAccelCruise)
	events.At(0).SetPressed(true)
	events.At(1).SetType(car.ButtonTypeAccelCruise)

	var cs CarState
	cs.Update(data)

	if cs.VEgo != 12.5 || cs.AEgo != -0.5 {
		t.Errorf("expected speeds to be copied, got %v %v", cs.VEgo, cs.AEgo)
	}
	if !cs.CruiseAvailable || !cs.CruiseEnabled || !cs.GasPressed {
		t.Error("expected the flags to be copied")
	}
	if cs.Standstill || cs.CruiseStandstill {
		t.Error("expected unset flags to stay false")
	}
	if len(cs.ButtonEvents) != 2 {
		t.Fatalf("expected 2 button events, got %d", len(cs.ButtonEvents))
	}
	if cs.ButtonEvents[0].Type != car.ButtonTypeAccelCruise || !cs.ButtonEvents[0].Pressed {
		t.Errorf("expected an accel press, got %+v", cs.ButtonEvents[0])
	}
	if cs.ButtonEvents[1].Pressed {
		t.Errorf("expected an accel release, got %+v", cs.ButtonEvents[1])
	}
}

func TestCarStateUpdateClearsStaleEvents(t *testing.T) {
	_, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		t.Fatal(err)
	}
	withEvents, err := car.NewRootCarState(seg)
	if err != nil {
		t.Fatal(err)
	}
	events, err := withEvents.NewButtonEvents(1)
	if err != nil {
		t.Fatal(err)
	}
	events.At(0).SetType(car.ButtonTypeDecelCruise)

	_, seg, err = capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		t.Fatal(err)
	}
	withoutEvents, err := car.NewRootCarState(seg)
	if err != nil {
		t.Fatal(err)
	}

	var cs CarState
	cs.Update(withEvents)
	cs.Update(withoutEvents)

	if len(cs.ButtonEvents) != 0 {
		t.Errorf("expected stale events to be cleared, got %d", len(cs.ButtonEvents))
	}
}
